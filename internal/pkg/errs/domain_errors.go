package errs

// Sentinel errors shared across the usecase layers. Handlers map these to
// HTTP statuses; everything else surfaces as an internal error.
var (
	ErrEmployeeNotFound   = New("employee not found")
	ErrNoEmployees        = New("no employees found")
	ErrEmployeeEmailTaken = New("employee email already in use")

	ErrCouponNotFound      = New("coupon not found")
	ErrCouponsAlreadyExist = New("coupons already exist for this period")
	ErrBarcodeExhausted    = New("unable to allocate a unique barcode")

	ErrNotificationNotFound = New("notification not found")

	ErrInvalidPeriod    = New("invalid month or year")
	ErrDomainValidation = New("domain validation error")

	ErrDatabaseOperationFailed = New("database operation failed")
)
