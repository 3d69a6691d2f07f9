package shared

import (
	"context"
	"time"

	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/domain/notification"
	"mealpass-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: command-side reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Coupons() CouponRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeSnapshot, error)
	AllEmployees(ctx context.Context) ([]EmployeeSnapshot, error)

	// CouponCountForPeriod backs the bulk-generation idempotency gate.
	CouponCountForPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (int64, error)
	BarcodeExists(ctx context.Context, barcode string) (bool, error)

	// Aggregates for the notification sweep rules.
	CountExpiringBetween(ctx context.Context, after, until time.Time) (int64, error)
	DepartmentClaimStats(ctx context.Context) ([]DepartmentClaimStats, error)
	PerfectClaimEmployees(ctx context.Context, minCoupons int) ([]EmployeeClaimStats, error)
}

type CouponRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *coupon.Coupon) (uuid.UUID, error)
	// FindByIDForUpdate takes the row lock that serializes concurrent claims.
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*CouponSnapshot, error)
	MarkClaimed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, claimedAt time.Time) error
}

type EmployeeParams struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

type EmployeeRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p EmployeeParams, now time.Time) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p EmployeeParams, now time.Time) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, n *notification.Notification) (uuid.UUID, error)
	// ExistsSince implements the per-day dedup: department / employeeID narrow
	// the scope when non-nil.
	ExistsSince(ctx context.Context, dbtx db.DBTX, typ notification.Type, department *string, employeeID *uuid.UUID, since time.Time) (bool, error)
	MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	MarkAllRead(ctx context.Context, dbtx db.DBTX) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
