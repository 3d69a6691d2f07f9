package coupon

import (
	"strings"

	"mealpass-api/internal/pkg/errs"
)

var ErrInvalidBarcode = errs.New("invalid barcode")

type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusExpired   Status = "expired"
)

// Barcode is the globally unique coupon identity: the fixed prefix followed
// by a zero-padded numeric suffix.
type Barcode string

func (b Barcode) String() string {
	return string(b)
}

func (b Barcode) Validate() error {
	s := string(b)
	if !strings.HasPrefix(s, BarcodePrefix) {
		return ErrInvalidBarcode
	}
	digits := s[len(BarcodePrefix):]
	if len(digits) != barcodeDigits {
		return ErrInvalidBarcode
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ErrInvalidBarcode
		}
	}
	return nil
}
