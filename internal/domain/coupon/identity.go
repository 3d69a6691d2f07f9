package coupon

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const (
	BarcodePrefix = "MC"
	barcodeDigits = 8

	workdayCodePrefix = "WD"

	// MaxBarcodeAttempts bounds the retry-until-unique loop. Exhaustion is
	// surfaced as errs.ErrBarcodeExhausted by the orchestrator.
	MaxBarcodeAttempts = 10
)

// NewBarcode draws a fresh candidate barcode. Uniqueness is not guaranteed
// here; the orchestrator rejection-samples against the store and the schema's
// unique constraint is the final backstop.
func NewBarcode() (Barcode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "", err
	}
	return Barcode(fmt.Sprintf("%s%08d", BarcodePrefix, n.Int64()+1)), nil
}

// NewWorkdayCode derives the informational per-assignment code: a prefix
// deterministic in (employee, date) plus a random 3-digit suffix. It is a
// display code, not a lookup key, and carries no uniqueness guarantee.
func NewWorkdayCode(employeeID uuid.UUID, date time.Time) string {
	short := hex.EncodeToString(employeeID[:4])
	suffix, err := rand.Int(rand.Reader, big.NewInt(900))
	if err != nil {
		// A zero suffix is acceptable for a display-only code.
		suffix = big.NewInt(0)
	}
	return fmt.Sprintf("%s%s%s%03d", workdayCodePrefix, short, date.Format("20060102"), suffix.Int64()+100)
}
