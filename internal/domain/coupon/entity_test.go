//go:build unit

package coupon_test

import (
	"strings"
	"testing"
	"time"

	"mealpass-api/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoupon(t *testing.T, couponDate time.Time) *coupon.Coupon {
	t.Helper()
	barcode, err := coupon.NewBarcode()
	require.NoError(t, err)

	c, err := coupon.NewCoupon(uuid.Nil, uuid.New(), couponDate, barcode, "WDabcdef0120250305123", coupon.Artifacts{}, couponDate.Add(-30*24*time.Hour))
	require.NoError(t, err)
	return c
}

func TestNewCoupon(t *testing.T) {
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	t.Run("assigns an id and starts unclaimed", func(t *testing.T) {
		c := newTestCoupon(t, day)
		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.False(t, c.IsClaimed())
		assert.Nil(t, c.ClaimedAt())
	})

	t.Run("requires an employee", func(t *testing.T) {
		barcode, err := coupon.NewBarcode()
		require.NoError(t, err)
		_, err = coupon.NewCoupon(uuid.Nil, uuid.Nil, day, barcode, "", coupon.Artifacts{}, time.Now())
		require.ErrorIs(t, err, coupon.ErrMissingEmployee)
	})

	t.Run("requires a coupon date", func(t *testing.T) {
		barcode, err := coupon.NewBarcode()
		require.NoError(t, err)
		_, err = coupon.NewCoupon(uuid.Nil, uuid.New(), time.Time{}, barcode, "", coupon.Artifacts{}, time.Now())
		require.ErrorIs(t, err, coupon.ErrMissingDate)
	})

	t.Run("rejects a malformed barcode", func(t *testing.T) {
		_, err := coupon.NewCoupon(uuid.Nil, uuid.New(), day, coupon.Barcode("XX123"), "", coupon.Artifacts{}, time.Now())
		require.ErrorIs(t, err, coupon.ErrInvalidBarcode)
	})
}

func TestClaim(t *testing.T) {
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 5, 12, 30, 0, 0, time.UTC)

	t.Run("claims an available coupon once", func(t *testing.T) {
		c := newTestCoupon(t, day)

		require.NoError(t, c.Claim(now, day))
		assert.True(t, c.IsClaimed())
		require.NotNil(t, c.ClaimedAt())
		assert.Equal(t, now, *c.ClaimedAt())

		// Second claim never succeeds, regardless of date.
		require.ErrorIs(t, c.Claim(now.Add(time.Minute), day), coupon.ErrAlreadyClaimed)
	})

	t.Run("claiming on the coupon date itself is allowed", func(t *testing.T) {
		c := newTestCoupon(t, day)
		require.NoError(t, c.Claim(now, day))
	})

	t.Run("expired when today is past the coupon date", func(t *testing.T) {
		c := newTestCoupon(t, day)
		tomorrow := day.AddDate(0, 0, 1)

		require.ErrorIs(t, c.Claim(now, tomorrow), coupon.ErrExpired)
		assert.False(t, c.IsClaimed())
		assert.Nil(t, c.ClaimedAt())
	})
}

func TestStatusDerivation(t *testing.T) {
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	t.Run("available before the date passes", func(t *testing.T) {
		c := newTestCoupon(t, day)
		assert.Equal(t, coupon.StatusAvailable, c.Status(day))
		assert.True(t, c.CanBeClaimed(day))
		assert.False(t, c.IsExpired(day))
	})

	t.Run("expired once the date passes unclaimed", func(t *testing.T) {
		c := newTestCoupon(t, day)
		later := day.AddDate(0, 0, 3)
		assert.Equal(t, coupon.StatusExpired, c.Status(later))
		assert.True(t, c.IsExpired(later))
		assert.False(t, c.CanBeClaimed(later))
	})

	t.Run("claimed wins over expiry", func(t *testing.T) {
		c := newTestCoupon(t, day)
		require.NoError(t, c.Claim(day.Add(9*time.Hour), day))
		assert.Equal(t, coupon.StatusClaimed, c.Status(day.AddDate(0, 0, 5)))
		assert.False(t, c.IsExpired(day.AddDate(0, 0, 5)))
	})
}

func TestNewBarcode(t *testing.T) {
	b, err := coupon.NewBarcode()
	require.NoError(t, err)

	assert.Len(t, b.String(), len(coupon.BarcodePrefix)+8)
	assert.True(t, strings.HasPrefix(b.String(), coupon.BarcodePrefix))
	require.NoError(t, b.Validate())
}

func TestBarcodeValidate(t *testing.T) {
	cases := []struct {
		name    string
		barcode coupon.Barcode
		ok      bool
	}{
		{"well formed", "MC00042317", true},
		{"missing prefix", "00042317MC", false},
		{"short suffix", "MC1234567", false},
		{"long suffix", "MC123456789", false},
		{"non numeric suffix", "MC1234567a", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.barcode.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, coupon.ErrInvalidBarcode)
			}
		})
	}
}

func TestNewWorkdayCode(t *testing.T) {
	employeeID := uuid.New()
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	code := coupon.NewWorkdayCode(employeeID, day)

	assert.True(t, strings.HasPrefix(code, "WD"))
	assert.Contains(t, code, "20250305")
	// prefix + 8 hex chars + 8 date digits + 3 random digits
	assert.Len(t, code, 2+8+8+3)

	// The (employee, date) derived prefix is deterministic; only the suffix varies.
	other := coupon.NewWorkdayCode(employeeID, day)
	assert.Equal(t, code[:len(code)-3], other[:len(other)-3])
}
