package repository

import (
	"context"
	"time"

	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

const insertCouponSQL = `
INSERT INTO coupons (
	id, employee_id, coupon_date, barcode, workday_code,
	barcode_image_path, barcode_svg_path, barcode_base64,
	is_claimed, claimed_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *CouponRepository) Create(ctx context.Context, dbtx db.DBTX, c *coupon.Coupon) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertCouponSQL,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.EmployeeID()),
		pgconv.DateToPgtype(c.CouponDate()),
		c.Barcode().String(),
		c.WorkdayCode(),
		nullIfEmpty(c.Artifacts().ImagePath),
		nullIfEmpty(c.Artifacts().SVGPath),
		nullIfEmpty(c.Artifacts().Base64),
		c.IsClaimed(),
		pgconv.TimePtrToPgtype(c.ClaimedAt()),
		pgconv.TimeToPgtype(c.CreatedAt()),
		pgconv.TimeToPgtype(c.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return id, nil
}

const selectCouponForUpdateSQL = `
SELECT id, employee_id, coupon_date, barcode, workday_code,
       COALESCE(barcode_image_path, ''), COALESCE(barcode_svg_path, ''), COALESCE(barcode_base64, ''),
       is_claimed, claimed_at, created_at, updated_at
FROM coupons
WHERE id = $1
FOR UPDATE`

func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.CouponSnapshot, error) {
	row := dbtx.QueryRow(ctx, selectCouponForUpdateSQL, pgconv.UUIDToPgtype(id))

	snap, err := scanCouponSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon for update", err)
	}
	return snap, nil
}

const markClaimedSQL = `
UPDATE coupons
SET is_claimed = TRUE, claimed_at = $2, updated_at = $2
WHERE id = $1 AND is_claimed = FALSE`

func (r *CouponRepository) MarkClaimed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, claimedAt time.Time) error {
	tag, err := dbtx.Exec(ctx, markClaimedSQL, pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(claimedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon claimed", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already claimed; the caller holds the row lock
		// and has already distinguished the two.
		return infra.WrapRepoErr("coupon not claimable", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponSnapshot(row rowScanner) (*shared.CouponSnapshot, error) {
	var snap shared.CouponSnapshot
	var couponDate time.Time
	var claimedAt *time.Time

	err := row.Scan(
		&snap.ID,
		&snap.EmployeeID,
		&couponDate,
		&snap.Barcode,
		&snap.WorkdayCode,
		&snap.ImagePath,
		&snap.SVGPath,
		&snap.Base64,
		&snap.IsClaimed,
		&claimedAt,
		&snap.CreatedAt,
		&snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.CouponDate = couponDate
	snap.ClaimedAt = claimedAt
	return &snap, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
