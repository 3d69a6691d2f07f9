package readstore

import (
	"context"
	"time"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"
	"mealpass-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponReadStore struct {
	db  db.DBTX
	loc *time.Location
}

func NewCouponReadStore(dbtx db.DBTX, loc *time.Location) *CouponReadStore {
	return &CouponReadStore{db: dbtx, loc: loc}
}

// monthBounds returns [first day, first day of next month) in the business
// timezone. All period filtering goes through these half-open bounds so SQL
// never does its own date math.
func (r *CouponReadStore) monthBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, r.loc)
	return start, start.AddDate(0, 1, 0)
}

func (r *CouponReadStore) CountForPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (int64, error) {
	start, end := r.monthBounds(month, year)

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM coupons WHERE employee_id = $1 AND coupon_date >= $2 AND coupon_date < $3`,
		pgconv.UUIDToPgtype(employeeID), pgconv.DateToPgtype(start), pgconv.DateToPgtype(end),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons for period", err)
	}
	return count, nil
}

func (r *CouponReadStore) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM coupons WHERE barcode = $1)`, barcode).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check barcode existence", err)
	}
	return exists, nil
}

const selectCouponRMSQL = `
SELECT c.id, c.employee_id, c.coupon_date, c.barcode, c.workday_code,
       c.barcode_image_path, c.barcode_svg_path, c.barcode_base64,
       c.is_claimed, c.claimed_at, c.created_at, c.updated_at
FROM coupons c`

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CouponRM, error) {
	row := r.db.QueryRow(ctx, selectCouponRMSQL+` WHERE c.id = $1`, pgconv.UUIDToPgtype(id))
	rm, err := scanCouponRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return rm, nil
}

const selectCouponWithEmployeeSQL = `
SELECT c.id, c.employee_id, c.coupon_date, c.barcode, c.workday_code,
       c.barcode_image_path, c.barcode_svg_path, c.barcode_base64,
       c.is_claimed, c.claimed_at, c.created_at, c.updated_at,
       e.id, e.first_name, e.last_name, e.email, e.department, e.created_at, e.updated_at
FROM coupons c
JOIN employees e ON e.id = c.employee_id`

func (r *CouponReadStore) FindByBarcode(ctx context.Context, barcode string) (*readmodel.CouponRM, error) {
	row := r.db.QueryRow(ctx, selectCouponWithEmployeeSQL+` WHERE c.barcode = $1`, barcode)
	rm, err := scanCouponWithEmployeeRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by barcode", err)
	}
	return rm, nil
}

func (r *CouponReadStore) ListForEmployeeMonth(ctx context.Context, employeeID uuid.UUID, month, year int) ([]readmodel.CouponRM, error) {
	start, end := r.monthBounds(month, year)

	rows, err := r.db.Query(ctx,
		selectCouponRMSQL+` WHERE c.employee_id = $1 AND c.coupon_date >= $2 AND c.coupon_date < $3 ORDER BY c.coupon_date`,
		pgconv.UUIDToPgtype(employeeID), pgconv.DateToPgtype(start), pgconv.DateToPgtype(end),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	return collectCouponRMs(rows)
}

// ExpiringBetween lists unclaimed coupons with after < coupon_date <= until.
func (r *CouponReadStore) ExpiringBetween(ctx context.Context, after, until time.Time) ([]readmodel.CouponRM, error) {
	rows, err := r.db.Query(ctx,
		selectCouponRMSQL+` WHERE c.is_claimed = FALSE AND c.coupon_date > $1 AND c.coupon_date <= $2 ORDER BY c.coupon_date`,
		pgconv.DateToPgtype(after), pgconv.DateToPgtype(until),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expiring coupons", err)
	}
	defer rows.Close()

	return collectCouponRMs(rows)
}

func (r *CouponReadStore) CountExpiringBetween(ctx context.Context, after, until time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM coupons WHERE is_claimed = FALSE AND coupon_date > $1 AND coupon_date <= $2`,
		pgconv.DateToPgtype(after), pgconv.DateToPgtype(until),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count expiring coupons", err)
	}
	return count, nil
}

const dashboardStatsSQL = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE claimed_at >= $1 AND claimed_at < $2),
       COUNT(*) FILTER (WHERE is_claimed AND coupon_date >= $3 AND coupon_date < $4),
       COUNT(*) FILTER (WHERE NOT is_claimed AND coupon_date < $5),
       COUNT(*) FILTER (WHERE NOT is_claimed AND coupon_date >= $5)
FROM coupons`

func (r *CouponReadStore) DashboardStats(ctx context.Context, today time.Time) (*readmodel.DashboardStatsRM, error) {
	tomorrow := today.AddDate(0, 0, 1)
	monthStart, monthEnd := r.monthBounds(int(today.Month()), today.Year())

	var rm readmodel.DashboardStatsRM
	err := r.db.QueryRow(ctx, dashboardStatsSQL,
		pgconv.TimeToPgtype(today), pgconv.TimeToPgtype(tomorrow),
		pgconv.DateToPgtype(monthStart), pgconv.DateToPgtype(monthEnd),
		pgconv.DateToPgtype(today),
	).Scan(&rm.TotalCoupons, &rm.ClaimedToday, &rm.ClaimedThisMonth, &rm.ExpiredCoupons, &rm.AvailableCoupons)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}
	return &rm, nil
}

func (r *CouponReadStore) RecentClaims(ctx context.Context, limit int32) ([]readmodel.CouponRM, error) {
	rows, err := r.db.Query(ctx,
		selectCouponWithEmployeeSQL+` WHERE c.is_claimed = TRUE ORDER BY c.claimed_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent claims", err)
	}
	defer rows.Close()

	var out []readmodel.CouponRM
	for rows.Next() {
		rm, err := scanCouponWithEmployeeRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan claimed coupon row", err)
		}
		out = append(out, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recent claims", err)
	}
	return out, nil
}

// ArtifactPaths returns the rendered file paths for an employee's coupons so
// cascade deletes can also remove the files.
func (r *CouponReadStore) ArtifactPaths(ctx context.Context, employeeID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT barcode_image_path, barcode_svg_path FROM coupons WHERE employee_id = $1`,
		pgconv.UUIDToPgtype(employeeID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list artifact paths", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var png, svg *string
		if err := rows.Scan(&png, &svg); err != nil {
			return nil, infra.WrapRepoErr("failed to scan artifact path row", err)
		}
		if png != nil && *png != "" {
			paths = append(paths, *png)
		}
		if svg != nil && *svg != "" {
			paths = append(paths, *svg)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate artifact paths", err)
	}
	return paths, nil
}

func collectCouponRMs(rows pgx.Rows) ([]readmodel.CouponRM, error) {
	var out []readmodel.CouponRM
	for rows.Next() {
		rm, err := scanCouponRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		out = append(out, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCouponRM(row rowScanner) (*readmodel.CouponRM, error) {
	var rm readmodel.CouponRM
	err := row.Scan(
		&rm.ID, &rm.EmployeeID, &rm.CouponDate, &rm.Barcode, &rm.WorkdayCode,
		&rm.ImagePath, &rm.SVGPath, &rm.Base64,
		&rm.IsClaimed, &rm.ClaimedAt, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func scanCouponWithEmployeeRM(row rowScanner) (*readmodel.CouponRM, error) {
	var rm readmodel.CouponRM
	var emp readmodel.EmployeeRM
	err := row.Scan(
		&rm.ID, &rm.EmployeeID, &rm.CouponDate, &rm.Barcode, &rm.WorkdayCode,
		&rm.ImagePath, &rm.SVGPath, &rm.Base64,
		&rm.IsClaimed, &rm.ClaimedAt, &rm.CreatedAt, &rm.UpdatedAt,
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.Employee = &emp
	return &rm, nil
}
