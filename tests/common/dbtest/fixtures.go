//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestEmployee(t *testing.T, db DBLike, email, department string) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO employees (id, first_name, last_name, email, department, created_at, updated_at)
		VALUES ($1, 'Test', 'Employee', $2, $3, now(), now())
		ON CONFLICT (email) DO NOTHING`,
		employeeID, email, department)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM employees WHERE email = $1", email).Scan(&employeeID)
	}

	return employeeID
}

func CreateTestCoupon(t *testing.T, db DBLike, employeeID uuid.UUID, couponDate time.Time, barcode string, claimed bool) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	var claimedAt *time.Time
	if claimed {
		at := couponDate.Add(12 * time.Hour)
		claimedAt = &at
	}
	_, err := db.Exec(ctx, `
		INSERT INTO coupons (id, employee_id, coupon_date, barcode, workday_code, is_claimed, claimed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		couponID, employeeID, couponDate, barcode, "WD0000000000000000000", claimed, claimedAt)
	require.NoError(t, err)

	return couponID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
