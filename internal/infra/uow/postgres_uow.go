package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/infra/readstore"
	"mealpass-api/internal/infra/repository"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

func NewPostgresUoW(pool *pgxpool.Pool, loc *time.Location) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		loc:  loc,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	couponRepo       shared.CouponRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository()
	}
	return t.couponRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx db.DBTX

	// Lazy-initialized readstores
	employeeStore  *readstore.EmployeeReadStore
	couponStore    *readstore.CouponReadStore
	analyticsStore *readstore.AnalyticsReadStore
}

func (r *commandReads) employees() *readstore.EmployeeReadStore {
	if r.employeeStore == nil {
		r.employeeStore = readstore.NewEmployeeReadStore(r.dbtx)
	}
	return r.employeeStore
}

func (r *commandReads) coupons() *readstore.CouponReadStore {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.dbtx, r.uow.loc)
	}
	return r.couponStore
}

func (r *commandReads) analytics() *readstore.AnalyticsReadStore {
	if r.analyticsStore == nil {
		r.analyticsStore = readstore.NewAnalyticsReadStore(r.dbtx)
	}
	return r.analyticsStore
}

func (r *commandReads) EmployeeByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	employee, err := r.employees().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.EmployeeSnapshot{
		ID:         employee.ID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		Email:      employee.Email,
		Department: employee.Department,
	}
	return snapshot, nil
}

func (r *commandReads) AllEmployees(ctx context.Context) ([]shared.EmployeeSnapshot, error) {
	employees, err := r.employees().All(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shared.EmployeeSnapshot, 0, len(employees))
	for _, e := range employees {
		snapshots = append(snapshots, shared.EmployeeSnapshot{
			ID:         e.ID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      e.Email,
			Department: e.Department,
		})
	}
	return snapshots, nil
}

func (r *commandReads) CouponCountForPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (int64, error) {
	return r.coupons().CountForPeriod(ctx, employeeID, month, year)
}

func (r *commandReads) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	return r.coupons().BarcodeExists(ctx, barcode)
}

func (r *commandReads) CountExpiringBetween(ctx context.Context, after, until time.Time) (int64, error) {
	return r.coupons().CountExpiringBetween(ctx, after, until)
}

func (r *commandReads) DepartmentClaimStats(ctx context.Context) ([]shared.DepartmentClaimStats, error) {
	return r.analytics().DepartmentClaimStats(ctx)
}

func (r *commandReads) PerfectClaimEmployees(ctx context.Context, minCoupons int) ([]shared.EmployeeClaimStats, error) {
	return r.analytics().PerfectClaimEmployees(ctx, minCoupons)
}
