package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mealpass-api/internal/domain/calendar"
	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/config"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenerateResult struct {
	EmployeeID uuid.UUID
	Created    int
	// SampleCoupon gives API consumers one concrete coupon to inspect
	// without listing the whole batch.
	SampleCoupon *shared.CouponSnapshot
}

type BulkGenerateResult struct {
	TotalCreated int
	Processed    int
	Skipped      int
}

type GenerationCommands interface {
	GenerateForEmployee(ctx context.Context, employeeID uuid.UUID, month, year int) (*GenerateResult, error)
	GenerateForAll(ctx context.Context, month, year int) (*BulkGenerateResult, error)
}

// ArtifactRenderer produces the printable barcode files. Render failures do
// not abort generation: a coupon without images is still claimable by code.
type ArtifactRenderer interface {
	Render(code string) (coupon.Artifacts, error)
	Remove(paths []string)
}

type generationUseCaseImpl struct {
	uow      shared.UnitOfWork
	cal      *calendar.Calendar
	renderer ArtifactRenderer
	clock    clock.Clock
	business config.BusinessConfig
}

func NewGenerationUseCase(
	uow shared.UnitOfWork,
	cal *calendar.Calendar,
	renderer ArtifactRenderer,
	clk clock.Clock,
	business config.BusinessConfig,
) GenerationCommands {
	return &generationUseCaseImpl{
		uow:      uow,
		cal:      cal,
		renderer: renderer,
		clock:    clk,
		business: business,
	}
}

func (uc *generationUseCaseImpl) GenerateForEmployee(ctx context.Context, employeeID uuid.UUID, month, year int) (*GenerateResult, error) {
	if err := uc.validatePeriod(month, year); err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	if _, err := reads.EmployeeByID(ctx, employeeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEmployeeNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := reads.CouponCountForPeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing > 0 {
		return nil, errs.ErrCouponsAlreadyExist
	}

	return uc.generateBatch(ctx, employeeID, month, year)
}

func (uc *generationUseCaseImpl) GenerateForAll(ctx context.Context, month, year int) (*BulkGenerateResult, error) {
	if err := uc.validatePeriod(month, year); err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	employees, err := reads.AllEmployees(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(employees) == 0 {
		return nil, errs.ErrNoEmployees
	}

	result := &BulkGenerateResult{}
	for _, emp := range employees {
		existing, err := reads.CouponCountForPeriod(ctx, emp.ID, month, year)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if existing > 0 {
			result.Skipped++
			continue
		}

		batch, err := uc.generateBatch(ctx, emp.ID, month, year)
		if err != nil {
			// Another writer won the race for this employee's month.
			if errors.Is(err, errs.ErrCouponsAlreadyExist) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Processed++
		result.TotalCreated += batch.Created
	}
	return result, nil
}

// generateBatch creates one coupon per working day of the month, atomically
// per employee. The unique (employee_id, coupon_date) constraint backstops
// the count-based idempotency check under concurrency.
func (uc *generationUseCaseImpl) generateBatch(ctx context.Context, employeeID uuid.UUID, month, year int) (*GenerateResult, error) {
	days := uc.cal.WorkingDaysInMonth(year, time.Month(month))
	now := uc.clock.Now()

	var result *GenerateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may retry the closure after a rollback; batch state is
		// rebuilt per attempt and published only on the one that commits.
		batch := &GenerateResult{EmployeeID: employeeID}
		seen := make(map[coupon.Barcode]struct{}, len(days))
		for _, day := range days {
			barcode, err := uc.uniqueBarcode(ctx, tx, seen)
			if err != nil {
				return err
			}
			seen[barcode] = struct{}{}

			artifacts := uc.renderArtifacts(barcode)
			entity, err := coupon.NewCoupon(
				uuid.New(),
				employeeID,
				day,
				barcode,
				coupon.NewWorkdayCode(employeeID, day),
				artifacts,
				now,
			)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}

			id, err := tx.Coupons().Create(ctx, tx.DB(), entity)
			if err != nil {
				if infra.IsUniqueViolation(err) {
					return errs.ErrCouponsAlreadyExist
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			batch.Created++
			if batch.SampleCoupon == nil {
				snap := snapshotFromEntity(id, entity)
				batch.SampleCoupon = &snap
			}
		}
		result = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// uniqueBarcode samples random codes until one is free, rejecting both
// database collisions and duplicates within the current batch.
func (uc *generationUseCaseImpl) uniqueBarcode(ctx context.Context, tx shared.Tx, seen map[coupon.Barcode]struct{}) (coupon.Barcode, error) {
	for attempt := 0; attempt < coupon.MaxBarcodeAttempts; attempt++ {
		candidate, err := coupon.NewBarcode()
		if err != nil {
			return "", errs.Mark(err, errs.ErrBarcodeExhausted)
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		exists, err := tx.Reads().BarcodeExists(ctx, string(candidate))
		if err != nil {
			return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errs.ErrBarcodeExhausted
}

func (uc *generationUseCaseImpl) renderArtifacts(barcode coupon.Barcode) coupon.Artifacts {
	artifacts, err := uc.renderer.Render(string(barcode))
	if err != nil {
		slog.Warn("barcode rendering failed, coupon stays claimable by code",
			"barcode", string(barcode), "error", err.Error())
		return coupon.Artifacts{}
	}
	return artifacts
}

func (uc *generationUseCaseImpl) validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return errs.ErrInvalidPeriod
	}
	if year < uc.business.MinYear || year > uc.business.MaxYear {
		return errs.ErrInvalidPeriod
	}
	return nil
}

func snapshotFromEntity(id uuid.UUID, c *coupon.Coupon) shared.CouponSnapshot {
	return shared.CouponSnapshot{
		ID:          id,
		EmployeeID:  c.EmployeeID(),
		CouponDate:  c.CouponDate(),
		Barcode:     string(c.Barcode()),
		WorkdayCode: c.WorkdayCode(),
		ImagePath:   c.Artifacts().ImagePath,
		SVGPath:     c.Artifacts().SVGPath,
		Base64:      c.Artifacts().Base64,
		IsClaimed:   c.IsClaimed(),
		ClaimedAt:   c.ClaimedAt(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
