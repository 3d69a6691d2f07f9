package commands

import (
	"context"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/clock"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmployeeCommands interface {
	Create(ctx context.Context, p shared.EmployeeParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p shared.EmployeeParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArtifactPathsReader lists the rendered barcode files of an employee's
// coupons so they can be removed after the rows cascade away.
type ArtifactPathsReader interface {
	ArtifactPaths(ctx context.Context, employeeID uuid.UUID) ([]string, error)
}

type employeeUseCaseImpl struct {
	uow      shared.UnitOfWork
	repo     shared.EmployeeRepository
	paths    ArtifactPathsReader
	renderer ArtifactRenderer
	clock    clock.Clock
}

func NewEmployeeUseCase(
	uow shared.UnitOfWork,
	repo shared.EmployeeRepository,
	paths ArtifactPathsReader,
	renderer ArtifactRenderer,
	clk clock.Clock,
) EmployeeCommands {
	return &employeeUseCaseImpl{
		uow:      uow,
		repo:     repo,
		paths:    paths,
		renderer: renderer,
		clock:    clk,
	}
}

func (uc *employeeUseCaseImpl) Create(ctx context.Context, p shared.EmployeeParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		created, err := uc.repo.Create(ctx, dbtx, p, uc.clock.Now())
		if err != nil {
			if infra.IsUniqueViolation(err) {
				return errs.ErrEmployeeEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *employeeUseCaseImpl) Update(ctx context.Context, id uuid.UUID, p shared.EmployeeParams) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := uc.repo.Update(ctx, dbtx, id, p, uc.clock.Now()); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.ErrEmployeeNotFound
			case infra.IsUniqueViolation(err):
				return errs.ErrEmployeeEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Delete removes the employee; the schema cascades the coupon rows. Artifact
// paths are collected first and the files removed only after the delete
// commits.
func (uc *employeeUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	paths, err := uc.paths.ArtifactPaths(ctx, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := uc.repo.Delete(ctx, dbtx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrEmployeeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.renderer.Remove(paths)
	return nil
}
