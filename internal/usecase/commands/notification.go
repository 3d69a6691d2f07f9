package commands

import (
	"context"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	uow  shared.UnitOfWork
	repo shared.NotificationRepository
}

func NewNotificationUseCase(uow shared.UnitOfWork, repo shared.NotificationRepository) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow, repo: repo}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := uc.repo.MarkRead(ctx, dbtx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrNotificationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context) (int64, error) {
	var updated int64
	err := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		n, err := uc.repo.MarkAllRead(ctx, dbtx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = n
		return nil
	})
	return updated, err
}

func (uc *notificationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := uc.repo.Delete(ctx, dbtx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrNotificationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
