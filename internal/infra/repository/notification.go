package repository

import (
	"context"
	"encoding/json"
	"time"

	"mealpass-api/internal/domain/notification"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationSQL = `
INSERT INTO notifications (
	id, type, title, message, priority, department, employee_id, data, read, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	payload, err := json.Marshal(n.Data())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode notification data", err)
	}

	var id uuid.UUID
	err = dbtx.QueryRow(ctx, insertNotificationSQL,
		pgconv.UUIDToPgtype(n.ID()),
		string(n.Type()),
		n.Title(),
		n.Message(),
		string(n.Priority()),
		pgconv.StringPtrToPgtype(n.Department()),
		pgconv.UUIDPtrToPgtype(n.EmployeeID()),
		payload,
		n.Read(),
		pgconv.TimeToPgtype(n.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return id, nil
}

const notificationExistsSQL = `
SELECT EXISTS (
	SELECT 1 FROM notifications
	WHERE type = $1
	  AND created_at >= $2
	  AND ($3::text IS NULL OR department = $3)
	  AND ($4::uuid IS NULL OR employee_id = $4)
)`

// ExistsSince is the best-effort dedup probe: one notification per
// (type, scope, day). Not a hard guarantee under concurrent sweeps.
func (r *NotificationRepository) ExistsSince(ctx context.Context, dbtx db.DBTX, typ notification.Type, department *string, employeeID *uuid.UUID, since time.Time) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, notificationExistsSQL,
		string(typ),
		pgconv.TimeToPgtype(since),
		pgconv.StringPtrToPgtype(department),
		pgconv.UUIDPtrToPgtype(employeeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check notification dedup", err)
	}
	return exists, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `UPDATE notifications SET read = TRUE, updated_at = now() WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, dbtx db.DBTX) (int64, error) {
	tag, err := dbtx.Exec(ctx, `UPDATE notifications SET read = TRUE, updated_at = now() WHERE read = FALSE`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark all notifications read", err)
	}
	return tag.RowsAffected(), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
