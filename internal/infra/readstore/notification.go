package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"
	"mealpass-api/internal/usecase/readmodel"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const listNotificationsSQL = `
SELECT id, type, title, message, priority, department, employee_id, data, read, created_at
FROM notifications
ORDER BY created_at DESC
LIMIT $1`

func (r *NotificationReadStore) List(ctx context.Context, limit int) ([]readmodel.NotificationRM, error) {
	rows, err := r.db.Query(ctx, listNotificationsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var out []readmodel.NotificationRM
	for rows.Next() {
		var (
			rm    readmodel.NotificationRM
			dept  pgtype.Text
			empID pgtype.UUID
		)
		if err := rows.Scan(&rm.ID, &rm.Type, &rm.Title, &rm.Message, &rm.Priority,
			&dept, &empID, &rm.Data, &rm.Read, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		rm.Department = pgconv.StringPtrFromPgtype(dept)
		rm.EmployeeID = pgconv.UUIDPtrFromPgtype(empID)
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return out, nil
}

const unreadCountSQL = `SELECT COUNT(*) FROM notifications WHERE NOT read`

func (r *NotificationReadStore) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, unreadCountSQL).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
