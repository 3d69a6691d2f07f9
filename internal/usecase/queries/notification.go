package queries

import (
	"context"

	"mealpass-api/internal/usecase/readmodel"
)

const notificationListLimit = 50

type NotificationListResult struct {
	Notifications []readmodel.NotificationRM `json:"notifications"`
	UnreadCount   int64                      `json:"unread_count"`
}

type NotificationReadStore interface {
	List(ctx context.Context, limit int) ([]readmodel.NotificationRM, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context) (*NotificationListResult, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context) (*NotificationListResult, error) {
	notifications, err := q.store.List(ctx, notificationListLimit)
	if err != nil {
		return nil, err
	}
	unread, err := q.store.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}
	return &NotificationListResult{Notifications: notifications, UnreadCount: unread}, nil
}
