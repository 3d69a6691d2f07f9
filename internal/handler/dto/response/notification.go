package response

import (
	"encoding/json"

	"mealpass-api/internal/usecase/queries"
	"mealpass-api/internal/usecase/readmodel"
)

type NotificationResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Priority   string          `json:"priority"`
	Department *string         `json:"department,omitempty"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Read       bool            `json:"read"`
	CreatedAt  int64           `json:"created_at"`
}

func FromNotification(n *readmodel.NotificationRM) *NotificationResponse {
	resp := &NotificationResponse{
		ID:         n.ID.String(),
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Priority:   n.Priority,
		Department: n.Department,
		Data:       n.Data,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.Unix(),
	}
	if n.EmployeeID != nil {
		id := n.EmployeeID.String()
		resp.EmployeeID = &id
	}
	return resp
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unread_count"`
}

func FromNotificationList(r *queries.NotificationListResult) *NotificationListResponse {
	items := make([]*NotificationResponse, len(r.Notifications))
	for i := range r.Notifications {
		items[i] = FromNotification(&r.Notifications[i])
	}
	return &NotificationListResponse{
		Notifications: items,
		UnreadCount:   r.UnreadCount,
	}
}
