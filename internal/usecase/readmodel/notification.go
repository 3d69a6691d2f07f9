package readmodel

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationRM struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Priority   string          `json:"priority"`
	Department *string         `json:"department,omitempty"`
	EmployeeID *uuid.UUID      `json:"employee_id,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Read       bool            `json:"read"`
	CreatedAt  time.Time       `json:"created_at"`
}
