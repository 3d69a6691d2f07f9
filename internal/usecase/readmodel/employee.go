package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeRM struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployeePerformanceRM struct {
	EmployeeID     uuid.UUID  `json:"employee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Department     string     `json:"department"`
	Email          string     `json:"email"`
	TotalCoupons   int64      `json:"total_coupons"`
	TotalClaimed   int64      `json:"total_claimed"`
	TotalUnclaimed int64      `json:"total_unclaimed"`
	LastClaimed    *time.Time `json:"last_claimed,omitempty"`
}
