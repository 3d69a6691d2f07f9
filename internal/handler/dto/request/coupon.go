package request

import (
	"github.com/google/uuid"
)

type GenerateCouponsRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	Month      int       `json:"month" binding:"required,min=1,max=12"`
	Year       int       `json:"year" binding:"required"`
}

type GenerateAllCouponsRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required"`
}
