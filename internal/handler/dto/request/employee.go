package request

import (
	"mealpass-api/internal/usecase/shared"
)

type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Department string `json:"department" binding:"required,max=100"`
}

type UpdateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Department string `json:"department" binding:"required,max=100"`
}

func (r *CreateEmployeeRequest) ToParams() shared.EmployeeParams {
	return shared.EmployeeParams{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
	}
}

func (r *UpdateEmployeeRequest) ToParams() shared.EmployeeParams {
	return shared.EmployeeParams{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
	}
}
