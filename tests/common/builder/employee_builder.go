//go:build unit || e2e

package builder

import (
	"time"

	reqdto "mealpass-api/internal/handler/dto/request"
	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmployeeBuilder struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewEmployeeBuilder() *EmployeeBuilder {
	now := time.Now()
	return &EmployeeBuilder{
		ID:         uuid.New(),
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria.santos@example.com",
		Department: "Engineering",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EmployeeBuilder) BuildRM() *readmodel.EmployeeRM {
	return &readmodel.EmployeeRM{
		ID:         b.ID,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Department: b.Department,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *EmployeeBuilder) BuildSnapshot() shared.EmployeeSnapshot {
	return shared.EmployeeSnapshot{
		ID:         b.ID,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Department: b.Department,
	}
}

func (b *EmployeeBuilder) BuildCreateRequestDTO() reqdto.CreateEmployeeRequest {
	return reqdto.CreateEmployeeRequest{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Department: b.Department,
	}
}

func (b *EmployeeBuilder) BuildUpdateRequestDTO() reqdto.UpdateEmployeeRequest {
	return reqdto.UpdateEmployeeRequest{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Department: b.Department,
	}
}
