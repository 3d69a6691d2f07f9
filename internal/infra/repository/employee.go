package repository

import (
	"context"
	"time"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

const insertEmployeeSQL = `
INSERT INTO employees (id, first_name, last_name, email, department, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id`

func (r *EmployeeRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.EmployeeParams, now time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertEmployeeSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		p.FirstName,
		p.LastName,
		p.Email,
		p.Department,
		pgconv.TimeToPgtype(now),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create employee", err)
	}
	return id, nil
}

const updateEmployeeSQL = `
UPDATE employees
SET first_name = $2, last_name = $3, email = $4, department = $5, updated_at = $6
WHERE id = $1`

func (r *EmployeeRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, p shared.EmployeeParams, now time.Time) error {
	tag, err := dbtx.Exec(ctx, updateEmployeeSQL,
		pgconv.UUIDToPgtype(id),
		p.FirstName,
		p.LastName,
		p.Email,
		p.Department,
		pgconv.TimeToPgtype(now),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("employee not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to the employee's coupons via the schema's FK. The caller
// collects artifact paths beforehand so rendered files can be removed too.
func (r *EmployeeRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM employees WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("employee not found", nil, infra.KindNotFound)
	}
	return nil
}
