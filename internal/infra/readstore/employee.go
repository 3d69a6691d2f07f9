package readstore

import (
	"context"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/pkg/pgconv"
	"mealpass-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type EmployeeReadStore struct {
	db db.DBTX
}

func NewEmployeeReadStore(dbtx db.DBTX) *EmployeeReadStore {
	return &EmployeeReadStore{db: dbtx}
}

const selectEmployeeSQL = `
SELECT id, first_name, last_name, email, department, created_at, updated_at
FROM employees`

func (r *EmployeeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EmployeeRM, error) {
	row := r.db.QueryRow(ctx, selectEmployeeSQL+` WHERE id = $1`, pgconv.UUIDToPgtype(id))

	var rm readmodel.EmployeeRM
	err := row.Scan(&rm.ID, &rm.FirstName, &rm.LastName, &rm.Email, &rm.Department, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee", err)
	}
	return &rm, nil
}

func (r *EmployeeReadStore) All(ctx context.Context) ([]readmodel.EmployeeRM, error) {
	rows, err := r.db.Query(ctx, selectEmployeeSQL+` ORDER BY last_name, first_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	defer rows.Close()

	var out []readmodel.EmployeeRM
	for rows.Next() {
		var rm readmodel.EmployeeRM
		if err := rows.Scan(&rm.ID, &rm.FirstName, &rm.LastName, &rm.Email, &rm.Department, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan employee row", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate employees", err)
	}
	return out, nil
}
