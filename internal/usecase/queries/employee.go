package queries

import (
	"context"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type EmployeeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.EmployeeRM, error)
	All(ctx context.Context) ([]readmodel.EmployeeRM, error)
}

type EmployeeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*readmodel.EmployeeRM, error)
	List(ctx context.Context) ([]readmodel.EmployeeRM, error)
}

type employeeQueriesImpl struct {
	store EmployeeReadStore
}

func NewEmployeeQueries(store EmployeeReadStore) EmployeeQueries {
	return &employeeQueriesImpl{store: store}
}

func (q *employeeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*readmodel.EmployeeRM, error) {
	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEmployeeNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *employeeQueriesImpl) List(ctx context.Context) ([]readmodel.EmployeeRM, error) {
	return q.store.All(ctx)
}
