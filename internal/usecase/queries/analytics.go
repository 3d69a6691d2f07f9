package queries

import (
	"context"

	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/internal/usecase/shared"
)

type AnalyticsReadStore interface {
	DepartmentClaimStats(ctx context.Context) ([]shared.DepartmentClaimStats, error)
	TopPerformers(ctx context.Context) ([]readmodel.EmployeePerformanceRM, error)
	Summary(ctx context.Context) (*readmodel.SummaryRM, error)
}

type AnalyticsQueries interface {
	Departments(ctx context.Context) ([]readmodel.DepartmentAnalyticsRM, error)
	TopPerformers(ctx context.Context) ([]readmodel.EmployeePerformanceRM, error)
	Summary(ctx context.Context) (*readmodel.SummaryRM, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
}

func NewAnalyticsQueries(store AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store}
}

func (q *analyticsQueriesImpl) Departments(ctx context.Context) ([]readmodel.DepartmentAnalyticsRM, error) {
	stats, err := q.store.DepartmentClaimStats(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]readmodel.DepartmentAnalyticsRM, 0, len(stats))
	for _, s := range stats {
		out = append(out, readmodel.DepartmentAnalyticsRM{
			Department:     s.Department,
			TotalCoupons:   s.TotalCoupons,
			ClaimedCoupons: s.ClaimedCoupons,
			ClaimRate:      s.ClaimRate,
		})
	}
	return out, nil
}

func (q *analyticsQueriesImpl) TopPerformers(ctx context.Context) ([]readmodel.EmployeePerformanceRM, error) {
	return q.store.TopPerformers(ctx)
}

func (q *analyticsQueriesImpl) Summary(ctx context.Context) (*readmodel.SummaryRM, error) {
	return q.store.Summary(ctx)
}
