package readstore

import (
	"context"
	"math"

	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/usecase/readmodel"
	"mealpass-api/internal/usecase/shared"
)

type AnalyticsReadStore struct {
	db db.DBTX
}

func NewAnalyticsReadStore(dbtx db.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: dbtx}
}

const departmentStatsSQL = `
SELECT e.department,
       COUNT(c.id),
       COUNT(c.id) FILTER (WHERE c.is_claimed)
FROM employees e
JOIN coupons c ON c.employee_id = e.id
GROUP BY e.department
ORDER BY e.department`

func (r *AnalyticsReadStore) DepartmentClaimStats(ctx context.Context) ([]shared.DepartmentClaimStats, error) {
	rows, err := r.db.Query(ctx, departmentStatsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load department stats", err)
	}
	defer rows.Close()

	var out []shared.DepartmentClaimStats
	for rows.Next() {
		var s shared.DepartmentClaimStats
		if err := rows.Scan(&s.Department, &s.TotalCoupons, &s.ClaimedCoupons); err != nil {
			return nil, infra.WrapRepoErr("failed to scan department stats row", err)
		}
		if s.TotalCoupons > 0 {
			s.ClaimRate = roundRate(float64(s.ClaimedCoupons) / float64(s.TotalCoupons) * 100)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate department stats", err)
	}
	return out, nil
}

const perfectClaimSQL = `
SELECT e.id, e.first_name, e.last_name, e.department,
       COUNT(c.id),
       COUNT(c.id) FILTER (WHERE c.is_claimed)
FROM employees e
JOIN coupons c ON c.employee_id = e.id
GROUP BY e.id, e.first_name, e.last_name, e.department
HAVING COUNT(c.id) >= $1
   AND COUNT(c.id) = COUNT(c.id) FILTER (WHERE c.is_claimed)`

func (r *AnalyticsReadStore) PerfectClaimEmployees(ctx context.Context, minCoupons int) ([]shared.EmployeeClaimStats, error) {
	rows, err := r.db.Query(ctx, perfectClaimSQL, minCoupons)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load perfect-claim employees", err)
	}
	defer rows.Close()

	var out []shared.EmployeeClaimStats
	for rows.Next() {
		var s shared.EmployeeClaimStats
		if err := rows.Scan(&s.EmployeeID, &s.FirstName, &s.LastName, &s.Department, &s.TotalCoupons, &s.ClaimedCoupons); err != nil {
			return nil, infra.WrapRepoErr("failed to scan perfect-claim row", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate perfect-claim employees", err)
	}
	return out, nil
}

const topPerformersSQL = `
SELECT e.id, e.first_name, e.last_name, e.department, e.email,
       COUNT(c.id),
       COUNT(c.id) FILTER (WHERE c.is_claimed),
       COUNT(c.id) FILTER (WHERE NOT c.is_claimed),
       MAX(c.claimed_at) FILTER (WHERE c.is_claimed)
FROM employees e
LEFT JOIN coupons c ON c.employee_id = e.id
GROUP BY e.id, e.first_name, e.last_name, e.department, e.email
ORDER BY COUNT(c.id) FILTER (WHERE c.is_claimed) DESC`

func (r *AnalyticsReadStore) TopPerformers(ctx context.Context) ([]readmodel.EmployeePerformanceRM, error) {
	rows, err := r.db.Query(ctx, topPerformersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load top performers", err)
	}
	defer rows.Close()

	var out []readmodel.EmployeePerformanceRM
	for rows.Next() {
		var rm readmodel.EmployeePerformanceRM
		if err := rows.Scan(&rm.EmployeeID, &rm.FirstName, &rm.LastName, &rm.Department, &rm.Email,
			&rm.TotalCoupons, &rm.TotalClaimed, &rm.TotalUnclaimed, &rm.LastClaimed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan top performer row", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate top performers", err)
	}
	return out, nil
}

const summarySQL = `
SELECT (SELECT COUNT(*) FROM employees),
       (SELECT COUNT(*) FROM coupons),
       (SELECT COUNT(*) FROM coupons WHERE is_claimed)`

func (r *AnalyticsReadStore) Summary(ctx context.Context) (*readmodel.SummaryRM, error) {
	var rm readmodel.SummaryRM
	err := r.db.QueryRow(ctx, summarySQL).Scan(&rm.TotalEmployees, &rm.TotalCoupons, &rm.TotalClaimed)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load summary", err)
	}
	return &rm, nil
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
