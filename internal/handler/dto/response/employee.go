package response

import (
	"mealpass-api/internal/usecase/readmodel"
)

type EmployeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromEmployee(e *readmodel.EmployeeRM) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         e.ID.String(),
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.Unix(),
		UpdatedAt:  e.UpdatedAt.Unix(),
	}
}

func FromEmployeeList(items []readmodel.EmployeeRM) []*EmployeeResponse {
	res := make([]*EmployeeResponse, len(items))
	for i := range items {
		res[i] = FromEmployee(&items[i])
	}
	return res
}

type EmployeePerformanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Department     string `json:"department"`
	Email          string `json:"email"`
	TotalCoupons   int64  `json:"total_coupons"`
	TotalClaimed   int64  `json:"total_claimed"`
	TotalUnclaimed int64  `json:"total_unclaimed"`
	LastClaimed    *int64 `json:"last_claimed,omitempty"`
}

func FromEmployeePerformanceList(items []readmodel.EmployeePerformanceRM) []*EmployeePerformanceResponse {
	res := make([]*EmployeePerformanceResponse, len(items))
	for i, it := range items {
		r := &EmployeePerformanceResponse{
			EmployeeID:     it.EmployeeID.String(),
			FirstName:      it.FirstName,
			LastName:       it.LastName,
			Department:     it.Department,
			Email:          it.Email,
			TotalCoupons:   it.TotalCoupons,
			TotalClaimed:   it.TotalClaimed,
			TotalUnclaimed: it.TotalUnclaimed,
		}
		if it.LastClaimed != nil {
			ts := it.LastClaimed.Unix()
			r.LastClaimed = &ts
		}
		res[i] = r
	}
	return res
}
