package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCouponExpiry    Type = "coupon_expiry"
	TypeDepartmentAlert Type = "department_alert"
	TypeAchievement     Type = "achievement"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Sweep rule thresholds
const (
	// LowClaimRateThreshold is the department claim-rate percentage below
	// which a performance alert fires.
	LowClaimRateThreshold = 70.0

	// AchievementMinCoupons keeps the perfect-rate achievement from firing
	// on trivially small coupon sets.
	AchievementMinCoupons = 5
)

// Notification is a derived alert over aggregate coupon state. One per
// (type, scope, business day); the sweep deduplicates before inserting.
type Notification struct {
	id         uuid.UUID
	typ        Type
	title      string
	message    string
	priority   Priority
	department *string
	employeeID *uuid.UUID
	data       map[string]any
	read       bool
	createdAt  time.Time
}

func NewExpiryAlert(expiringCount int, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		typ:       TypeCouponExpiry,
		title:     "Coupons Expiring Soon",
		message:   fmt.Sprintf("%d coupons will expire within 24 hours", expiringCount),
		priority:  PriorityHigh,
		data:      map[string]any{"count": expiringCount},
		createdAt: now,
	}
}

func NewDepartmentAlert(department string, claimRate float64, now time.Time) *Notification {
	dept := department
	return &Notification{
		id:         uuid.New(),
		typ:        TypeDepartmentAlert,
		title:      "Department Performance Alert",
		message:    fmt.Sprintf("%s has a low claim rate of %.1f%%", department, claimRate),
		priority:   PriorityMedium,
		department: &dept,
		data:       map[string]any{"claim_rate": claimRate},
		createdAt:  now,
	}
}

func NewAchievement(employeeID uuid.UUID, employeeName, department string, totalCoupons int, now time.Time) *Notification {
	dept := department
	empID := employeeID
	return &Notification{
		id:         uuid.New(),
		typ:        TypeAchievement,
		title:      "Perfect Claim Rate Achievement",
		message:    fmt.Sprintf("%s from %s has achieved 100%% claim rate!", employeeName, department),
		priority:   PriorityLow,
		department: &dept,
		employeeID: &empID,
		data:       map[string]any{"claim_rate": 100.0, "total_coupons": totalCoupons},
		createdAt:  now,
	}
}

func (n *Notification) ID() uuid.UUID { return n.id }
func (n *Notification) Type() Type { return n.typ }
func (n *Notification) Title() string { return n.title }
func (n *Notification) Message() string { return n.message }
func (n *Notification) Priority() Priority { return n.priority }
func (n *Notification) Department() *string { return n.department }
func (n *Notification) EmployeeID() *uuid.UUID { return n.employeeID }
func (n *Notification) Data() map[string]any { return n.data }
func (n *Notification) Read() bool { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
