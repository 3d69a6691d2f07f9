//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"time"

	"mealpass-api/internal/domain/coupon"
	"mealpass-api/internal/domain/notification"
	"mealpass-api/internal/infra"
	"mealpass-api/internal/infra/db"
	"mealpass-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory doubles for the unit-of-work seam. They model just enough
// behavior for the command tests: snapshot storage, count gates, and the
// dedup probe.

type fakeReads struct {
	employees map[uuid.UUID]shared.EmployeeSnapshot
	order     []uuid.UUID
	counts    map[string]int64
	barcodes  map[string]bool

	expiring      int64
	expiringAfter time.Time
	expiringUntil time.Time
	deptStats     []shared.DepartmentClaimStats
	achievers     []shared.EmployeeClaimStats

	barcodeAlwaysTaken bool
}

func newFakeReads() *fakeReads {
	return &fakeReads{
		employees: make(map[uuid.UUID]shared.EmployeeSnapshot),
		counts:    make(map[string]int64),
		barcodes:  make(map[string]bool),
	}
}

func (f *fakeReads) addEmployee(e shared.EmployeeSnapshot) {
	f.employees[e.ID] = e
	f.order = append(f.order, e.ID)
}

func periodKey(id uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s|%d|%d", id, month, year)
}

func (f *fakeReads) EmployeeByID(_ context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, infra.WrapRepoErr("employee not found", nil, infra.KindNotFound)
	}
	return &e, nil
}

func (f *fakeReads) AllEmployees(_ context.Context) ([]shared.EmployeeSnapshot, error) {
	out := make([]shared.EmployeeSnapshot, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.employees[id])
	}
	return out, nil
}

func (f *fakeReads) CouponCountForPeriod(_ context.Context, employeeID uuid.UUID, month, year int) (int64, error) {
	return f.counts[periodKey(employeeID, month, year)], nil
}

func (f *fakeReads) BarcodeExists(_ context.Context, barcode string) (bool, error) {
	if f.barcodeAlwaysTaken {
		return true, nil
	}
	return f.barcodes[barcode], nil
}

func (f *fakeReads) CountExpiringBetween(_ context.Context, after, until time.Time) (int64, error) {
	f.expiringAfter = after
	f.expiringUntil = until
	return f.expiring, nil
}

func (f *fakeReads) DepartmentClaimStats(_ context.Context) ([]shared.DepartmentClaimStats, error) {
	return f.deptStats, nil
}

func (f *fakeReads) PerfectClaimEmployees(_ context.Context, minCoupons int) ([]shared.EmployeeClaimStats, error) {
	var out []shared.EmployeeClaimStats
	for _, a := range f.achievers {
		if a.TotalCoupons >= int64(minCoupons) && a.ClaimedCoupons == a.TotalCoupons {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeCouponRepo struct {
	created   []*coupon.Coupon
	snapshots map[uuid.UUID]shared.CouponSnapshot
	claimed   map[uuid.UUID]time.Time

	createErr error
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{
		snapshots: make(map[uuid.UUID]shared.CouponSnapshot),
		claimed:   make(map[uuid.UUID]time.Time),
	}
}

func (f *fakeCouponRepo) Create(_ context.Context, _ db.DBTX, c *coupon.Coupon) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, c)
	return c.ID(), nil
}

func (f *fakeCouponRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.CouponSnapshot, error) {
	s, ok := f.snapshots[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return &s, nil
}

func (f *fakeCouponRepo) MarkClaimed(_ context.Context, _ db.DBTX, id uuid.UUID, claimedAt time.Time) error {
	s, ok := f.snapshots[id]
	if !ok || s.IsClaimed {
		return infra.WrapRepoErr("coupon already claimed", nil, infra.KindNotFound)
	}
	s.IsClaimed = true
	s.ClaimedAt = &claimedAt
	f.snapshots[id] = s
	f.claimed[id] = claimedAt
	return nil
}

type fakeNotificationRepo struct {
	created []*notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	f.created = append(f.created, n)
	return n.ID(), nil
}

func (f *fakeNotificationRepo) ExistsSince(_ context.Context, _ db.DBTX, typ notification.Type, department *string, employeeID *uuid.UUID, since time.Time) (bool, error) {
	for _, n := range f.created {
		if n.Type() != typ || n.CreatedAt().Before(since) {
			continue
		}
		if department != nil && (n.Department() == nil || *n.Department() != *department) {
			continue
		}
		if employeeID != nil && (n.EmployeeID() == nil || *n.EmployeeID() != *employeeID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	for _, n := range f.created {
		if n.ID() == id {
			return nil
		}
	}
	return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ db.DBTX) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	for i, n := range f.created {
		if n.ID() == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
}

type fakeTx struct {
	coupons       *fakeCouponRepo
	notifications *fakeNotificationRepo
	reads         *fakeReads
}

func (t *fakeTx) Coupons() shared.CouponRepository { return t.coupons }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Reads() shared.CommandReads { return t.reads }
func (t *fakeTx) DB() db.DBTX { return nil }

type fakeUoW struct {
	tx *fakeTx

	// replays makes Within run the closure that many extra times, rolling
	// the write repos back in between, the way the real unit of work
	// retries on a serialization failure.
	replays int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		coupons:       newFakeCouponRepo(),
		notifications: &fakeNotificationRepo{},
		reads:         newFakeReads(),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for ; u.replays > 0; u.replays-- {
		if err := fn(ctx, u.tx); err != nil {
			return err
		}
		u.tx.coupons = newFakeCouponRepo()
		u.tx.notifications = &fakeNotificationRepo{}
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeRenderer struct {
	fail    bool
	renders int
	removed []string
}

func (r *fakeRenderer) Render(code string) (coupon.Artifacts, error) {
	r.renders++
	if r.fail {
		return coupon.Artifacts{}, fmt.Errorf("render failed for %s", code)
	}
	return coupon.Artifacts{
		ImagePath: "barcodes/" + code + ".png",
		SVGPath:   "barcodes/" + code + ".svg",
		Base64:    "data:image/png;base64,AAAA",
	}, nil
}

func (r *fakeRenderer) Remove(paths []string) {
	r.removed = append(r.removed, paths...)
}
