package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stitchline/storefront/internal/domain"
	domorder "github.com/stitchline/storefront/internal/domain/order"
)

func TestCreate_IndexesOrder(t *testing.T) {
	repo, fs := newTestRepo()
	ctx := context.Background()

	o := testOrder(t, "o1", "user-1", 1000, "p1", "p2", "p1")
	if err := repo.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID() != "user-1" || len(got.Items()) != 3 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}

	if n := len(fs.zsets[recentKey()]); n != 1 {
		t.Errorf("expected 1 entry in recent index, got %d", n)
	}
	if n := len(fs.zsets[userKey("user-1")]); n != 1 {
		t.Errorf("expected 1 entry in user index, got %d", n)
	}
	// p1 appears on two lines but must be indexed once.
	if n := len(fs.zsets[productKey("p1")]); n != 1 {
		t.Errorf("expected 1 entry in p1 index, got %d", n)
	}
	if n := len(fs.zsets[productKey("p2")]); n != 1 {
		t.Errorf("expected 1 entry in p2 index, got %d", n)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestFindContainingProduct_MostRecentFirst(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	for i, id := range []string{"o1", "o2", "o3"} {
		o := testOrder(t, id, "user-1", int64(1000+i), "target", "other")
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	orders, err := repo.FindContainingProduct(ctx, "target", 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID() != "o3" || orders[1].ID() != "o2" {
		t.Errorf("expected [o3 o2], got [%s %s]", orders[0].ID(), orders[1].ID())
	}
}

func TestFindContainingProduct_SkipsCancelled(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	open := testOrder(t, "o1", "user-1", 1000, "target")
	if err := repo.Create(ctx, &open); err != nil {
		t.Fatalf("create: %v", err)
	}
	cancelled := testOrder(t, "o2", "user-1", 2000, "target")
	cancelled = cancelled.WithStatus(domorder.StatusCancelled)
	if err := repo.Create(ctx, &cancelled); err != nil {
		t.Fatalf("create: %v", err)
	}

	orders, err := repo.FindContainingProduct(ctx, "target", 10)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(orders) != 1 || orders[0].ID() != "o1" {
		t.Fatalf("cancelled orders must be filtered, got %+v", orders)
	}
}

func TestFindContainingProduct_FillsWindowAcrossPages(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	// More orders than one index page; the fifteen most recent are all
	// cancelled, so the filter must page deeper to fill the window.
	for i := 0; i < findPageSize+5; i++ {
		o := testOrder(t, orderID(i), "user-1", int64(1000+i), "target")
		if i >= 10 {
			o = o.WithStatus(domorder.StatusCancelled)
		}
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	orders, err := repo.FindContainingProduct(ctx, "target", 10)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(orders) != 10 {
		t.Fatalf("expected a full window of 10, got %d", len(orders))
	}
	for _, o := range orders {
		if o.Status() == domorder.StatusCancelled {
			t.Errorf("cancelled order %s leaked into the window", o.ID())
		}
	}
}

func TestFindContainingProduct_NoOrders(t *testing.T) {
	repo, _ := newTestRepo()

	orders, err := repo.FindContainingProduct(context.Background(), "lonely", 10)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestListByUser(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	mine := testOrder(t, "o1", "user-1", 1000, "p1")
	theirs := testOrder(t, "o2", "user-2", 2000, "p1")
	mineNewer := testOrder(t, "o3", "user-1", 3000, "p2")
	for _, o := range []domorder.Order{mine, theirs, mineNewer} {
		o := o
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create %s: %v", o.ID(), err)
		}
	}

	orders, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID() != "o3" || orders[1].ID() != "o1" {
		t.Errorf("expected [o3 o1], got [%s %s]", orders[0].ID(), orders[1].ID())
	}
}

func TestListRecent_LimitAndAll(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		o := testOrder(t, orderID(i), "user-1", int64(1000+i), "p1")
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	limited, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(limited) != 3 || limited[0].ID() != orderID(4) {
		t.Errorf("expected 3 most recent, got %+v", limited)
	}

	all, err := repo.ListRecent(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("limit 0 must return all orders, got %d", len(all))
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("expected count 5, got %d", n)
	}
}

func TestPaidRevenue(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	paid := testOrder(t, "o1", "user-1", 1000, "p1").
		WithTotal(2500).WithPaymentStatus(domorder.PaymentPaid)
	pending := testOrder(t, "o2", "user-1", 2000, "p1").
		WithTotal(9999)
	alsoPaid := testOrder(t, "o3", "user-2", 3000, "p2").
		WithTotal(500).WithPaymentStatus(domorder.PaymentPaid)
	for _, o := range []domorder.Order{paid, pending, alsoPaid} {
		o := o
		if err := repo.Create(ctx, &o); err != nil {
			t.Fatalf("create %s: %v", o.ID(), err)
		}
	}

	revenue, err := repo.PaidRevenue(ctx)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if revenue != 3000 {
		t.Errorf("expected 3000, got %v", revenue)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	o := testOrder(t, "o1", "user-1", 1000, "p1")
	if err := repo.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(ctx, "o1", domorder.StatusShipped); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := repo.Get(ctx, "o1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status() != domorder.StatusShipped {
		t.Errorf("expected shipped, got %s", got.Status())
	}
	// Everything else survives the partial update.
	if got.TotalAmount() != o.TotalAmount() || got.UserID() != o.UserID() {
		t.Errorf("partial update clobbered fields: %+v", got)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, _ := newTestRepo()

	err := repo.UpdateStatus(context.Background(), "missing", domorder.StatusShipped)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func orderID(i int) string {
	return string(rune('a'+i/10)) + string(rune('a'+i%10))
}
