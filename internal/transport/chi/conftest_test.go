package chi

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stitchline/storefront/internal/domain"
	domorder "github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
	adminuc "github.com/stitchline/storefront/internal/usecase/admin"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
	healthuc "github.com/stitchline/storefront/internal/usecase/health"
	orderuc "github.com/stitchline/storefront/internal/usecase/order"
	recommenduc "github.com/stitchline/storefront/internal/usecase/recommend"
)

// fakeCatalog is an in-memory catalog backing the full handler stack.
type fakeCatalog struct {
	products map[string]product.Product
	order    []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[string]product.Product)}
}

func (f *fakeCatalog) Upsert(_ context.Context, p *product.Product) (bool, error) {
	_, exists := f.products[p.ID()]
	if !exists {
		f.order = append(f.order, p.ID())
	}
	f.products[p.ID()] = *p
	return !exists, nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeCatalog) GetAllExcept(_ context.Context, id string) ([]product.Product, error) {
	var out []product.Product
	for _, pid := range f.order {
		if pid != id {
			out = append(out, f.products[pid])
		}
	}
	return out, nil
}

func (f *fakeCatalog) List(_ context.Context, offset, limit int) ([]product.Product, error) {
	if offset >= len(f.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.order) {
		end = len(f.order)
	}
	var out []product.Product
	for _, pid := range f.order[offset:end] {
		out = append(out, f.products[pid])
	}
	return out, nil
}

func (f *fakeCatalog) ListByCategory(_ context.Context, category string, offset, limit int) ([]product.Product, int, error) {
	var matched []product.Product
	for _, pid := range f.order {
		if p := f.products[pid]; p.Category() == category {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeCatalog) Count(_ context.Context) (int, error) {
	return len(f.order), nil
}

func (f *fakeCatalog) LowStock(_ context.Context, threshold, limit int) ([]product.Product, error) {
	var out []product.Product
	for _, pid := range f.order {
		if p := f.products[pid]; p.Stock() < threshold {
			out = append(out, p)
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCatalog) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	keep := f.order[:0]
	for _, pid := range f.order {
		if pid != id {
			keep = append(keep, pid)
		}
	}
	f.order = keep
	return nil
}

// fakeOrders is an in-memory order store, newest last.
type fakeOrders struct {
	orders []domorder.Order
}

func (f *fakeOrders) Create(_ context.Context, o *domorder.Order) error {
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrders) Get(_ context.Context, id string) (domorder.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID() == id {
			return f.orders[i], nil
		}
	}
	return domorder.Order{}, domain.ErrOrderNotFound
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]domorder.Order, error) {
	var out []domorder.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].UserID() == userID {
			out = append(out, f.orders[i])
		}
	}
	return out, nil
}

func (f *fakeOrders) ListRecent(_ context.Context, limit int) ([]domorder.Order, error) {
	var out []domorder.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, status domorder.Status) error {
	for i := range f.orders {
		if f.orders[i].ID() == id {
			f.orders[i] = f.orders[i].WithStatus(status)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (f *fakeOrders) FindContainingProduct(_ context.Context, productID string, limit int) ([]domorder.Order, error) {
	var out []domorder.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if len(out) == limit {
			break
		}
		o := f.orders[i]
		if o.Status() != domorder.StatusCancelled && o.Contains(productID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Count(_ context.Context) (int, error) {
	return len(f.orders), nil
}

func (f *fakeOrders) PaidRevenue(_ context.Context) (float64, error) {
	var total float64
	for i := range f.orders {
		if f.orders[i].PaymentStatus() == domorder.PaymentPaid {
			total += f.orders[i].TotalAmount()
		}
	}
	return total, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

type testHarness struct {
	router  chi.Router
	catalog *fakeCatalog
	orders  *fakeOrders
	pinger  *fakePinger
}

// newTestHarness wires the full handler stack over in-memory fakes with
// admin auth disabled.
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	catalog := newFakeCatalog()
	orders := &fakeOrders{}
	pinger := &fakePinger{}

	server := NewServer(
		cataloguc.New(catalog),
		orderuc.New(orders, catalog),
		recommenduc.New(catalog, orders),
		adminuc.New(orders, catalog, 10),
		healthuc.New(pinger),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	server.Register(r, AdminAuthMiddleware(nil))

	return &testHarness{router: r, catalog: catalog, orders: orders, pinger: pinger}
}

func (h *testHarness) seedProduct(t *testing.T, id, name, category, description string, price float64, stock int, colors ...string) {
	t.Helper()
	p, err := product.New(id, name, description, category, price, stock)
	if err != nil {
		t.Fatalf("product.New: %v", err)
	}
	p = p.WithDetails(0, "", nil, nil, colors, false, 0, 0).WithCreatedAt(int64(1000 + len(h.catalog.order)))
	if _, err := h.catalog.Upsert(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func (h *testHarness) seedOrder(t *testing.T, id, userID string, status domorder.Status, productIDs ...string) {
	t.Helper()
	items := make([]domorder.LineItem, len(productIDs))
	for i, pid := range productIDs {
		items[i] = domorder.LineItem{ProductID: pid, Quantity: 1, UnitPrice: 100}
	}
	o, err := domorder.New(id, userID, items, domorder.Address{}, "card")
	if err != nil {
		t.Fatalf("order.New: %v", err)
	}
	o = o.WithStatus(status).WithTotal(float64(100 * len(items))).WithCreatedAt(int64(1000 + len(h.orders.orders)))
	if err := h.orders.Create(context.Background(), &o); err != nil {
		t.Fatalf("seed order: %v", err)
	}
}
