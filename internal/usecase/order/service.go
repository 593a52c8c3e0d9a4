package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stitchline/storefront/internal/domain"
	domorder "github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
)

// Line is one requested order line.
type Line struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// Service handles order placement and management.
type Service struct {
	orders  Repository
	catalog CatalogStore
	now     func() time.Time
	newID   func() string
}

// New creates an order service.
func New(orders Repository, catalog CatalogStore) *Service {
	return &Service{
		orders:  orders,
		catalog: catalog,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create places an order: every line product must resolve and have
// sufficient stock before any stock is decremented. Unit prices and the
// order total are computed server-side from the catalog.
func (s *Service) Create(
	ctx context.Context, userID string, lines []Line,
	shipping domorder.Address, paymentMethod string,
) (domorder.Order, error) {
	if len(lines) == 0 {
		return domorder.Order{}, fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	// Validate the whole order first so a failing line never leaves a
	// partial stock decrement behind.
	products := make(map[string]product.Product, len(lines))
	wanted := make(map[string]int, len(lines))
	for i, l := range lines {
		if l.Quantity <= 0 {
			return domorder.Order{}, fmt.Errorf("%w: item %d: quantity must be positive", domain.ErrValidation, i)
		}
		if _, ok := products[l.ProductID]; !ok {
			p, err := s.catalog.GetByID(ctx, l.ProductID)
			if err != nil {
				return domorder.Order{}, fmt.Errorf("resolve product %s: %w", l.ProductID, err)
			}
			products[l.ProductID] = p
		}
		wanted[l.ProductID] += l.Quantity
	}
	for pid, qty := range wanted {
		if p := products[pid]; p.Stock() < qty {
			return domorder.Order{}, fmt.Errorf("%w: insufficient stock for %s", domain.ErrOutOfStock, p.Name())
		}
	}

	items := make([]domorder.LineItem, len(lines))
	var total float64
	for i, l := range lines {
		p := products[l.ProductID]
		items[i] = domorder.LineItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
			UnitPrice: p.Price(),
		}
		total += p.Price() * float64(l.Quantity)
	}

	o, err := domorder.New(s.newID(), userID, items, shipping, paymentMethod)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	o = o.WithTotal(total).WithCreatedAt(s.now().UnixMilli())

	for pid, qty := range wanted {
		p := products[pid].WithStock(products[pid].Stock() - qty)
		if _, err := s.catalog.Upsert(ctx, &p); err != nil {
			return domorder.Order{}, fmt.Errorf("decrement stock for %s: %w", pid, err)
		}
	}

	if err := s.orders.Create(ctx, &o); err != nil {
		return domorder.Order{}, fmt.Errorf("store order: %w", err)
	}
	return o, nil
}

// Get returns an order by ID.
func (s *Service) Get(ctx context.Context, id string) (domorder.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListByUser returns a user's orders, most recent first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domorder.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrValidation)
	}
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}

// ListAll returns all orders, most recent first.
func (s *Service) ListAll(ctx context.Context) ([]domorder.Order, error) {
	orders, err := s.orders.ListRecent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to the given fulfilment status.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (domorder.Order, error) {
	status, err := domorder.ParseStatus(rawStatus)
	if err != nil {
		return domorder.Order{}, err
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return domorder.Order{}, fmt.Errorf("update order status: %w", err)
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return domorder.Order{}, fmt.Errorf("reload order: %w", err)
	}
	return o, nil
}
