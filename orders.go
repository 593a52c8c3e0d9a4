package storefront

import (
	"context"
	"time"

	domorder "github.com/stitchline/storefront/internal/domain/order"
	orderuc "github.com/stitchline/storefront/internal/usecase/order"
)

// Address is a shipping destination.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// OrderLine is one requested line when placing an order.
type OrderLine struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// OrderItem is a priced line on a stored order.
type OrderItem struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
	UnitPrice float64
}

// Order is the public order representation.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	Status        string
	PaymentStatus string
	TotalAmount   float64
	Shipping      Address
	PaymentMethod string
	CreatedAt     time.Time
}

// OrderService places and manages orders.
type OrderService struct {
	svc *orderuc.Service
}

// Create places an order for the given user. Prices and the total are
// computed from the catalog; stock is checked for every line before any
// decrement happens.
func (s *OrderService) Create(
	ctx context.Context, userID string, lines []OrderLine,
	shipping Address, paymentMethod string,
) (Order, error) {
	internal := make([]orderuc.Line, len(lines))
	for i, l := range lines {
		internal[i] = orderuc.Line{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
		}
	}
	o, err := s.svc.Create(ctx, userID, internal, domorder.Address{
		Street: shipping.Street, City: shipping.City, State: shipping.State,
		ZipCode: shipping.ZipCode, Country: shipping.Country,
	}, paymentMethod)
	if err != nil {
		return Order{}, err
	}
	return orderFromDomain(&o), nil
}

// Get returns an order by ID.
func (s *OrderService) Get(ctx context.Context, id string) (Order, error) {
	o, err := s.svc.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	return orderFromDomain(&o), nil
}

// ListByUser returns a user's orders, most recent first.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	orders, err := s.svc.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ordersFromDomain(orders), nil
}

// UpdateStatus moves an order to the given fulfilment status.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (Order, error) {
	o, err := s.svc.UpdateStatus(ctx, id, status)
	if err != nil {
		return Order{}, err
	}
	return orderFromDomain(&o), nil
}

func orderFromDomain(o *domorder.Order) Order {
	items := make([]OrderItem, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			UnitPrice: it.UnitPrice,
		}
	}
	ship := o.Shipping()
	return Order{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Items:         items,
		Status:        string(o.Status()),
		PaymentStatus: string(o.PaymentStatus()),
		TotalAmount:   o.TotalAmount(),
		Shipping: Address{
			Street: ship.Street, City: ship.City, State: ship.State,
			ZipCode: ship.ZipCode, Country: ship.Country,
		},
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     time.UnixMilli(o.CreatedAt()).UTC(),
	}
}

func ordersFromDomain(orders []domorder.Order) []Order {
	out := make([]Order, len(orders))
	for i := range orders {
		out[i] = orderFromDomain(&orders[i])
	}
	return out
}
