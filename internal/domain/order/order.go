package order

import (
	"fmt"

	"github.com/stitchline/storefront/internal/domain"
)

// Status is the order fulfilment state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, raw)
	}
}

// PaymentStatus is the payment state.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Address is the shipping destination.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// LineItem is one ordered product line. ProductID may reference a
// product that has since been deleted from the catalog; readers must
// tolerate unresolvable references.
type LineItem struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
	UnitPrice float64
}

// Order is the order aggregate (immutable value object).
type Order struct {
	id            string
	userID        string
	items         []LineItem
	status        Status
	paymentStatus PaymentStatus
	totalAmount   float64
	shipping      Address
	paymentMethod string
	createdAt     int64 // unix millis
}

// New validates and creates an Order in the pending state.
func New(id, userID string, items []LineItem, shipping Address, paymentMethod string) (Order, error) {
	if id == "" {
		return Order{}, fmt.Errorf("order ID is required")
	}
	if userID == "" {
		return Order{}, fmt.Errorf("order user ID is required")
	}
	if len(items) == 0 {
		return Order{}, fmt.Errorf("order must contain at least one item")
	}
	for i, it := range items {
		if it.ProductID == "" {
			return Order{}, fmt.Errorf("item %d: product ID is required", i)
		}
		if it.Quantity <= 0 {
			return Order{}, fmt.Errorf("item %d: quantity must be positive", i)
		}
	}

	return Order{
		id:            id,
		userID:        userID,
		items:         append([]LineItem(nil), items...),
		status:        StatusPending,
		paymentStatus: PaymentPending,
		shipping:      shipping,
		paymentMethod: paymentMethod,
	}, nil
}

// Reconstruct creates an Order without validation (storage hydration).
func Reconstruct(
	id, userID string, items []LineItem,
	status Status, paymentStatus PaymentStatus,
	totalAmount float64, shipping Address, paymentMethod string,
	createdAt int64,
) Order {
	return Order{
		id: id, userID: userID, items: items,
		status: status, paymentStatus: paymentStatus,
		totalAmount: totalAmount, shipping: shipping,
		paymentMethod: paymentMethod, createdAt: createdAt,
	}
}

// ID returns the order identifier.
func (o Order) ID() string { return o.id }

// UserID returns the ordering user's identifier.
func (o Order) UserID() string { return o.userID }

// Items returns the order lines.
func (o Order) Items() []LineItem { return o.items }

// Status returns the fulfilment status.
func (o Order) Status() Status { return o.status }

// PaymentStatus returns the payment status.
func (o Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// TotalAmount returns the order total.
func (o Order) TotalAmount() float64 { return o.totalAmount }

// Shipping returns the shipping address.
func (o Order) Shipping() Address { return o.shipping }

// PaymentMethod returns the chosen payment method.
func (o Order) PaymentMethod() string { return o.paymentMethod }

// CreatedAt returns the creation time in unix milliseconds.
func (o Order) CreatedAt() int64 { return o.createdAt }

// Contains reports whether any line references the given product.
func (o Order) Contains(productID string) bool {
	for _, it := range o.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// WithTotal returns a copy with the server-computed total set.
func (o Order) WithTotal(total float64) Order {
	o.totalAmount = total
	return o
}

// WithCreatedAt returns a copy stamped with the given creation time.
func (o Order) WithCreatedAt(millis int64) Order {
	o.createdAt = millis
	return o
}

// WithStatus returns a copy in the given fulfilment status.
func (o Order) WithStatus(s Status) Order {
	o.status = s
	return o
}

// WithPaymentStatus returns a copy in the given payment status.
func (o Order) WithPaymentStatus(s PaymentStatus) Order {
	o.paymentStatus = s
	return o
}
