package order

import (
	"encoding/json"
	"fmt"

	domorder "github.com/stitchline/storefront/internal/domain/order"
)

// orderDoc is the JSON storage shape of an order.
type orderDoc struct {
	UserID        string        `json:"userId"`
	Items         []lineItemDoc `json:"items"`
	Status        string        `json:"status"`
	PaymentStatus string        `json:"paymentStatus"`
	TotalAmount   float64       `json:"totalAmount"`
	Shipping      addressDoc    `json:"shippingAddress"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	CreatedAt     int64         `json:"createdAt"`
}

type lineItemDoc struct {
	ProductID string  `json:"product"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	UnitPrice float64 `json:"price"`
}

type addressDoc struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

func docFromOrder(o *domorder.Order) orderDoc {
	items := make([]lineItemDoc, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = lineItemDoc{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			UnitPrice: it.UnitPrice,
		}
	}
	ship := o.Shipping()
	return orderDoc{
		UserID:        o.UserID(),
		Items:         items,
		Status:        string(o.Status()),
		PaymentStatus: string(o.PaymentStatus()),
		TotalAmount:   o.TotalAmount(),
		Shipping: addressDoc{
			Street: ship.Street, City: ship.City, State: ship.State,
			ZipCode: ship.ZipCode, Country: ship.Country,
		},
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     o.CreatedAt(),
	}
}

func (d *orderDoc) toOrder(id string) domorder.Order {
	items := make([]domorder.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = domorder.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			UnitPrice: it.UnitPrice,
		}
	}
	return domorder.Reconstruct(
		id, d.UserID, items,
		domorder.Status(d.Status), domorder.PaymentStatus(d.PaymentStatus),
		d.TotalAmount,
		domorder.Address{
			Street: d.Shipping.Street, City: d.Shipping.City, State: d.Shipping.State,
			ZipCode: d.Shipping.ZipCode, Country: d.Shipping.Country,
		},
		d.PaymentMethod, d.CreatedAt,
	)
}

// parseJSONGetResult decodes a JSON.GET "$" payload (one-element array).
func parseJSONGetResult(id string, raw []byte) (domorder.Order, error) {
	var docs []orderDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domorder.Order{}, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domorder.Order{}, fmt.Errorf("empty JSON.GET result for order %s", id)
	}
	return docs[0].toOrder(id), nil
}
