package chi

import (
	"time"

	domorder "github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
	domrec "github.com/stitchline/storefront/internal/domain/recommend"
	adminuc "github.com/stitchline/storefront/internal/usecase/admin"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
)

// Wire error codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeProductNotFound  = "product_not_found"
	codeOrderNotFound    = "order_not_found"
	codeInvalidStatus    = "invalid_status"
	codeOutOfStock       = "out_of_stock"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// productResponse is the externally visible product shape. Storage
// identity maps onto the stable "id" field here, and nowhere else.
type productResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Sizes         []string  `json:"sizes,omitempty"`
	Colors        []string  `json:"colors,omitempty"`
	Stock         int       `json:"stock"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	CreatedAt     time.Time `json:"createdAt"`
}

type productListResponse struct {
	Items []productResponse `json:"items"`
	Total int               `json:"total"`
}

type breakdownResponse struct {
	Name        float64 `json:"name"`
	Category    float64 `json:"category"`
	Description float64 `json:"description"`
	Colors      float64 `json:"colors"`
}

type recommendationResponse struct {
	productResponse
	Score     float64           `json:"score"`
	Breakdown breakdownResponse `json:"breakdown"`
}

type productRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
}

func (r *productRequest) toDraft() cataloguc.Draft {
	return cataloguc.Draft{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		Images:        r.Images,
		Sizes:         r.Sizes,
		Colors:        r.Colors,
		Stock:         r.Stock,
		Featured:      r.Featured,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
	}
}

type addressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a *addressPayload) toAddress() domorder.Address {
	return domorder.Address{
		Street: a.Street, City: a.City, State: a.State,
		ZipCode: a.ZipCode, Country: a.Country,
	}
}

type createOrderRequest struct {
	Items []struct {
		ProductID string `json:"product"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	} `json:"items"`
	Shipping      addressPayload `json:"shippingAddress"`
	PaymentMethod string         `json:"paymentMethod"`
}

type orderItemResponse struct {
	ProductID string  `json:"product"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	UnitPrice float64 `json:"price"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Items         []orderItemResponse `json:"items"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	TotalAmount   float64             `json:"totalAmount"`
	Shipping      addressPayload      `json:"shippingAddress"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type statsResponse struct {
	TotalOrders      int               `json:"totalOrders"`
	TotalRevenue     float64           `json:"totalRevenue"`
	RecentOrders     []orderResponse   `json:"recentOrders"`
	LowStockProducts []productResponse `json:"lowStockProducts"`
}

func productToAPI(p *product.Product) productResponse {
	resp := productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		Image:       p.Image(),
		Images:      p.Images(),
		Sizes:       p.Sizes(),
		Colors:      p.Colors(),
		Stock:       p.Stock(),
		InStock:     p.InStock(),
		Featured:    p.Featured(),
		Rating:      p.Rating(),
		Reviews:     p.Reviews(),
		CreatedAt:   time.UnixMilli(p.CreatedAt()).UTC(),
	}
	if p.OriginalPrice() > 0 {
		op := p.OriginalPrice()
		resp.OriginalPrice = &op
	}
	return resp
}

func recommendationToAPI(rec *domrec.Recommendation) recommendationResponse {
	p := rec.Product()
	b := rec.Breakdown()
	return recommendationResponse{
		productResponse: productToAPI(&p),
		Score:           rec.Score(),
		Breakdown: breakdownResponse{
			Name:        b.Name,
			Category:    b.Category,
			Description: b.Description,
			Colors:      b.Colors,
		},
	}
}

func orderToAPI(o *domorder.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = orderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			UnitPrice: it.UnitPrice,
		}
	}
	ship := o.Shipping()
	return orderResponse{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Items:         items,
		Status:        string(o.Status()),
		PaymentStatus: string(o.PaymentStatus()),
		TotalAmount:   o.TotalAmount(),
		Shipping: addressPayload{
			Street: ship.Street, City: ship.City, State: ship.State,
			ZipCode: ship.ZipCode, Country: ship.Country,
		},
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     time.UnixMilli(o.CreatedAt()).UTC(),
	}
}

func ordersToAPI(orders []domorder.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = orderToAPI(&orders[i])
	}
	return out
}

func statsToAPI(s adminuc.Stats) statsResponse {
	products := make([]productResponse, len(s.LowStockProducts))
	for i := range s.LowStockProducts {
		products[i] = productToAPI(&s.LowStockProducts[i])
	}
	return statsResponse{
		TotalOrders:      s.TotalOrders,
		TotalRevenue:     s.TotalRevenue,
		RecentOrders:     ordersToAPI(s.RecentOrders),
		LowStockProducts: products,
	}
}
