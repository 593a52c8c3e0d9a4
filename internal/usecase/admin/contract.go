package admin

import (
	"context"

	"github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
)

// OrderReader supplies order aggregates for the dashboard.
type OrderReader interface {
	Count(ctx context.Context) (int, error)
	PaidRevenue(ctx context.Context) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]order.Order, error)
}

// CatalogReader supplies low-stock products for the dashboard.
type CatalogReader interface {
	LowStock(ctx context.Context, threshold, limit int) ([]product.Product, error)
}
