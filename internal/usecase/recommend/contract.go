package recommend

import (
	"context"

	"github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
)

// CatalogReader supplies the target product and the comparison population.
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (product.Product, error)
	GetAllExcept(ctx context.Context, id string) ([]product.Product, error)
}

// OrderReader supplies recent non-cancelled orders containing a product,
// most recent first.
type OrderReader interface {
	FindContainingProduct(ctx context.Context, productID string, limit int) ([]order.Order, error)
}
