package order

import (
	"context"

	domorder "github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
)

// Repository defines the storage contract for orders.
type Repository interface {
	Create(ctx context.Context, o *domorder.Order) error
	Get(ctx context.Context, id string) (domorder.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domorder.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domorder.Order, error)
	UpdateStatus(ctx context.Context, id string, status domorder.Status) error
}

// CatalogStore resolves products and persists stock changes.
type CatalogStore interface {
	GetByID(ctx context.Context, id string) (product.Product, error)
	Upsert(ctx context.Context, p *product.Product) (bool, error)
}
