package catalog

import (
	"context"

	"github.com/stitchline/storefront/internal/domain/product"
)

// Repository defines the storage contract for catalog operations.
type Repository interface {
	Upsert(ctx context.Context, p *product.Product) (bool, error)
	GetByID(ctx context.Context, id string) (product.Product, error)
	List(ctx context.Context, offset, limit int) ([]product.Product, error)
	ListByCategory(ctx context.Context, category string, offset, limit int) ([]product.Product, int, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
