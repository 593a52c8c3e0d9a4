package storefront

import (
	"context"
	"time"

	"github.com/stitchline/storefront/internal/domain/product"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
)

// Product is the public product representation.
type Product struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Price         float64
	OriginalPrice float64
	Image         string
	Images        []string
	Sizes         []string
	Colors        []string
	Stock         int
	InStock       bool
	Featured      bool
	Rating        float64
	Reviews       int
	CreatedAt     time.Time
}

// ProductDraft carries the fields for creating or updating a product.
type ProductDraft struct {
	Name          string
	Description   string
	Category      string
	Price         float64
	OriginalPrice float64
	Image         string
	Images        []string
	Sizes         []string
	Colors        []string
	Stock         int
	Featured      bool
	Rating        float64
	Reviews       int
}

// ProductService manages the catalog.
type ProductService struct {
	svc *cataloguc.Service
}

// Create validates and stores a new product, returning it with its
// generated ID.
func (s *ProductService) Create(ctx context.Context, d ProductDraft) (Product, error) {
	p, err := s.svc.Create(ctx, draftToInternal(d))
	if err != nil {
		return Product{}, err
	}
	return productFromDomain(&p), nil
}

// Update replaces an existing product's fields.
func (s *ProductService) Update(ctx context.Context, id string, d ProductDraft) (Product, error) {
	p, err := s.svc.Update(ctx, id, draftToInternal(d))
	if err != nil {
		return Product{}, err
	}
	return productFromDomain(&p), nil
}

// Get returns a product by ID.
func (s *ProductService) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return productFromDomain(&p), nil
}

// List returns a page of products plus the matching total. An empty
// category means the whole catalog.
func (s *ProductService) List(ctx context.Context, category string, offset, limit int) ([]Product, int, error) {
	products, total, err := s.svc.List(ctx, category, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Product, len(products))
	for i := range products {
		out[i] = productFromDomain(&products[i])
	}
	return out, total, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.svc.Delete(ctx, id)
}

func draftToInternal(d ProductDraft) cataloguc.Draft {
	return cataloguc.Draft{
		Name:          d.Name,
		Description:   d.Description,
		Category:      d.Category,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Image:         d.Image,
		Images:        d.Images,
		Sizes:         d.Sizes,
		Colors:        d.Colors,
		Stock:         d.Stock,
		Featured:      d.Featured,
		Rating:        d.Rating,
		Reviews:       d.Reviews,
	}
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Category:      p.Category(),
		Price:         p.Price(),
		OriginalPrice: p.OriginalPrice(),
		Image:         p.Image(),
		Images:        p.Images(),
		Sizes:         p.Sizes(),
		Colors:        p.Colors(),
		Stock:         p.Stock(),
		InStock:       p.InStock(),
		Featured:      p.Featured(),
		Rating:        p.Rating(),
		Reviews:       p.Reviews(),
		CreatedAt:     time.UnixMilli(p.CreatedAt()).UTC(),
	}
}
