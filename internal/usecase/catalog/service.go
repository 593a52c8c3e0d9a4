package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stitchline/storefront/internal/domain"
	"github.com/stitchline/storefront/internal/domain/product"
)

// Draft carries the client-supplied product fields for create/update.
type Draft struct {
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

// Service handles catalog product management.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: 20,
		maxPageSize:     100,
		now:             time.Now,
	}
}

// WithPagination overrides listing page size limits.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Create validates a draft and stores it as a new product.
func (s *Service) Create(ctx context.Context, d Draft) (product.Product, error) {
	p, err := buildProduct(uuid.NewString(), d)
	if err != nil {
		return product.Product{}, err
	}
	p = p.WithCreatedAt(s.now().UnixMilli())

	if _, err := s.repo.Upsert(ctx, &p); err != nil {
		return product.Product{}, fmt.Errorf("store product: %w", err)
	}
	return p, nil
}

// Update replaces an existing product's fields, keeping its identity
// and creation time.
func (s *Service) Update(ctx context.Context, id string, d Draft) (product.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return product.Product{}, fmt.Errorf("get product: %w", err)
	}

	p, err := buildProduct(id, d)
	if err != nil {
		return product.Product{}, err
	}
	p = p.WithCreatedAt(existing.CreatedAt())

	if _, err := s.repo.Upsert(ctx, &p); err != nil {
		return product.Product{}, fmt.Errorf("store product: %w", err)
	}
	return p, nil
}

// Get returns a product by ID.
func (s *Service) Get(ctx context.Context, id string) (product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return product.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List returns a page of products plus the matching total. An empty
// category means the whole catalog; otherwise the page and total cover
// only products in that category.
func (s *Service) List(ctx context.Context, category string, offset, limit int) ([]product.Product, int, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	if category != "" {
		products, total, err := s.repo.ListByCategory(ctx, category, offset, limit)
		if err != nil {
			return nil, 0, fmt.Errorf("list products by category: %w", err)
		}
		return products, total, nil
	}

	products, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return products, total, nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func buildProduct(id string, d Draft) (product.Product, error) {
	p, err := product.New(id, d.Name, d.Description, d.Category, d.Price, d.Stock)
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return p.WithDetails(
		d.OriginalPrice, d.Image, d.Images, d.Sizes, d.Colors,
		d.Featured, d.Rating, d.Reviews,
	), nil
}
