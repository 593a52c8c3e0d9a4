package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stitchline/storefront/internal/db"
	"github.com/stitchline/storefront/internal/domain"
	"github.com/stitchline/storefront/internal/domain/product"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Repo implements the catalog read/write contracts over the document store.
// The catalog index is a sorted set scored by creation time, so listings
// and comparison populations come back in stable insertion order.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert creates or updates a product. Returns true if created.
func (r *Repo) Upsert(ctx context.Context, p *product.Product) (bool, error) {
	key := productKey(p.ID())
	data, err := json.Marshal(docFromProduct(p))
	if err != nil {
		return false, fmt.Errorf("marshal product: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	if !exists {
		if err := r.store.ZAdd(ctx, indexKey(), float64(p.CreatedAt()), p.ID()); err != nil {
			return false, fmt.Errorf("index product %s: %w", p.ID(), err)
		}
	}

	return !exists, nil
}

// GetByID returns a product by ID.
func (r *Repo) GetByID(ctx context.Context, id string) (product.Product, error) {
	key := productKey(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return product.Product{}, domain.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("json.get %s: %w", key, err)
	}
	return parseJSONGetResult(id, raw)
}

// GetAllExcept returns every catalog product except the given ID, in
// stable insertion order. Used as the comparison population for scoring.
func (r *Repo) GetAllExcept(ctx context.Context, id string) ([]product.Product, error) {
	ids, err := r.store.ZRange(ctx, indexKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}

	keep := ids[:0]
	for _, pid := range ids {
		if pid != id {
			keep = append(keep, pid)
		}
	}
	return r.fetchAll(ctx, keep)
}

// List returns a page of products in insertion order.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]product.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	ids, err := r.store.ZRange(ctx, indexKey(), int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}
	return r.fetchAll(ctx, ids)
}

// ListByCategory returns a page of products in the given category, in
// insertion order, plus the category total. The index carries no
// category information, so this scans the catalog and filters.
func (r *Repo) ListByCategory(ctx context.Context, category string, offset, limit int) ([]product.Product, int, error) {
	if limit <= 0 {
		limit = 20
	}

	ids, err := r.store.ZRange(ctx, indexKey(), 0, -1)
	if err != nil {
		return nil, 0, fmt.Errorf("read catalog index: %w", err)
	}

	all, err := r.fetchAll(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	matched := all[:0]
	for _, p := range all {
		if p.Category() == category {
			matched = append(matched, p)
		}
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// Count returns the number of catalog products.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.ZCard(ctx, indexKey())
	if err != nil {
		return 0, fmt.Errorf("count catalog index: %w", err)
	}
	return int(n), nil
}

// LowStock returns up to limit products with stock below threshold,
// in insertion order.
func (r *Repo) LowStock(ctx context.Context, threshold, limit int) ([]product.Product, error) {
	ids, err := r.store.ZRange(ctx, indexKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read catalog index: %w", err)
	}

	all, err := r.fetchAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	low := make([]product.Product, 0, limit)
	for _, p := range all {
		if p.Stock() < threshold {
			low = append(low, p)
			if len(low) >= limit {
				break
			}
		}
	}
	return low, nil
}

// Delete removes a product and de-indexes it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := productKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.ZRem(ctx, indexKey(), id); err != nil {
		return fmt.Errorf("de-index product %s: %w", id, err)
	}
	return nil
}

// fetchAll hydrates products for the given IDs, preserving order.
// IDs whose document is gone (deleted between index read and fetch)
// are skipped.
func (r *Repo) fetchAll(ctx context.Context, ids []string) ([]product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get multi: %w", err)
	}

	products := make([]product.Product, 0, len(ids))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		p, err := parseJSONGetResult(ids[i], raw)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func productKey(id string) string {
	return fmt.Sprintf("%sproduct:%s", domain.KeyPrefix, id)
}

func indexKey() string {
	return domain.KeyPrefix + "catalog:index"
}
