package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stitchline/storefront/internal/db"
	"github.com/stitchline/storefront/internal/domain"
	domorder "github.com/stitchline/storefront/internal/domain/order"
)

// findPageSize is the index page fetched per round while filling a
// recency window after status filtering.
const findPageSize = 20

// store is the consumer interface for orders (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Repo implements the order read/write contracts over the document store.
// Besides the order documents it maintains three recency indexes (sorted
// sets scored by creation time): global, per-user, and per-product. The
// per-product index is what makes the also-bought window query cheap.
type Repo struct {
	store store
}

// New creates an order repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create persists a new order and updates the recency indexes.
func (r *Repo) Create(ctx context.Context, o *domorder.Order) error {
	key := orderKey(o.ID())
	data, err := json.Marshal(docFromOrder(o))
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}

	score := float64(o.CreatedAt())
	if err := r.store.ZAdd(ctx, recentKey(), score, o.ID()); err != nil {
		return fmt.Errorf("index order %s: %w", o.ID(), err)
	}
	if err := r.store.ZAdd(ctx, userKey(o.UserID()), score, o.ID()); err != nil {
		return fmt.Errorf("index order %s for user: %w", o.ID(), err)
	}

	seen := make(map[string]struct{}, len(o.Items()))
	for _, it := range o.Items() {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		if err := r.store.ZAdd(ctx, productKey(it.ProductID), score, o.ID()); err != nil {
			return fmt.Errorf("index order %s for product %s: %w", o.ID(), it.ProductID, err)
		}
	}
	return nil
}

// Get returns an order by ID.
func (r *Repo) Get(ctx context.Context, id string) (domorder.Order, error) {
	raw, err := r.store.JSONGet(ctx, orderKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domorder.Order{}, domain.ErrOrderNotFound
		}
		return domorder.Order{}, fmt.Errorf("json.get %s: %w", orderKey(id), err)
	}
	return parseJSONGetResult(id, raw)
}

// FindContainingProduct returns up to limit most recent orders that
// contain the given product, excluding cancelled orders. The status
// filter applies before the cap, so the index is paged until the window
// fills or the index is exhausted.
func (r *Repo) FindContainingProduct(ctx context.Context, productID string, limit int) ([]domorder.Order, error) {
	if limit <= 0 {
		return nil, nil
	}

	key := productKey(productID)
	out := make([]domorder.Order, 0, limit)

	for offset := int64(0); ; offset += findPageSize {
		ids, err := r.store.ZRevRange(ctx, key, offset, offset+findPageSize-1)
		if err != nil {
			return nil, fmt.Errorf("read product order index %s: %w", productID, err)
		}
		if len(ids) == 0 {
			return out, nil
		}

		orders, err := r.fetchAll(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			if orders[i].Status() == domorder.StatusCancelled {
				continue
			}
			out = append(out, orders[i])
			if len(out) >= limit {
				return out, nil
			}
		}
	}
}

// ListByUser returns a user's orders, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domorder.Order, error) {
	ids, err := r.store.ZRevRange(ctx, userKey(userID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("read user order index %s: %w", userID, err)
	}
	return r.fetchAll(ctx, ids)
}

// ListRecent returns up to limit orders, most recent first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domorder.Order, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	ids, err := r.store.ZRevRange(ctx, recentKey(), 0, stop)
	if err != nil {
		return nil, fmt.Errorf("read order index: %w", err)
	}
	return r.fetchAll(ctx, ids)
}

// Count returns the total number of orders.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.ZCard(ctx, recentKey())
	if err != nil {
		return 0, fmt.Errorf("count order index: %w", err)
	}
	return int(n), nil
}

// PaidRevenue sums totalAmount across orders with paid payment status.
func (r *Repo) PaidRevenue(ctx context.Context) (float64, error) {
	orders, err := r.ListRecent(ctx, 0)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := range orders {
		if orders[i].PaymentStatus() == domorder.PaymentPaid {
			total += orders[i].TotalAmount()
		}
	}
	return total, nil
}

// UpdateStatus performs a partial update of the order status:
// JSON.GET, replace field, JSON.SET.
func (r *Repo) UpdateStatus(ctx context.Context, id string, status domorder.Status) error {
	key := orderKey(id)

	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("json.get %s: %w", key, err)
	}

	var docs []orderDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("unmarshal for status update: %w", err)
	}
	if len(docs) == 0 {
		return domain.ErrOrderNotFound
	}

	current := docs[0]
	current.Status = string(status)

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal updated order: %w", err)
	}
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// fetchAll hydrates orders for the given IDs, preserving order and
// skipping IDs whose document is gone.
func (r *Repo) fetchAll(ctx context.Context, ids []string) ([]domorder.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = orderKey(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("json.get multi: %w", err)
	}

	orders := make([]domorder.Order, 0, len(ids))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		o, err := parseJSONGetResult(ids[i], raw)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func orderKey(id string) string {
	return fmt.Sprintf("%sorder:%s", domain.KeyPrefix, id)
}

func recentKey() string {
	return domain.KeyPrefix + "orders:recent"
}

func userKey(userID string) string {
	return fmt.Sprintf("%sorders:by-user:%s", domain.KeyPrefix, userID)
}

func productKey(productID string) string {
	return fmt.Sprintf("%sorders:by-product:%s", domain.KeyPrefix, productID)
}
