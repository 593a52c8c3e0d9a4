// Package storefront provides an embeddable client for the storefront
// catalog, order, and recommendation services, backed directly by the
// database without going through the HTTP API.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stitchline/storefront/internal/db"
	dbRedis "github.com/stitchline/storefront/internal/db/redis"
	catalogrepo "github.com/stitchline/storefront/internal/repository/catalog"
	orderrepo "github.com/stitchline/storefront/internal/repository/order"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
	orderuc "github.com/stitchline/storefront/internal/usecase/order"
	recommenduc "github.com/stitchline/storefront/internal/usecase/recommend"
)

const defaultReadinessTimeout = 10 * time.Second

type clientConfig struct {
	addrs    []string
	username string
	password string
	database int

	defaultPageSize int
	maxPageSize     int
}

// Option configures the Client.
type Option func(*clientConfig)

// WithRedis sets the database addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithCredentials sets database authentication.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDatabase selects a logical database index.
func WithDatabase(n int) Option {
	return func(c *clientConfig) { c.database = n }
}

// WithPagination overrides catalog listing page size limits.
func WithPagination(defaultSize, maxSize int) Option {
	return func(c *clientConfig) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	}
}

// Client is the storefront SDK entry point.
type Client struct {
	store        db.Store
	catalogSvc   *cataloguc.Service
	orderSvc     *orderuc.Service
	recommendSvc *recommenduc.Service
}

// New creates a storefront Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("storefront: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("storefront: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("storefront: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	catalogRepo := catalogrepo.New(store)
	orderRepo := orderrepo.New(store)

	catalogSvc := cataloguc.New(catalogRepo)
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		catalogSvc = catalogSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}

	return &Client{
		store:        store,
		catalogSvc:   catalogSvc,
		orderSvc:     orderuc.New(orderRepo, catalogRepo),
		recommendSvc: recommenduc.New(catalogRepo, orderRepo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Products returns the catalog service.
func (c *Client) Products() *ProductService {
	return &ProductService{svc: c.catalogSvc}
}

// Orders returns the order service.
func (c *Client) Orders() *OrderService {
	return &OrderService{svc: c.orderSvc}
}

// Recommendations returns the recommendation service.
func (c *Client) Recommendations() *RecommendationService {
	return &RecommendationService{svc: c.recommendSvc}
}
