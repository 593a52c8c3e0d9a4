package admin

import (
	"context"
	"fmt"

	"github.com/stitchline/storefront/internal/domain/order"
	"github.com/stitchline/storefront/internal/domain/product"
)

const recentOrdersLimit = 5
const lowStockLimit = 5

// Stats is the admin dashboard snapshot.
type Stats struct {
	TotalOrders      int
	TotalRevenue     float64
	RecentOrders     []order.Order
	LowStockProducts []product.Product
}

// Service computes back-office dashboard stats.
type Service struct {
	orders            OrderReader
	catalog           CatalogReader
	lowStockThreshold int
}

// New creates an admin service.
func New(orders OrderReader, catalog CatalogReader, lowStockThreshold int) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 10
	}
	return &Service{orders: orders, catalog: catalog, lowStockThreshold: lowStockThreshold}
}

// Stats aggregates order totals, paid revenue, the most recent orders,
// and low-stock products.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count orders: %w", err)
	}

	revenue, err := s.orders.PaidRevenue(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("sum paid revenue: %w", err)
	}

	recent, err := s.orders.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("list recent orders: %w", err)
	}

	lowStock, err := s.catalog.LowStock(ctx, s.lowStockThreshold, lowStockLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("list low stock products: %w", err)
	}

	return Stats{
		TotalOrders:      totalOrders,
		TotalRevenue:     revenue,
		RecentOrders:     recent,
		LowStockProducts: lowStock,
	}, nil
}
