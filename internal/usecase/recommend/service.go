package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stitchline/storefront/internal/domain"
	"github.com/stitchline/storefront/internal/domain/product"
	domrec "github.com/stitchline/storefront/internal/domain/recommend"
	"github.com/stitchline/storefront/internal/metrics"
)

const (
	// relatedLimit caps the TF-IDF recommendation list.
	relatedLimit = 4
	// alsoBoughtLimit caps the co-purchase recommendation list.
	alsoBoughtLimit = 4
	// recentOrderWindow is how many recent qualifying orders feed the
	// co-purchase tally.
	recentOrderWindow = 10
)

// Service computes product recommendations. All derived state is
// request-scoped: the corpus is rebuilt per call and nothing is cached.
type Service struct {
	catalog CatalogReader
	orders  OrderReader
}

// New creates a recommendation service.
func New(catalog CatalogReader, orders OrderReader) *Service {
	return &Service{catalog: catalog, orders: orders}
}

// Related ranks the rest of the catalog against the target product by
// TF-IDF similarity over four channels (name, category, description,
// colors) and returns the top entries with per-channel breakdowns.
// Returns domain.ErrProductNotFound if the target does not resolve.
func (s *Service) Related(ctx context.Context, id string) ([]domrec.Recommendation, error) {
	start := time.Now()

	recs, err := s.related(ctx, id)
	observe("tfidf", start, err)
	return recs, err
}

func (s *Service) related(ctx context.Context, id string) ([]domrec.Recommendation, error) {
	target, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get target product: %w", err)
	}

	others, err := s.catalog.GetAllExcept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comparison population: %w", err)
	}
	metrics.RecommendCorpusSize.WithLabelValues("tfidf").Observe(float64(len(others)))
	if len(others) == 0 {
		return nil, nil
	}

	// Each channel is scored independently against the same population;
	// the calls share no state and their order does not matter.
	nameScores := scoreChannel(others, target.Name(), func(p *product.Product) string { return p.Name() })
	categoryScores := scoreChannel(others, target.Category(), func(p *product.Product) string { return p.Category() })
	descriptionScores := scoreChannel(others, target.Description(), func(p *product.Product) string { return p.Description() })
	colorScores := scoreChannel(others, target.ColorsJoined(), func(p *product.Product) string { return p.ColorsJoined() })

	recs := make([]domrec.Recommendation, len(others))
	for i := range others {
		breakdown := domrec.Breakdown{
			Name:        scoreAt(nameScores, i),
			Category:    scoreAt(categoryScores, i),
			Description: scoreAt(descriptionScores, i),
			Colors:      scoreAt(colorScores, i),
		}
		recs[i] = domrec.New(others[i], breakdown.Total(), breakdown)
	}

	// Stable sort: equal totals keep catalog order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score() > recs[j].Score()
	})

	if len(recs) > relatedLimit {
		recs = recs[:relatedLimit]
	}
	return recs, nil
}

// AlsoBought ranks products by how often they appear alongside the
// target in the most recent non-cancelled orders. Line items whose
// product no longer resolves are skipped. An empty order history yields
// an empty list, not an error.
func (s *Service) AlsoBought(ctx context.Context, id string) ([]product.Product, error) {
	start := time.Now()

	products, err := s.alsoBought(ctx, id)
	observe("also_bought", start, err)
	return products, err
}

func (s *Service) alsoBought(ctx context.Context, id string) ([]product.Product, error) {
	orders, err := s.orders.FindContainingProduct(ctx, id, recentOrderWindow)
	if err != nil {
		return nil, fmt.Errorf("find orders containing product: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	resolved := make(map[string]product.Product)
	unresolvable := make(map[string]bool)
	var encounter []string // tally keys in first-seen order, for stable ties

	for i := range orders {
		for _, item := range orders[i].Items() {
			pid := item.ProductID
			if pid == id || unresolvable[pid] {
				continue
			}
			if _, ok := resolved[pid]; !ok {
				p, err := s.catalog.GetByID(ctx, pid)
				if errors.Is(err, domain.ErrProductNotFound) {
					unresolvable[pid] = true
					continue
				}
				if err != nil {
					return nil, fmt.Errorf("resolve co-purchased product %s: %w", pid, err)
				}
				resolved[pid] = p
			}
			if counts[pid] == 0 {
				encounter = append(encounter, pid)
			}
			// Once per line item, not per unit quantity.
			counts[pid]++
		}
	}

	sort.SliceStable(encounter, func(i, j int) bool {
		return counts[encounter[i]] > counts[encounter[j]]
	})
	if len(encounter) > alsoBoughtLimit {
		encounter = encounter[:alsoBoughtLimit]
	}

	products := make([]product.Product, len(encounter))
	for i, pid := range encounter {
		products[i] = resolved[pid]
	}
	return products, nil
}

// scoreChannel extracts one channel from the comparison population and
// scores it against the target's value for that channel.
func scoreChannel(
	population []product.Product, targetValue string,
	channel func(*product.Product) string,
) []float64 {
	docs := make([]string, len(population))
	for i := range population {
		docs[i] = channel(&population[i])
	}
	return scoreDocuments(docs, targetValue)
}

// scoreAt defaults missing scores to 0.
func scoreAt(scores []float64, i int) float64 {
	if i < 0 || i >= len(scores) {
		return 0
	}
	return scores[i]
}

func observe(engine string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecommendRequestsTotal.WithLabelValues(engine, status).Inc()
	metrics.RecommendDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
}
