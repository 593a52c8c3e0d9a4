package storefront

import (
	"context"

	recommenduc "github.com/stitchline/storefront/internal/usecase/recommend"
)

// ScoreBreakdown is the per-channel similarity contribution for a
// recommendation. The overall score is the sum of the four channels.
type ScoreBreakdown struct {
	Name        float64
	Category    float64
	Description float64
	Colors      float64
}

// Recommendation is a related product with its similarity score.
type Recommendation struct {
	Product   Product
	Score     float64
	Breakdown ScoreBreakdown
}

// RecommendationService computes product recommendations.
type RecommendationService struct {
	svc *recommenduc.Service
}

// Related returns up to four catalog products most similar to the given
// product by text similarity over name, category, description, and colors.
func (s *RecommendationService) Related(ctx context.Context, productID string) ([]Recommendation, error) {
	recs, err := s.svc.Related(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]Recommendation, len(recs))
	for i := range recs {
		p := recs[i].Product()
		b := recs[i].Breakdown()
		out[i] = Recommendation{
			Product: productFromDomain(&p),
			Score:   recs[i].Score(),
			Breakdown: ScoreBreakdown{
				Name:        b.Name,
				Category:    b.Category,
				Description: b.Description,
				Colors:      b.Colors,
			},
		}
	}
	return out, nil
}

// AlsoBought returns up to four products most frequently co-purchased
// with the given product in recent orders.
func (s *RecommendationService) AlsoBought(ctx context.Context, productID string) ([]Product, error) {
	products, err := s.svc.AlsoBought(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(products))
	for i := range products {
		out[i] = productFromDomain(&products[i])
	}
	return out, nil
}
