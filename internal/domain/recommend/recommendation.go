package recommend

import "github.com/stitchline/storefront/internal/domain/product"

// Breakdown holds the per-channel TF-IDF scores for one recommendation.
// The four channels are scored independently and combined by plain
// addition: no per-channel weights are applied.
type Breakdown struct {
	Name        float64
	Category    float64
	Description float64
	Colors      float64
}

// Total returns the unweighted sum of the channel scores.
func (b Breakdown) Total() float64 {
	return b.Name + b.Category + b.Description + b.Colors
}

// Recommendation is one ranked catalog product with its score breakdown.
type Recommendation struct {
	product   product.Product
	score     float64
	breakdown Breakdown
}

// New creates a Recommendation.
func New(p product.Product, score float64, breakdown Breakdown) Recommendation {
	return Recommendation{product: p, score: score, breakdown: breakdown}
}

// Product returns the recommended product.
func (r Recommendation) Product() product.Product { return r.product }

// Score returns the combined relevance score.
func (r Recommendation) Score() float64 { return r.score }

// Breakdown returns the per-channel score vector.
func (r Recommendation) Breakdown() Breakdown { return r.breakdown }
