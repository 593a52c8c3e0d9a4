package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/stitchline/storefront/internal/domain/product"
)

// productDoc is the JSON storage shape of a product.
type productDoc struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Stock         int      `json:"stock"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Reviews       int      `json:"reviews,omitempty"`
	CreatedAt     int64    `json:"createdAt"`
}

func docFromProduct(p *product.Product) productDoc {
	return productDoc{
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
		CreatedAt:     p.CreatedAt(),
	}
}

func (d *productDoc) toProduct(id string) product.Product {
	return product.Reconstruct(
		id, d.Name, d.Description, d.Category,
		d.Price, d.OriginalPrice,
		d.Image, d.Images, d.Sizes, d.Colors,
		d.Stock, d.InStock, d.Featured,
		d.Rating, d.Reviews, d.CreatedAt,
	)
}

// parseJSONGetResult decodes a JSON.GET "$" payload, which wraps the
// document in a one-element array.
func parseJSONGetResult(id string, raw []byte) (product.Product, error) {
	var docs []productDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return product.Product{}, fmt.Errorf("unmarshal product %s: %w", id, err)
	}
	if len(docs) == 0 {
		return product.Product{}, fmt.Errorf("empty JSON.GET result for product %s", id)
	}
	return docs[0].toProduct(id), nil
}
