package product

import (
	"fmt"
	"strings"
)

// MaxDescriptionSize caps the free-text description in bytes.
const MaxDescriptionSize = 16384 // 16KB

// Product is the catalog product aggregate (immutable value object).
type Product struct {
	id            string
	name          string
	description   string
	category      string
	price         float64
	originalPrice float64
	image         string
	images        []string
	sizes         []string
	colors        []string
	stock         int
	inStock       bool
	featured      bool
	rating        float64
	reviews       int
	createdAt     int64 // unix millis
}

// New validates and creates a Product.
// Name, description and category are required: every scoring channel
// must be backed by a real string.
func New(
	id, name, description, category string,
	price float64, stock int,
) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product name is required")
	}
	if strings.TrimSpace(description) == "" {
		return Product{}, fmt.Errorf("product description is required")
	}
	if len(description) > MaxDescriptionSize {
		return Product{}, fmt.Errorf("description too large (max %d bytes)", MaxDescriptionSize)
	}
	if strings.TrimSpace(category) == "" {
		return Product{}, fmt.Errorf("product category is required")
	}
	if price < 0 {
		return Product{}, fmt.Errorf("price must be non-negative")
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("stock must be non-negative")
	}

	return Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		stock:       stock,
		inStock:     stock > 0,
	}, nil
}

// Reconstruct creates a Product without validation (storage hydration).
func Reconstruct(
	id, name, description, category string,
	price, originalPrice float64,
	image string, images, sizes, colors []string,
	stock int, inStock, featured bool,
	rating float64, reviews int, createdAt int64,
) Product {
	return Product{
		id: id, name: name, description: description, category: category,
		price: price, originalPrice: originalPrice,
		image: image, images: images, sizes: sizes, colors: colors,
		stock: stock, inStock: inStock, featured: featured,
		rating: rating, reviews: reviews, createdAt: createdAt,
	}
}

// ID returns the product identifier.
func (p Product) ID() string { return p.id }

// Name returns the short product name.
func (p Product) Name() string { return p.name }

// Description returns the free-text description.
func (p Product) Description() string { return p.description }

// Category returns the categorical label.
func (p Product) Category() string { return p.category }

// Price returns the current price.
func (p Product) Price() float64 { return p.price }

// OriginalPrice returns the pre-discount price (0 if never discounted).
func (p Product) OriginalPrice() float64 { return p.originalPrice }

// Image returns the primary image URL.
func (p Product) Image() string { return p.image }

// Images returns all image URLs.
func (p Product) Images() []string { return p.images }

// Sizes returns the available sizes.
func (p Product) Sizes() []string { return p.sizes }

// Colors returns the color tags.
func (p Product) Colors() []string { return p.colors }

// ColorsJoined collapses the color tags into a single space-joined
// string, the form consumed by the colors scoring channel.
func (p Product) ColorsJoined() string { return strings.Join(p.colors, " ") }

// Stock returns the units in stock.
func (p Product) Stock() int { return p.stock }

// InStock reports availability.
func (p Product) InStock() bool { return p.inStock }

// Featured reports whether the product is featured on the storefront.
func (p Product) Featured() bool { return p.featured }

// Rating returns the average review rating.
func (p Product) Rating() float64 { return p.rating }

// Reviews returns the review count.
func (p Product) Reviews() int { return p.reviews }

// CreatedAt returns the creation time in unix milliseconds.
func (p Product) CreatedAt() int64 { return p.createdAt }

// WithDetails returns a copy with the optional merchandising fields set.
func (p Product) WithDetails(
	originalPrice float64, image string, images, sizes, colors []string,
	featured bool, rating float64, reviews int,
) Product {
	p.originalPrice = originalPrice
	p.image = image
	p.images = images
	p.sizes = sizes
	p.colors = colors
	p.featured = featured
	p.rating = rating
	p.reviews = reviews
	return p
}

// WithCreatedAt returns a copy stamped with the given creation time.
func (p Product) WithCreatedAt(millis int64) Product {
	p.createdAt = millis
	return p
}

// WithStock returns a copy with the stock level (and inStock flag) updated.
func (p Product) WithStock(stock int) Product {
	p.stock = stock
	p.inStock = stock > 0
	return p
}
