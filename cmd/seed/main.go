// Command seed loads a starter apparel catalog into the database.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stitchline/storefront/internal/config"
	dbRedis "github.com/stitchline/storefront/internal/db/redis"
	logpkg "github.com/stitchline/storefront/internal/logger"
	catalogrepo "github.com/stitchline/storefront/internal/repository/catalog"
	cataloguc "github.com/stitchline/storefront/internal/usecase/catalog"
)

var drafts = []cataloguc.Draft{
	// Men
	{
		Name:        "Classic Oxford Shirt",
		Description: "Premium cotton oxford shirt perfect for formal and casual wear.",
		Price:       2499,
		Category:    "Men",
		Image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Blue", "White"},
		Stock:       25,
		Featured:    true,
		Rating:      4.6,
		Reviews:     28,
	},
	{
		Name:        "Slim Fit Chinos",
		Description: "Comfortable stretch chinos in beige.",
		Price:       1999,
		Category:    "Men",
		Image:       "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500"},
		Sizes:       []string{"30", "32", "34", "36"},
		Colors:      []string{"Beige", "Navy"},
		Stock:       20,
		Rating:      4.4,
		Reviews:     15,
	},
	{
		Name:        "Denim Trucker Jacket",
		Description: "Classic denim jacket with a vintage wash.",
		Price:       3499,
		Category:    "Men",
		Image:       "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=500"},
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Blue"},
		Stock:       15,
		Featured:    true,
		Rating:      4.8,
		Reviews:     32,
	},
	{
		Name:        "Premium Crew Neck T-Shirt",
		Description: "Soft organic cotton t-shirt in essential manufacturing colors.",
		Price:       899,
		Category:    "Men",
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"White", "Black", "Grey"},
		Stock:       50,
		Rating:      4.3,
		Reviews:     45,
	},
	{
		Name:        "Traditional Silk Kurta",
		Description: "Festive silk kurta with subtle embroidery.",
		Price:       2999,
		Category:    "Men",
		Image:       "https://images.unsplash.com/photo-1597983073493-88cd35cf93b0?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1597983073493-88cd35cf93b0?w=500"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Yellow", "Cream"},
		Stock:       12,
		Featured:    true,
		Rating:      4.7,
		Reviews:     18,
	},

	// Women
	{
		Name:        "Floral Summer Maxi Dress",
		Description: "Lightweight and breezy floral print dress.",
		Price:       3299,
		Category:    "Women",
		Image:       "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Pink", "Blue"},
		Stock:       18,
		Featured:    true,
		Rating:      4.9,
		Reviews:     56,
	},
	{
		Name:        "Kanjivaram Silk Saree",
		Description: "Authentic handwoven Kanjivaram silk saree.",
		Price:       15999,
		Category:    "Women",
		Image:       "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500"},
		Sizes:       []string{"Free Size"},
		Colors:      []string{"Red", "Gold"},
		Stock:       8,
		Featured:    true,
		Rating:      5.0,
		Reviews:     42,
	},
	{
		Name:        "High-Waist Skinny Jeans",
		Description: "Stretch denim jeans with a flattering fit.",
		Price:       2199,
		Category:    "Women",
		Image:       "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=500"},
		Sizes:       []string{"26", "28", "30", "32"},
		Colors:      []string{"Blue", "Black"},
		Stock:       30,
		Rating:      4.5,
		Reviews:     24,
	},
	{
		Name:        "Embroidered Anarkali Suit",
		Description: "Elegant floor-length Anarkali with dupatta.",
		Price:       8499,
		Category:    "Women",
		Image:       "https://images.unsplash.com/photo-1583391733960-6e4d7dfea22d?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1583391733960-6e4d7dfea22d?w=500"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Green"},
		Stock:       10,
		Featured:    true,
		Rating:      4.8,
		Reviews:     19,
	},
	{
		Name:        "Satin Silk Blouse",
		Description: "Luxurious satin blouse suitable for work or evening.",
		Price:       1899,
		Category:    "Women",
		Image:       "https://images.unsplash.com/photo-1621574539437-4b7b481646b7?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1621574539437-4b7b481646b7?w=500"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"Champagne", "Black"},
		Stock:       22,
		Rating:      4.6,
		Reviews:     14,
	},

	// Kids
	{
		Name:        "Kids' Graphic T-Shirt",
		Description: "Fun dinosaur print cotton t-shirt.",
		Price:       599,
		Category:    "Kids",
		Image:       "https://images.unsplash.com/photo-1519238263430-660d12a2aa8d?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1519238263430-660d12a2aa8d?w=500"},
		Sizes:       []string{"2-3Y", "4-5Y", "6-7Y"},
		Colors:      []string{"Blue", "Green"},
		Stock:       40,
		Rating:      4.7,
		Reviews:     35,
	},
	{
		Name:        "Festive Lehenga Choli",
		Description: "Bright and colorful lehenga for girls.",
		Price:       3999,
		Category:    "Kids",
		Image:       "https://images.unsplash.com/photo-1622290291314-1f256e353287?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1622290291314-1f256e353287?w=500"},
		Sizes:       []string{"3-4Y", "5-6Y", "7-8Y"},
		Colors:      []string{"Pink", "Orange"},
		Stock:       15,
		Featured:    true,
		Rating:      4.9,
		Reviews:     22,
	},
	{
		Name:        "Denim Dungarees",
		Description: "Cute and durable denim dungarees.",
		Price:       1499,
		Category:    "Kids",
		Image:       "https://images.unsplash.com/photo-1519457431-44ccd64a579b?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1519457431-44ccd64a579b?w=500"},
		Sizes:       []string{"2-3Y", "4-5Y"},
		Colors:      []string{"Blue"},
		Stock:       25,
		Rating:      4.5,
		Reviews:     18,
	},
	{
		Name:        "Boys' Blazer Set",
		Description: "Formal blazer and trouser set for parties.",
		Price:       4499,
		Category:    "Kids",
		Image:       "https://images.unsplash.com/photo-1503919545889-aef6dce20272?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1503919545889-aef6dce20272?w=500"},
		Sizes:       []string{"4-5Y", "6-7Y", "8-9Y"},
		Colors:      []string{"Navy", "Black"},
		Stock:       10,
		Featured:    true,
		Rating:      4.6,
		Reviews:     12,
	},
	{
		Name:        "Cotton Pajama Set",
		Description: "Soft printed pajama set for nightwear.",
		Price:       899,
		Category:    "Kids",
		Image:       "https://images.unsplash.com/photo-1514090458221-65bb69cf63e6?w=500",
		Images:      []string{"https://images.unsplash.com/photo-1514090458221-65bb69cf63e6?w=500"},
		Sizes:       []string{"2-3Y", "4-5Y", "6-7Y"},
		Colors:      []string{"White", "Yellow"},
		Stock:       35,
		Rating:      4.4,
		Reviews:     28,
	},
}

func main() {
	_ = godotenv.Load()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	catalog := cataloguc.New(catalogrepo.New(store))

	for _, d := range drafts {
		p, err := catalog.Create(ctx, d)
		if err != nil {
			logger.Fatal("Failed to seed product",
				zap.String("name", d.Name),
				zap.Error(err),
			)
		}
		logger.Info("Seeded product",
			zap.String("id", p.ID()),
			zap.String("name", p.Name()),
			zap.String("category", p.Category()),
		)
	}

	logger.Info("Seeding complete", zap.Int("products", len(drafts)))
}
