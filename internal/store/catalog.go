package store

import (
	"github.com/shopspring/decimal"

	"github.com/beanbarn/storefront/internal/models"
)

// DefaultCatalog returns the seeded product list. Prices are whole currency
// units; images are served straight to the browser client.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Premium Coffee Beans", Price: decimal.NewFromInt(25), Image: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&q=80&w=600"},
		{ID: "2", Name: "Artisan Mug", Price: decimal.NewFromInt(15), Image: "https://images.unsplash.com/photo-1517256011271-bfbd3ca47695?auto=format&fit=crop&q=80&w=600"},
		{ID: "3", Name: "French Press", Price: decimal.NewFromInt(45), Image: "https://images.unsplash.com/photo-1442550528053-c431ecb55509?auto=format&fit=crop&q=80&w=600"},
		{ID: "4", Name: "Moka Pot", Price: decimal.NewFromInt(35), Image: "https://images.unsplash.com/photo-1544190153-c359d9976906?auto=format&fit=crop&q=80&w=600"},
		{ID: "5", Name: "Glass Dripper", Price: decimal.NewFromInt(20), Image: "https://images.unsplash.com/photo-1545665225-b23b9d8c9bc8?auto=format&fit=crop&q=80&w=600"},
		{ID: "6", Name: "Coffee Grinder", Price: decimal.NewFromInt(60), Image: "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?auto=format&fit=crop&q=80&w=600"},
		{ID: "7", Name: "Milk Frother", Price: decimal.NewFromInt(12), Image: "https://images.unsplash.com/photo-1517701604599-bb29b565090c?auto=format&fit=crop&q=80&w=600"},
		{ID: "8", Name: "Travel Tumbler", Price: decimal.NewFromInt(30), Image: "https://images.unsplash.com/photo-1577937927133-66ef06ac9af1?auto=format&fit=crop&q=80&w=600"},
	}
}
