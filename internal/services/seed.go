package services

import (
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	log "github.com/sirupsen/logrus"
)

// SeedDatabase populates an empty store with the launch catalog: 7 menu
// items and 3 reviews. The guard is emptiness of the menu items table,
// so a second invocation is a no-op.
func SeedDatabase(storage Storage) error {
	existing, err := storage.GetMenuItems()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")

	menuItems := []models.InsertMenuItem{
		{
			Name:        "Sky Signature BBQ Platter",
			Description: "Assorted premium meats grilled to perfection, served with house special sauces.",
			Price:       2200,
			Category:    models.CategoryGrill,
			ImageURL:    "https://images.unsplash.com/photo-1544025162-d76690b67f61?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Name:        "Grilled Tiger Prawns",
			Description: "Jumbo tiger prawns marinated in lemon herb butter and charcoal grilled.",
			Price:       2900,
			Category:    models.CategoryGrill,
			ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Name:        "Creamy Mushroom Risotto",
			Description: "Arborio rice cooked with wild mushrooms, parmesan cheese, and truffle oil.",
			Price:       1800,
			Category:    models.CategoryContinental,
			ImageURL:    "https://images.unsplash.com/photo-1476124369491-e7addf5db371?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
		{
			Name:        "Seasonal International Buffet",
			Description: "An extensive spread of international cuisines available on weekends.",
			Price:       3500,
			Category:    models.CategoryBuffet,
			ImageURL:    "https://images.unsplash.com/photo-1582254465498-6bc70419b607?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Name:        "Charcoal Grilled Steaks",
			Description: "Premium cuts of beef, seasoned and grilled to your preference.",
			Price:       3000,
			Category:    models.CategoryGrill,
			ImageURL:    "https://images.unsplash.com/photo-1600891964092-4316c288032e?auto=format&fit=crop&q=80",
			IsFeatured:  true,
		},
		{
			Name:        "House-Special Mocktails",
			Description: "Refreshing non-alcoholic beverages crafted by our expert mixologists.",
			Price:       450,
			Category:    models.CategoryBeverages,
			ImageURL:    "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
		{
			Name:        "Dessert Trio Selection",
			Description: "A chef's selection of our three finest desserts.",
			Price:       850,
			Category:    models.CategoryDesserts,
			ImageURL:    "https://images.unsplash.com/photo-1563729784474-d779b95f3ee7?auto=format&fit=crop&q=80",
			IsFeatured:  false,
		},
	}

	for _, item := range menuItems {
		if _, err := storage.CreateMenuItem(item); err != nil {
			return err
		}
	}

	reviews := []models.InsertReview{
		{
			Name:    "Rahim Ahmed",
			Rating:  5,
			Comment: "The view is absolutely stunning! Best rooftop dining experience in Dhaka.",
			Date:    "2023-10-15",
		},
		{
			Name:    "Sarah Khan",
			Rating:  5,
			Comment: "The BBQ platter was delicious. Great service and ambiance.",
			Date:    "2023-10-20",
		},
		{
			Name:    "Michael Chen",
			Rating:  4,
			Comment: "Excellent buffet spread. A bit pricey but worth it for the special occasion.",
			Date:    "2023-11-05",
		},
	}

	for _, review := range reviews {
		if _, err := storage.CreateReview(review); err != nil {
			return err
		}
	}

	log.Info("Database seeded successfully")
	return nil
}
