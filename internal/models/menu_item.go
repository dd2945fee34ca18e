package models

// Menu categories offered by the restaurant. Stored as plain text;
// enforced on the insert shape, not by the database.
const (
	CategoryContinental = "Continental"
	CategoryBuffet      = "Buffet"
	CategoryGrill       = "Grill"
	CategoryBeverages   = "Beverages"
	CategoryDesserts    = "Desserts"
)

// MenuItem represents a dish or drink on the restaurant menu.
// Prices are stored in BDT minor units.
type MenuItem struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Price       int    `json:"price" gorm:"not null"`
	Category    string `json:"category" gorm:"not null"`
	ImageURL    string `json:"imageUrl" gorm:"not null"`
	IsFeatured  bool   `json:"isFeatured" gorm:"default:false"`
}

// InsertMenuItem is the shape accepted when creating a menu item.
// The ID is server-assigned and deliberately absent.
type InsertMenuItem struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required,oneof=Continental Buffet Grill Beverages Desserts"`
	ImageURL    string `json:"imageUrl" binding:"required,url"`
	IsFeatured  bool   `json:"isFeatured"`
}
