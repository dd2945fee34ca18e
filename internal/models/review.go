package models

// Review represents a published guest review.
type Review struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Rating  int    `json:"rating" gorm:"not null"`
	Comment string `json:"comment" gorm:"not null"`
	Date    string `json:"date" gorm:"not null"`
}

// InsertReview is the shape accepted when creating a review.
type InsertReview struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
	Date    string `json:"date" binding:"required"`
}
