package models

import "time"

// Message represents a contact form submission.
type Message struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertMessage is the shape accepted when creating a message.
// ID and CreatedAt are server-assigned.
type InsertMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
