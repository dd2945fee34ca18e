package models

import "time"

// Reservation lifecycle states. Only "pending" is ever assigned by
// this service; transitions happen out of band.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation represents a table booking request.
type Reservation struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	Time      string    `json:"time" gorm:"not null"`
	Guests    int       `json:"guests" gorm:"not null"`
	Status    string    `json:"status" gorm:"default:pending"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertReservation is the shape accepted when creating a reservation.
// ID, Status and CreatedAt are server-assigned; any values a client
// sends for them have nowhere to bind and are ignored.
//
// Time must be one of the bookable slots offered by the booking form.
type InsertReservation struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Time   string `json:"time" binding:"required,oneof=12:00 13:00 14:00 15:00 18:00 19:00 20:00 21:00 22:00"`
	Guests int    `json:"guests" binding:"min=1"`
}
