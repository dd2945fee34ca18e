package services

import (
	"errors"

	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"gorm.io/gorm"
)

// Storage is the persistence gateway: the only component that reads or
// writes the relational store. Every operation maps to exactly one
// statement; storage faults propagate to the caller unwrapped.
type Storage interface {
	// GetMenuItems retrieves all menu items
	GetMenuItems() ([]models.MenuItem, error)
	// GetMenuItem retrieves a menu item by its ID, returning nil
	// (and no error) when no row matches
	GetMenuItem(id int) (*models.MenuItem, error)
	// CreateMenuItem inserts a menu item and returns the stored row
	CreateMenuItem(item models.InsertMenuItem) (models.MenuItem, error)
	// CreateReservation inserts a reservation with status forced to
	// pending and returns the stored row
	CreateReservation(reservation models.InsertReservation) (models.Reservation, error)
	// GetReviews retrieves all reviews
	GetReviews() ([]models.Review, error)
	// CreateReview inserts a review and returns the stored row
	CreateReview(review models.InsertReview) (models.Review, error)
	// CreateMessage inserts a contact message and returns the stored row
	CreateMessage(message models.InsertMessage) (models.Message, error)
}

// databaseStorage is the GORM-backed implementation of Storage
type databaseStorage struct {
	db *gorm.DB
}

// NewStorage creates a Storage backed by the given database handle
func NewStorage(db *gorm.DB) Storage {
	return &databaseStorage{db: db}
}

func (s *databaseStorage) GetMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *databaseStorage) GetMenuItem(id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *databaseStorage) CreateMenuItem(insert models.InsertMenuItem) (models.MenuItem, error) {
	item := models.MenuItem{
		Name:        insert.Name,
		Description: insert.Description,
		Price:       insert.Price,
		Category:    insert.Category,
		ImageURL:    insert.ImageURL,
		IsFeatured:  insert.IsFeatured,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *databaseStorage) CreateReservation(insert models.InsertReservation) (models.Reservation, error) {
	reservation := models.Reservation{
		Name:   insert.Name,
		Phone:  insert.Phone,
		Date:   insert.Date,
		Time:   insert.Time,
		Guests: insert.Guests,
		Status: models.ReservationPending,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

func (s *databaseStorage) GetReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *databaseStorage) CreateReview(insert models.InsertReview) (models.Review, error) {
	review := models.Review{
		Name:    insert.Name,
		Rating:  insert.Rating,
		Comment: insert.Comment,
		Date:    insert.Date,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *databaseStorage) CreateMessage(insert models.InsertMessage) (models.Message, error) {
	message := models.Message{
		Name:    insert.Name,
		Email:   insert.Email,
		Message: insert.Message,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return models.Message{}, err
	}
	return message, nil
}
