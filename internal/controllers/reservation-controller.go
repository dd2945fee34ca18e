package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
)

// ReservationController handles HTTP requests related to reservations
type ReservationController interface {
	// CreateReservation creates a new reservation request
	CreateReservation(c *gin.Context)
}

type reservationController struct {
	storage services.Storage
}

// NewReservationController creates a new instance of ReservationController
func NewReservationController(storage services.Storage) *reservationController {
	return &reservationController{storage: storage}
}

// CreateReservation godoc
// @Summary Create a reservation
// @Description Book a table; the reservation starts in pending status
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body models.InsertReservation true "Reservation request"
// @Success 201 {object} models.Reservation
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/reservations [post]
func (c *reservationController) CreateReservation(ctx *gin.Context) {
	var input models.InsertReservation
	if !bindInput(ctx, &input) {
		return
	}

	reservation, err := c.storage.CreateReservation(input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIError{Message: "Failed to create reservation"})
		return
	}
	ctx.JSON(http.StatusCreated, reservation)
}
