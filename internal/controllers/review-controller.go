package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
)

// ReviewController handles HTTP requests related to guest reviews
type ReviewController interface {
	// GetAllReviews retrieves all reviews
	GetAllReviews(c *gin.Context)
}

type reviewController struct {
	storage services.Storage
}

// NewReviewController creates a new instance of ReviewController
func NewReviewController(storage services.Storage) *reviewController {
	return &reviewController{storage: storage}
}

// GetAllReviews godoc
// @Summary Get all reviews
// @Description Get every published guest review
// @Tags reviews
// @Accept json
// @Produce json
// @Success 200 {array} models.Review
// @Failure 500 {object} models.APIError
// @Router /api/reviews [get]
func (c *reviewController) GetAllReviews(ctx *gin.Context) {
	reviews, err := c.storage.GetReviews()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIError{Message: "Failed to retrieve reviews"})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	ctx.JSON(http.StatusOK, reviews)
}
