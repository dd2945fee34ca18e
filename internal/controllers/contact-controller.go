package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
)

// ContactController handles HTTP requests related to the contact form
type ContactController interface {
	// CreateMessage stores a contact form submission
	CreateMessage(c *gin.Context)
}

type contactController struct {
	storage services.Storage
}

// NewContactController creates a new instance of ContactController
func NewContactController(storage services.Storage) *contactController {
	return &contactController{storage: storage}
}

// CreateMessage godoc
// @Summary Send a contact message
// @Description Store a message from the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param message body models.InsertMessage true "Contact message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/contact [post]
func (c *contactController) CreateMessage(ctx *gin.Context) {
	var input models.InsertMessage
	if !bindInput(ctx, &input) {
		return
	}

	message, err := c.storage.CreateMessage(input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIError{Message: "Failed to create message"})
		return
	}
	ctx.JSON(http.StatusCreated, message)
}
