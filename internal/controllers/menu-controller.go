package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
)

// MenuController handles HTTP requests related to the menu
type MenuController interface {
	// GetAllMenuItems retrieves all menu items
	GetAllMenuItems(c *gin.Context)
	// GetMenuItemByID retrieves a menu item by its ID
	GetMenuItemByID(c *gin.Context)
}

type menuController struct {
	storage services.Storage
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(storage services.Storage) *menuController {
	return &menuController{storage: storage}
}

// GetAllMenuItems godoc
// @Summary Get all menu items
// @Description Get the full restaurant menu
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /api/menu [get]
func (c *menuController) GetAllMenuItems(ctx *gin.Context) {
	items, err := c.storage.GetMenuItems()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIError{Message: "Failed to retrieve menu items"})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItemByID godoc
// @Summary Get menu item by ID
// @Description Get a single menu item by its ID
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/menu/{id} [get]
func (c *menuController) GetMenuItemByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.APIError{Message: "Invalid menu item ID"})
		return
	}

	item, err := c.storage.GetMenuItem(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIError{Message: "Failed to retrieve menu item"})
		return
	}
	if item == nil {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError("Menu item not found"))
		return
	}
	ctx.JSON(http.StatusOK, item)
}
