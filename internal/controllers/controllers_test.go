package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/contract"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, services.Storage) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Reservation{}, &models.Review{}, &models.Message{}))

	storage := services.NewStorage(db)

	menu := NewMenuController(storage)
	reservations := NewReservationController(storage)
	reviews := NewReviewController(storage)
	contact := NewContactController(storage)

	router := gin.New()
	router.Handle(contract.MenuList.Method, contract.MenuList.Path, menu.GetAllMenuItems)
	router.Handle(contract.MenuGet.Method, contract.MenuGet.Path, menu.GetMenuItemByID)
	router.Handle(contract.ReservationCreate.Method, contract.ReservationCreate.Path, reservations.CreateReservation)
	router.Handle(contract.ReviewList.Method, contract.ReviewList.Path, reviews.GetAllReviews)
	router.Handle(contract.ContactCreate.Method, contract.ContactCreate.Path, contact.CreateMessage)

	return router, storage
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetAllMenuItemsSeeded(t *testing.T) {
	router, storage := setupTestRouter(t)
	require.NoError(t, services.SeedDatabase(storage))

	w := performRequest(router, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 7)

	featured := 0
	for _, item := range items {
		if item.IsFeatured {
			featured++
		}
	}
	assert.Equal(t, 4, featured)
}

func TestGetAllMenuItemsEmptyStoreIsEmptyArray(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetMenuItemByID(t *testing.T) {
	router, storage := setupTestRouter(t)

	created, err := storage.CreateMenuItem(models.InsertMenuItem{
		Name:        "Lamb Chops",
		Description: "Char-grilled lamb chops with mint glaze.",
		Price:       2800,
		Category:    models.CategoryGrill,
		ImageURL:    "https://example.com/lamb.jpg",
	})
	require.NoError(t, err)

	w := performRequest(router, http.MethodGet, "/api/menu/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var item models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, created, item)
}

func TestGetMenuItemNotFound(t *testing.T) {
	router, storage := setupTestRouter(t)

	created, err := storage.CreateMenuItem(models.InsertMenuItem{
		Name:        "Iced Lemongrass Tea",
		Description: "House-brewed iced tea with fresh lemongrass.",
		Price:       300,
		Category:    models.CategoryBeverages,
		ImageURL:    "https://example.com/tea.jpg",
	})
	require.NoError(t, err)

	w := performRequest(router, http.MethodGet, "/api/menu/"+strconv.Itoa(created.ID+1), "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "message")
	assert.NotContains(t, body, "field")
}

func TestGetMenuItemInvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodGet, "/api/menu/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservation(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/reservations",
		`{"name":"Farhan Kabir","phone":"+8801812345678","date":"2024-02-14","time":"20:00","guests":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var reservation models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reservation))
	assert.NotZero(t, reservation.ID)
	assert.Equal(t, models.ReservationPending, reservation.Status)
	assert.False(t, reservation.CreatedAt.IsZero())
}

func TestCreateReservationIgnoresClientStatus(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Server-assigned fields in the body must be ignored, not merged
	w := performRequest(router, http.MethodPost, "/api/reservations",
		`{"id":99,"name":"A","phone":"x","date":"2024-01-01","time":"19:00","guests":3,"status":"confirmed","createdAt":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var reservation models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reservation))
	assert.Equal(t, models.ReservationPending, reservation.Status)
	assert.NotEqual(t, 99, reservation.ID)
}

func TestCreateReservationZeroGuests(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/reservations",
		`{"name":"A","phone":"x","date":"2024-01-01","time":"19:00","guests":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "guests", apiErr.Field)
	assert.NotEmpty(t, apiErr.Message)
}

func TestCreateReservationValidationFirstErrorWins(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Several invalid fields; only the first (in struct order) is reported
	w := performRequest(router, http.MethodPost, "/api/reservations",
		`{"name":"","phone":"","date":"bogus","time":"03:00","guests":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "name", apiErr.Field)
}

func TestCreateReservationUnbookableTime(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/reservations",
		`{"name":"A","phone":"x","date":"2024-01-01","time":"03:00","guests":2}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "time", apiErr.Field)
}

func TestCreateReservationMalformedBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/reservations", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Empty(t, apiErr.Field)
}

func TestGetAllReviews(t *testing.T) {
	router, storage := setupTestRouter(t)
	require.NoError(t, services.SeedDatabase(storage))

	w := performRequest(router, http.MethodGet, "/api/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 3)
}

func TestCreateMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/contact",
		`{"name":"A","email":"a@b.com","message":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &message))
	assert.NotZero(t, message.ID)
	assert.Equal(t, "A", message.Name)
	assert.Equal(t, "a@b.com", message.Email)
	assert.Equal(t, "hi", message.Message)
	assert.False(t, message.CreatedAt.IsZero())
}

func TestCreateMessageInvalidEmail(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := performRequest(router, http.MethodPost, "/api/contact",
		`{"name":"A","email":"not-an-email","message":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "email", apiErr.Field)
}
