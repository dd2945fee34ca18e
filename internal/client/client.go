// Package client is a typed HTTP client for the restaurant API. It
// builds every request from the contract registry and decodes
// responses into the shared model types, so consumers never touch raw
// paths or JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kifvxnorg/sky-pool-restaurant/internal/contract"
	"github.com/kifvxnorg/sky-pool-restaurant/internal/models"
)

// Client issues requests against a running API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API rooted at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListMenu retrieves the full menu
func (c *Client) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, contract.MenuList, nil, nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem retrieves a single menu item by id. A missing item is
// returned as a *models.APIError carrying the server's message.
func (c *Client) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	params := map[string]string{"id": strconv.Itoa(id)}
	var item models.MenuItem
	if err := c.do(ctx, contract.MenuGet, params, nil, http.StatusOK, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateReservation books a table
func (c *Client) CreateReservation(ctx context.Context, input models.InsertReservation) (models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, contract.ReservationCreate, nil, input, http.StatusCreated, &reservation); err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

// ListReviews retrieves every published review
func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, contract.ReviewList, nil, nil, http.StatusOK, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateMessage sends a contact form submission
func (c *Client) CreateMessage(ctx context.Context, input models.InsertMessage) (models.Message, error) {
	var message models.Message
	if err := c.do(ctx, contract.ContactCreate, nil, input, http.StatusCreated, &message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// do issues one request described by the endpoint and decodes the body
// into out when the response carries the expected status. Any other
// status is decoded into a *models.APIError when the body allows it.
func (c *Client) do(ctx context.Context, endpoint contract.Endpoint, params map[string]string, body any, expect int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, c.baseURL+endpoint.URL(params), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expect {
		var apiErr models.APIError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Message == "" {
			return fmt.Errorf("%s %s: unexpected status %d", endpoint.Method, endpoint.Path, resp.StatusCode)
		}
		return &apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
