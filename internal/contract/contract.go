// Package contract is the single source of truth for the HTTP API
// surface. Both the server (route registration) and the typed client
// build from these descriptors, so a path or method can never drift
// between the two sides.
//
// Input shapes are the Insert* structs in internal/models; response
// shapes are the corresponding record structs. Conformance of real
// responses to the declared shapes is asserted in tests.
package contract

import (
	"net/http"
	"strings"
)

// Endpoint describes one logical API operation.
type Endpoint struct {
	Method string
	Path   string
}

// URL renders the endpoint path, substituting ":name" placeholders
// with the given params. Paths in this API use at most one
// single-segment placeholder (":id").
func (e Endpoint) URL(params map[string]string) string {
	url := e.Path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, value)
	}
	return url
}

// The five operations exposed by the API.
var (
	// MenuList returns every menu item. 200: []models.MenuItem.
	MenuList = Endpoint{Method: http.MethodGet, Path: "/api/menu"}

	// MenuGet returns a single menu item by id.
	// 200: models.MenuItem; 404: models.APIError.
	MenuGet = Endpoint{Method: http.MethodGet, Path: "/api/menu/:id"}

	// ReservationCreate books a table. Input: models.InsertReservation.
	// 201: models.Reservation; 400: models.APIError.
	ReservationCreate = Endpoint{Method: http.MethodPost, Path: "/api/reservations"}

	// ReviewList returns every published review. 200: []models.Review.
	ReviewList = Endpoint{Method: http.MethodGet, Path: "/api/reviews"}

	// ContactCreate stores a contact form submission.
	// Input: models.InsertMessage. 201: models.Message; 400: models.APIError.
	ContactCreate = Endpoint{Method: http.MethodPost, Path: "/api/contact"}
)
