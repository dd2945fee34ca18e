package models

// APIError represents a standardized error response for the API.
// Field carries the dotted path of the first offending input field on
// validation failures and is omitted otherwise.
type APIError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error implements the error interface so typed clients can surface
// API failures directly.
func (e *APIError) Error() string {
	if e.Field != "" {
		return e.Message + " (field: " + e.Field + ")"
	}
	return e.Message
}

// NewValidationError creates a 400-shaped error for a single invalid field
func NewValidationError(message, field string) APIError {
	return APIError{Message: message, Field: field}
}

// NewNotFoundError creates a 404-shaped error
func NewNotFoundError(message string) APIError {
	return APIError{Message: message}
}
