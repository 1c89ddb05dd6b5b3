package models

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string            `json:"message" example:"NotFound - HttpProfile with id: 7"`
	Error   string            `json:"error,omitempty" example:"not_found"`
	Details map[string]string `json:"details,omitempty"`
}
