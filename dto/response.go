package dto

// ErrorResponseDTO is the shared error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"content not found: 20250101120000"`
	Code  string `json:"code,omitempty" example:"NOT_FOUND"`
}

// MessageResponseDTO is the shared plain-message response shape.
type MessageResponseDTO struct {
	Message string `json:"message" example:"content deleted successfully"`
}
