// Package dto defines the request and response shapes of the HTTP surface.
package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination carries list metadata. Total is the full matching count, Count the
// size of the returned page.
type Pagination struct {
	Total  int64 `json:"total"`
	Count  int   `json:"count"`
	Limit  *int  `json:"limit"`
	Offset *int  `json:"offset"`
}

// NewSuccessResponse creates a success envelope with data.
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewMessageResponse creates a success envelope without data.
func NewMessageResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

// NewListResponse creates a success envelope with data and pagination metadata.
func NewListResponse(message string, data interface{}, pagination Pagination) Response {
	return Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	}
}

// NewErrorResponse creates a failure envelope with a client-facing message.
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// NewValidationErrorResponse creates a failure envelope carrying the ordered
// field-level failures.
func NewValidationErrorResponse(errors []FieldError) Response {
	return Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	}
}
