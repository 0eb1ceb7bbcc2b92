package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// AnalyzeRequest represents the /analyze request body.
type AnalyzeRequest struct {
	Code *string `json:"code" example:"print(x)\nx = 5"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
