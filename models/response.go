package models

// Success Response Models

// RegisterSuccessResponse represents successful registration response
type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// LoginSuccessResponse represents successful login response
type LoginSuccessResponse struct {
	Message      string `json:"message" example:"Login successful"`
	AccessToken  string `json:"access_token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	RefreshToken string `json:"refresh_token" example:"v2.local.pKq3SmRkYh2nA9c-wQz..."`
}

type RefreshSuccessResponse struct {
	AccessToken string `json:"access_token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
}

type MessageResponse struct {
	Message string `json:"message" example:"QR code deleted successfully"`
}

type ScanRecordedResponse struct {
	Message string `json:"message" example:"Scan recorded successfully"`
	ScanID  string `json:"scan_id" example:"507f1f77bcf86cd799439011"`
}

// Error Response Models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"unexpected end of JSON input"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"Validation failed"`
	Errors []*FieldViolation `json:"errors"`
}

type FieldViolation struct {
	Field   string `json:"field" example:"Email"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"Field 'Email' is required."`
}
