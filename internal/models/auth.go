package models

// TokenRequest is the JSON body for the token endpoint; the form-encoded
// OAuth2 password flow sends the email as "username" instead.
// swagger:model TokenRequest
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

// Token is a successful login response
// swagger:model Token
type Token struct {
	AccessToken string `json:"access_token" example:"JWT_TOKEN"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"1800"`
}

// ErrorResponse is the body of every non-validation error
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"List not found"`
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"Field required"`
}

// ValidationErrorResponse is the body of 422 responses
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Error   string       `json:"error" example:"Validation Error"`
	Details []FieldError `json:"details"`
}
