package handlers

import (
	"context"
	"mime"
	"net/http"

	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// TokenIssuer defines the interface that the login service must implement.
type TokenIssuer interface {
	Login(ctx context.Context, email, password string) (*models.Token, error)
}

// NewTokenHandler returns an HTTP handler exchanging credentials for a bearer token.
// It accepts the OAuth2 password form (username, password) or a JSON body.
// @Summary Obtain an access token
// @Description Authenticate with email and password and return a JWT bearer token
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body models.TokenRequest true "Credentials"
// @Success 200 {object} models.Token
// @Failure 401 {object} models.ErrorResponse "Incorrect email or password"
// @Failure 403 {object} models.ErrorResponse "Inactive user"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /auth/token [post]
func NewTokenHandler(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var email, pw string

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
			if err := r.ParseForm(); err != nil {
				writeValidationError(w, models.FieldError{Field: "body", Message: "Invalid form body"})
				return
			}
			email, pw = r.PostForm.Get("username"), r.PostForm.Get("password")

			var details []models.FieldError
			if email == "" {
				details = append(details, models.FieldError{Field: "username", Message: "Field required"})
			}
			if pw == "" {
				details = append(details, models.FieldError{Field: "password", Message: "Field required"})
			}
			if len(details) > 0 {
				writeValidationError(w, details...)
				return
			}
		} else {
			var req models.TokenRequest
			if details := decodeBody(r, &req); details != nil {
				writeValidationError(w, details...)
				return
			}
			email, pw = req.Email, req.Password
		}

		token, err := svc.Login(r.Context(), email, pw)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, token)
	}
}
