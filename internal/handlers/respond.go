package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
)

// Pagination bounds the skip/limit query parameters.
type Pagination struct {
	DefaultLimit uint64
	MaxLimit     uint64
}

// DefaultPagination is used when the caller has no configured bounds.
var DefaultPagination = Pagination{DefaultLimit: 20, MaxLimit: 100}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Success: false, Error: message})
}

func writeValidationError(w http.ResponseWriter, details ...models.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: details,
	})
}

// writeServiceError maps domain errors to statuses. Unknown errors become
// an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrListNotFound):
		writeError(w, http.StatusNotFound, "List not found")
	case errors.Is(err, services.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, services.ErrItemForbidden):
		writeError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, services.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, services.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, services.ErrInactiveUser):
		writeError(w, http.StatusForbidden, "Inactive user")
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody reads a JSON body into dst and validates it. It returns the
// problems found, or nil.
func decodeBody(r *http.Request, dst any) []models.FieldError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return []models.FieldError{{Field: typeErr.Field, Message: "Input should be a valid " + typeErr.Type.Kind().String()}}
		case errors.Is(err, io.EOF):
			return []models.FieldError{{Field: "body", Message: "Field required"}}
		default:
			return []models.FieldError{{Field: "body", Message: "JSON decode error"}}
		}
	}
	return validateStruct(dst)
}

func validateStruct(v any) []models.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "body", Message: err.Error()}}
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, models.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("String should have at least %s characters", fe.Param())
		}
		return "Input should be greater than or equal to " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("String should have at most %s characters", fe.Param())
		}
		return "Input should be less than or equal to " + fe.Param()
	case "gte":
		return "Input should be greater than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, *models.FieldError) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, &models.FieldError{Field: name, Message: "Input should be a valid integer"}
	}
	if id < 1 {
		return 0, &models.FieldError{Field: name, Message: "Input should be greater than or equal to 1"}
	}
	return id, nil
}

// pageParams reads skip and limit. limit must lie in [1, MaxLimit].
func pageParams(r *http.Request, p Pagination) (skip, limit uint64, details []models.FieldError) {
	q := r.URL.Query()
	skip, limit = 0, p.DefaultLimit

	if raw := q.Get("skip"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			details = append(details, models.FieldError{Field: "skip", Message: "Input should be a valid integer"})
		case v < 0:
			details = append(details, models.FieldError{Field: "skip", Message: "Input should be greater than or equal to 0"})
		default:
			skip = uint64(v)
		}
	}

	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		switch {
		case err != nil:
			details = append(details, models.FieldError{Field: "limit", Message: "Input should be a valid integer"})
		case v < 1:
			details = append(details, models.FieldError{Field: "limit", Message: "Input should be greater than or equal to 1"})
		case uint64(v) > p.MaxLimit:
			details = append(details, models.FieldError{Field: "limit", Message: fmt.Sprintf("Input should be less than or equal to %d", p.MaxLimit)})
		default:
			limit = uint64(v)
		}
	}
	return skip, limit, details
}

// queryBool reads an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, *models.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &models.FieldError{Field: name, Message: "Input should be a valid boolean"}
	}
	return &v, nil
}

// principalID returns the authenticated caller's id, writing 401 when absent.
func principalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, services.ErrUnauthenticated)
		return 0, false
	}
	return user.ID, true
}
