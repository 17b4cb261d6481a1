package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserManager defines the user operations exposed over HTTP.
type UserManager interface {
	Create(ctx context.Context, in models.UserCreate) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, skip, limit uint64, isActive *bool) (*models.UserPage, error)
	Update(ctx context.Context, id int64, in models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Registers a new user. The email must be unique. Without a password the account cannot obtain tokens.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreateRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 409 {object} models.ErrorResponse "User with this email already exists"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserCreateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		user, err := svc.Create(r.Context(), req.ToCreate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, user)
	}
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Records to skip" minimum(0) default(0)
// @Param limit query int false "Page size" minimum(1) maximum(100) default(20)
// @Param is_active query bool false "Only active or only inactive users"
// @Success 200 {object} models.UserPage
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserManager, p Pagination) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, details := pageParams(r, p)
		isActive, fe := queryBool(r, "is_active")
		if fe != nil {
			details = append(details, *fe)
		}
		if len(details) > 0 {
			writeValidationError(w, details...)
			return
		}

		page, err := svc.List(r.Context(), skip, limit, isActive)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, fe := pathID(r, "user_id")
		if fe != nil {
			writeValidationError(w, *fe)
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Only the supplied fields are changed.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body models.UserUpdateRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "User with this email already exists"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /users/{user_id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, fe := pathID(r, "user_id")
		if fe != nil {
			writeValidationError(w, *fe)
			return
		}

		var req models.UserUpdateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		user, err := svc.Update(r.Context(), id, req.ToUpdate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user and everything they own.
// @Summary Delete a user
// @Tags users
// @Param user_id path int true "User ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{user_id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, fe := pathID(r, "user_id")
		if fe != nil {
			writeValidationError(w, *fe)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
