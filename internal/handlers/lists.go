package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=lists.go -destination=lists_mock.go -package=handlers

// ListManager defines the list operations exposed over HTTP. Every call is
// made on behalf of the authenticated owner.
type ListManager interface {
	Create(ctx context.Context, ownerID int64, in models.ListCreate) (*models.List, error)
	Get(ctx context.Context, listID, ownerID int64) (*models.ListDetail, error)
	List(ctx context.Context, ownerID int64, skip, limit uint64, archived *bool) (*models.ListPage, error)
	Update(ctx context.Context, listID, ownerID int64, in models.ListUpdate) (*models.List, error)
	Delete(ctx context.Context, listID, ownerID int64) error
	Archive(ctx context.Context, listID, ownerID int64) (*models.List, error)
	Unarchive(ctx context.Context, listID, ownerID int64) (*models.List, error)
}

// NewCreateListHandler returns an HTTP handler creating a list for the caller.
// @Summary Create a list
// @Tags lists
// @Accept json
// @Produce json
// @Param list body models.ListCreateRequest true "List to create"
// @Success 201 {object} models.List
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /lists [post]
// @Security Bearer
func NewCreateListHandler(svc ListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := principalID(w, r)
		if !ok {
			return
		}

		var req models.ListCreateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		list, err := svc.Create(r.Context(), ownerID, req.ToCreate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, list)
	}
}

// NewListListsHandler returns an HTTP handler listing the caller's lists, newest first.
// @Summary List own lists
// @Tags lists
// @Produce json
// @Param skip query int false "Records to skip" minimum(0) default(0)
// @Param limit query int false "Page size" minimum(1) maximum(100) default(20)
// @Param archived query bool false "Only archived or only active lists"
// @Success 200 {object} models.ListPage
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /lists [get]
// @Security Bearer
func NewListListsHandler(svc ListManager, p Pagination) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := principalID(w, r)
		if !ok {
			return
		}

		skip, limit, details := pageParams(r, p)
		archived, fe := queryBool(r, "archived")
		if fe != nil {
			details = append(details, *fe)
		}
		if len(details) > 0 {
			writeValidationError(w, details...)
			return
		}

		page, err := svc.List(r.Context(), ownerID, skip, limit, archived)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetListHandler returns an HTTP handler fetching a list with its items.
// @Summary Get a list
// @Tags lists
// @Produce json
// @Param list_id path int true "List ID"
// @Success 200 {object} models.ListDetail
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Router /lists/{list_id} [get]
// @Security Bearer
func NewGetListHandler(svc ListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		list, err := svc.Get(r.Context(), listID, ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewUpdateListHandler returns an HTTP handler for partial list updates.
// @Summary Update a list
// @Tags lists
// @Accept json
// @Produce json
// @Param list_id path int true "List ID"
// @Param list body models.ListUpdateRequest true "Fields to change"
// @Success 200 {object} models.List
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /lists/{list_id} [put]
// @Security Bearer
func NewUpdateListHandler(svc ListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		var req models.ListUpdateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		list, err := svc.Update(r.Context(), listID, ownerID, req.ToUpdate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewDeleteListHandler returns an HTTP handler deleting a list and its items.
// @Summary Delete a list
// @Tags lists
// @Param list_id path int true "List ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Router /lists/{list_id} [delete]
// @Security Bearer
func NewDeleteListHandler(svc ListManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), listID, ownerID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewArchiveListHandler returns an HTTP handler archiving a list.
// @Summary Archive a list
// @Tags lists
// @Produce json
// @Param list_id path int true "List ID"
// @Success 200 {object} models.List
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Router /lists/{list_id}/archive [post]
// @Security Bearer
func NewArchiveListHandler(svc ListManager) http.HandlerFunc {
	return newArchiveHandler(svc.Archive)
}

// NewUnarchiveListHandler returns an HTTP handler restoring an archived list.
// @Summary Unarchive a list
// @Tags lists
// @Produce json
// @Param list_id path int true "List ID"
// @Success 200 {object} models.List
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Router /lists/{list_id}/unarchive [post]
// @Security Bearer
func NewUnarchiveListHandler(svc ListManager) http.HandlerFunc {
	return newArchiveHandler(svc.Unarchive)
}

func newArchiveHandler(set func(ctx context.Context, listID, ownerID int64) (*models.List, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		list, err := set(r.Context(), listID, ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// listTarget resolves the caller and the list_id path parameter.
func listTarget(w http.ResponseWriter, r *http.Request) (ownerID, listID int64, ok bool) {
	if ownerID, ok = principalID(w, r); !ok {
		return 0, 0, false
	}
	listID, fe := pathID(r, "list_id")
	if fe != nil {
		writeValidationError(w, *fe)
		return 0, 0, false
	}
	return ownerID, listID, true
}
