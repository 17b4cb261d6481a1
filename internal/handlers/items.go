package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=items.go -destination=items_mock.go -package=handlers

// ItemManager defines the list item operations exposed over HTTP.
type ItemManager interface {
	Create(ctx context.Context, listID, ownerID int64, in models.ListItemCreate) (*models.ListItem, error)
	ListByList(ctx context.Context, listID, ownerID int64) ([]models.ListItem, error)
	Get(ctx context.Context, itemID, ownerID int64) (*models.ListItem, error)
	Update(ctx context.Context, itemID, ownerID int64, in models.ListItemUpdate) (*models.ListItem, error)
	Delete(ctx context.Context, itemID, ownerID int64) error
	Toggle(ctx context.Context, itemID, ownerID int64) (*models.ListItem, error)
}

// NewCreateItemHandler returns an HTTP handler adding an item to a list.
// @Summary Create a list item
// @Tags items
// @Accept json
// @Produce json
// @Param list_id path int true "List ID"
// @Param item body models.ListItemCreateRequest true "Item to create"
// @Success 201 {object} models.ListItem
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /lists/{list_id}/items [post]
// @Security Bearer
func NewCreateItemHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		var req models.ListItemCreateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		item, err := svc.Create(r.Context(), listID, ownerID, req.ToCreate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// NewListItemsHandler returns an HTTP handler listing a list's items by position.
// @Summary List items of a list
// @Tags items
// @Produce json
// @Param list_id path int true "List ID"
// @Success 200 {array} models.ListItem
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "List not found"
// @Router /lists/{list_id}/items [get]
// @Security Bearer
func NewListItemsHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, listID, ok := listTarget(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByList(r.Context(), listID, ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewGetItemHandler returns an HTTP handler fetching one item.
// @Summary Get a list item
// @Description The item is resolved by its own id. Items of lists owned by others yield 403.
// @Tags items
// @Produce json
// @Param list_id path int true "List ID"
// @Param item_id path int true "Item ID"
// @Success 200 {object} models.ListItem
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} models.ErrorResponse "Access denied"
// @Failure 404 {object} models.ErrorResponse "Item not found"
// @Router /lists/{list_id}/items/{item_id} [get]
// @Security Bearer
func NewGetItemHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, itemID, ok := itemTarget(w, r)
		if !ok {
			return
		}

		item, err := svc.Get(r.Context(), itemID, ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// NewUpdateItemHandler returns an HTTP handler for partial item updates.
// @Summary Update a list item
// @Tags items
// @Accept json
// @Produce json
// @Param list_id path int true "List ID"
// @Param item_id path int true "Item ID"
// @Param item body models.ListItemUpdateRequest true "Fields to change"
// @Success 200 {object} models.ListItem
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} models.ErrorResponse "Access denied"
// @Failure 404 {object} models.ErrorResponse "Item not found"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /lists/{list_id}/items/{item_id} [put]
// @Security Bearer
func NewUpdateItemHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, itemID, ok := itemTarget(w, r)
		if !ok {
			return
		}

		var req models.ListItemUpdateRequest
		if details := decodeBody(r, &req); details != nil {
			writeValidationError(w, details...)
			return
		}

		item, err := svc.Update(r.Context(), itemID, ownerID, req.ToUpdate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// NewDeleteItemHandler returns an HTTP handler deleting an item.
// @Summary Delete a list item
// @Tags items
// @Param list_id path int true "List ID"
// @Param item_id path int true "Item ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} models.ErrorResponse "Access denied"
// @Failure 404 {object} models.ErrorResponse "Item not found"
// @Router /lists/{list_id}/items/{item_id} [delete]
// @Security Bearer
func NewDeleteItemHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, itemID, ok := itemTarget(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), itemID, ownerID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewToggleItemHandler returns an HTTP handler flipping an item's completion.
// @Summary Toggle item completion
// @Tags items
// @Produce json
// @Param list_id path int true "List ID"
// @Param item_id path int true "Item ID"
// @Success 200 {object} models.ListItem
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 403 {object} models.ErrorResponse "Access denied"
// @Failure 404 {object} models.ErrorResponse "Item not found"
// @Router /lists/{list_id}/items/{item_id}/toggle [post]
// @Security Bearer
func NewToggleItemHandler(svc ItemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, itemID, ok := itemTarget(w, r)
		if !ok {
			return
		}

		item, err := svc.Toggle(r.Context(), itemID, ownerID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

// itemTarget resolves the caller and the item_id path parameter. list_id
// must be an integer but does not take part in the lookup.
func itemTarget(w http.ResponseWriter, r *http.Request) (ownerID, itemID int64, ok bool) {
	if ownerID, _, ok = listTarget(w, r); !ok {
		return 0, 0, false
	}
	itemID, fe := pathID(r, "item_id")
	if fe != nil {
		writeValidationError(w, *fe)
		return 0, 0, false
	}
	return ownerID, itemID, true
}
