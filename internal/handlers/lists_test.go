package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)
	handler := NewCreateListHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(1), models.ListCreate{Title: "Groceries", Description: ptr("Weekly")}).
			Return(&models.List{ID: 3, Title: "Groceries", OwnerID: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/lists", bytes.NewBufferString(`{"title":"Groceries","description":"Weekly"}`))
		rr := httptest.NewRecorder()
		handler(rr, withPrincipal(req, 1))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("owner comes from the token", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(1), models.ListCreate{Title: "Mine"}).
			Return(&models.List{ID: 4, Title: "Mine", OwnerID: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/lists", bytes.NewBufferString(`{"title":"Mine","owner_id":99}`))
		rr := httptest.NewRecorder()
		handler(rr, withPrincipal(req, 1))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("empty title", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lists", bytes.NewBufferString(`{"title":""}`))
		rr := httptest.NewRecorder()
		handler(rr, withPrincipal(req, 1))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Validation Error","details":[{"field":"title","message":"Field required"}]}`, rr.Body.String())
	})

	t.Run("no principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lists", bytes.NewBufferString(`{"title":"x"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	})
}

func TestListListsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)
	handler := NewListListsHandler(mockSvc, DefaultPagination)

	mockSvc.EXPECT().List(gomock.Any(), int64(1), uint64(20), uint64(20), ptr(true)).
		Return(&models.ListPage{Total: 25, Skip: 20, Limit: 20, Items: make([]models.List, 5)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/lists?skip=20&limit=20&archived=true", nil)
	rr := httptest.NewRecorder()
	handler(rr, withPrincipal(req, 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total":25`)
}

func TestGetListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)
	handler := NewGetListHandler(mockSvc)

	mockSvc.EXPECT().Get(gomock.Any(), int64(3), int64(1)).
		Return(&models.ListDetail{List: models.List{ID: 3, OwnerID: 1}, Items: []models.ListItem{{ID: 1, ListID: 3}}}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), int64(3), int64(2)).Return(nil, services.ErrListNotFound)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/lists/3", nil), map[string]string{"list_id": "3"})
	rr := httptest.NewRecorder()
	handler(rr, withPrincipal(req, 1))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[`)

	rr = httptest.NewRecorder()
	handler(rr, withPrincipal(req, 2))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"List not found"}`, rr.Body.String())
}

func TestUpdateListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)
	handler := NewUpdateListHandler(mockSvc)

	mockSvc.EXPECT().
		Update(gomock.Any(), int64(3), int64(1), models.ListUpdate{IsArchived: ptr(true)}).
		Return(&models.List{ID: 3, IsArchived: true}, nil)

	req := httptest.NewRequest(http.MethodPut, "/lists/3", bytes.NewBufferString(`{"is_archived":true}`))
	rr := httptest.NewRecorder()
	handler(rr, withPrincipal(withURLParams(req, map[string]string{"list_id": "3"}), 1))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)
	handler := NewDeleteListHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(3), int64(1)).Return(nil)

	req := withURLParams(httptest.NewRequest(http.MethodDelete, "/lists/3", nil), map[string]string{"list_id": "3"})
	rr := httptest.NewRecorder()
	handler(rr, withPrincipal(req, 1))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestArchiveHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockListManager(ctrl)

	mockSvc.EXPECT().Archive(gomock.Any(), int64(3), int64(1)).Return(&models.List{ID: 3, IsArchived: true}, nil)
	mockSvc.EXPECT().Unarchive(gomock.Any(), int64(3), int64(1)).Return(&models.List{ID: 3}, nil)
	mockSvc.EXPECT().Archive(gomock.Any(), int64(3), int64(2)).Return(nil, services.ErrListNotFound)

	req := withURLParams(httptest.NewRequest(http.MethodPost, "/lists/3/archive", nil), map[string]string{"list_id": "3"})

	rr := httptest.NewRecorder()
	NewArchiveListHandler(mockSvc)(rr, withPrincipal(req, 1))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"is_archived":true`)

	rr = httptest.NewRecorder()
	NewUnarchiveListHandler(mockSvc)(rr, withPrincipal(req, 1))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"is_archived":false`)

	rr = httptest.NewRecorder()
	NewArchiveListHandler(mockSvc)(rr, withPrincipal(req, 2))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
