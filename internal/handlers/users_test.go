package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","full_name":"Alice"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), models.UserCreate{Email: "alice@example.com", FullName: "Alice", IsActive: true}).
					Return(&models.User{ID: 1, Email: "alice@example.com", FullName: "Alice", IsActive: true, HashedPassword: "secret-hash"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"alice@example.com","full_name":"Alice"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"success":false,"error":"User with this email already exists"}`,
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","full_name":"Alice"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"success":false,"error":"Validation Error","details":[{"field":"email","message":"value is not a valid email address"}]}`,
		},
		{
			name:         "missing full name",
			body:         `{"email":"alice@example.com"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"success":false,"error":"Validation Error","details":[{"field":"full_name","message":"Field required"}]}`,
		},
		{
			name:         "short password",
			body:         `{"email":"alice@example.com","full_name":"Alice","password":"short"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"success":false,"error":"Validation Error","details":[{"field":"password","message":"String should have at least 8 characters"}]}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"success":false,"error":"Validation Error","details":[{"field":"body","message":"JSON decode error"}]}`,
		},
		{
			name:         "wrong type",
			body:         `{"email":"alice@example.com","full_name":42}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"success":false,"error":"Validation Error","details":[{"field":"full_name","message":"Input should be a valid string"}]}`,
		},
		{
			name: "internal server error",
			body: `{"email":"bob@example.com","full_name":"Bob"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewCreateUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCreateUserHandler_NeverSerializesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserManager(ctrl)

	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: 1, Email: "alice@example.com", HashedPassword: "pbkdf2_sha256$salt$digest"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"email":"alice@example.com","full_name":"Alice","password":"secret123"}`))
	rr := httptest.NewRecorder()
	NewCreateUserHandler(mockSvc)(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "pbkdf2")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.NotContains(t, body, "hashed_password")
	assert.NotContains(t, body, "password")
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	handler := NewListUsersHandler(mockSvc, DefaultPagination)

	t.Run("defaults", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), uint64(0), uint64(20), (*bool)(nil)).
			Return(&models.UserPage{Total: 0, Skip: 0, Limit: 20, Items: []models.User{}}, nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"total":0,"skip":0,"limit":20,"items":[]}`, rr.Body.String())
	})

	t.Run("filter and page", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any(), uint64(5), uint64(10), ptr(false)).
			Return(&models.UserPage{Total: 6, Skip: 5, Limit: 10, Items: []models.User{{ID: 6}}}, nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/users?skip=5&limit=10&is_active=false", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	for _, query := range []string{"limit=0", "limit=101", "skip=-1", "skip=abc", "is_active=maybe"} {
		t.Run("invalid "+query, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler(rr, httptest.NewRequest(http.MethodGet, "/users?"+query, nil))

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	handler := NewGetUserHandler(mockSvc)

	mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.User{ID: 1, Email: "alice@example.com"}, nil)
	mockSvc.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, services.ErrUserNotFound)

	rr := httptest.NewRecorder()
	handler(rr, withURLParams(httptest.NewRequest(http.MethodGet, "/users/1", nil), map[string]string{"user_id": "1"}))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler(rr, withURLParams(httptest.NewRequest(http.MethodGet, "/users/2", nil), map[string]string{"user_id": "2"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"User not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler(rr, withURLParams(httptest.NewRequest(http.MethodGet, "/users/abc", nil), map[string]string{"user_id": "abc"}))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	handler := NewUpdateUserHandler(mockSvc)

	mockSvc.EXPECT().
		Update(gomock.Any(), int64(1), models.UserUpdate{FullName: ptr("Alice Cooper")}).
		Return(&models.User{ID: 1, FullName: "Alice Cooper"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewBufferString(`{"full_name":"Alice Cooper"}`))
	rr := httptest.NewRecorder()
	handler(rr, withURLParams(req, map[string]string{"user_id": "1"}))
	assert.Equal(t, http.StatusOK, rr.Code)

	mockSvc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)

	req = httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewBufferString(`{"email":"bob@example.com"}`))
	rr = httptest.NewRecorder()
	handler(rr, withURLParams(req, map[string]string{"user_id": "1"}))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	handler := NewDeleteUserHandler(mockSvc)

	mockSvc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	mockSvc.EXPECT().Delete(gomock.Any(), int64(2)).Return(services.ErrUserNotFound)

	rr := httptest.NewRecorder()
	handler(rr, withURLParams(httptest.NewRequest(http.MethodDelete, "/users/1", nil), map[string]string{"user_id": "1"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	handler(rr, withURLParams(httptest.NewRequest(http.MethodDelete, "/users/2", nil), map[string]string{"user_id": "2"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUserHandler_NonPositiveID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewGetUserHandler(NewMockUserManager(ctrl))

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/users/0", nil), map[string]string{"user_id": "0"})
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Validation Error","details":[{"field":"user_id","message":"Input should be greater than or equal to 1"}]}`, rr.Body.String())
}
