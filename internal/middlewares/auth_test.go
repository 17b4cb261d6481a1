package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/sbilibin2017/gw-todo-lists/internal/services"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.User{ID: 1, Email: "alice@example.com", IsActive: true}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, auth *MockAuthenticator)
		expectedStatus   int
		expectedBody     string
		expectChallenge  bool
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedBody:    `{"success":false,"error":"Could not validate credentials"}`,
			expectChallenge: true,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").Return(nil, services.ErrUnauthenticated)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedBody:    `{"success":false,"error":"Could not validate credentials"}`,
			expectChallenge: true,
		},
		{
			name: "InactiveUser",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "token").Return(nil, services.ErrInactiveUser)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"success":false,"error":"Inactive user"}`,
		},
		{
			name: "StoreFailure",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "token").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Internal server error"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, auth *MockAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockTokener, mockAuth)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				user, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, alice, user)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	user, ok := UserFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, user)
}

func TestAuthMiddleware_LogsUnderErrorKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zapcore.InfoLevel)
	logger.Log = zap.New(core).Sugar()

	tok := NewMockTokener(ctrl)
	auth := NewMockAuthenticator(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	auth.EXPECT().Authenticate(gomock.Any(), "token").Return(nil, errors.New("db down"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { t.Fatal("next must not run") })
	rr := httptest.NewRecorder()
	AuthMiddleware(tok, auth)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/lists", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "db down", logs.All()[0].ContextMap()["error"])
}
