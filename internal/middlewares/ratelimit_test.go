package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-lists/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		result           ratelimit.Result
		err              error
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "Allowed",
			result:           ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:           "Exceeded",
			result:         ratelimit.Result{Allowed: false, Limit: 100, RetryAfter: 1500 * time.Millisecond},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:             "LimiterDown",
			err:              errors.New("redis: connection refused"),
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewMockLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(tt.result, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			rr := httptest.NewRecorder()

			RateLimitMiddleware(limiter)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.Equal(t, "2", rr.Header().Get("Retry-After"))
				assert.JSONEq(t, `{"success":false,"error":"Rate limit exceeded"}`, rr.Body.String())
			}
		})
	}
}

func TestLocalRateLimitMiddleware(t *testing.T) {
	handler := LocalRateLimitMiddleware(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.7:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
		if rr.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"success":false,"error":"Rate limit exceeded"}`, rr.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
