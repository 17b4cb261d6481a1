package middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/ratelimit"
)

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

const rateLimitMessage = "Rate limit exceeded"

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// RateLimitMiddleware rejects clients over their quota with 429. Limiter
// failures let the request through.
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := clientIP(r)

			res, err := limiter.Allow(ctx, key)
			if err != nil {
				logger.FromContext(ctx).Errorw("rate limiter unavailable", "client", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.Allowed {
				retry := int(math.Ceil(res.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				logger.FromContext(ctx).Infow("rate limit exceeded", "client", key)
				writeError(w, http.StatusTooManyRequests, rateLimitMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LocalRateLimitMiddleware limits per client IP with in-process counters.
func LocalRateLimitMiddleware(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, rateLimitMessage)
		}),
	)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
