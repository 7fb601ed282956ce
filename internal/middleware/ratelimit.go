package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/metrics"
)

// RateLimit is a fixed-window limiter keyed by client IP, using INCR/EXPIRE
// on rl:<window_seconds>:<ip>. A nil client or a Redis error lets the
// request through.
func RateLimit(client *redis.Client, maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	log := logger.Component("RATELIMIT")
	windowKey := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := windowKey + clientIP(r)

			val, err := client.Incr(ctx, key).Result()
			if err != nil {
				log.Warn("rate limiter unavailable", "error", err)
				w.Header().Set("X-RateLimit-Error", "redis-error")
				next.ServeHTTP(w, r)
				return
			}
			if val == 1 {
				client.Expire(ctx, key, window)
			}

			endpoint := routePattern(r)
			if val > int64(maxRequests) {
				metrics.RLBlocked.WithLabelValues(endpoint).Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			metrics.RLRequests.WithLabelValues(endpoint).Inc()
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
