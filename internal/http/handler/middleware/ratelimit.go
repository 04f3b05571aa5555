package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter *rate.Limiter
}

// NewRateLimitMiddleware allows perSecond requests per second with bursts of the same size.
func NewRateLimitMiddleware(logger *zap.SugaredLogger, perSecond int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		logs:    logger,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			m.logs.Infow("request throttled",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
