package middleware

import (
	"net"
	"net/http"

	"github.com/avc-dev/random-string/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit ограничивает частоту запросов с одного адреса
func RateLimit(limiter *ratelimit.Limiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)
			if !limiter.Allow(client) {
				logger.Warn("rate limit exceeded",
					zap.String("client", client),
					zap.String("uri", r.RequestURI),
				)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP возвращает адрес клиента без порта.
// RemoteAddr уже скорректирован chi middleware.RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
