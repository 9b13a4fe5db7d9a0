package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/random-string/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RequestID(t *testing.T) {
	t.Run("generates request id", func(t *testing.T) {
		// Arrange
		core, logs := observer.New(zapcore.InfoLevel)
		var seen string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = RequestIDFromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})

		req := httptest.NewRequest(http.MethodGet, "/json?p=5&a=6", nil)
		rec := httptest.NewRecorder()

		// Act
		Logger(zap.New(core))(handler).ServeHTTP(rec, req)

		// Assert
		requestID := rec.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, seen)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "HTTP request", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, requestID, fields["request_id"])
		assert.Equal(t, int64(http.StatusTeapot), fields["status"])
		assert.Equal(t, "/json?p=5&a=6", fields["uri"])
	})

	t.Run("reuses incoming request id", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		Logger(zap.NewNop())(handler).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestNoStore(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	NoStore(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/json", nil))

	assert.Equal(t, NoStoreValue, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(1, 2)
	defer limiter.Stop()

	handler := RateLimit(limiter, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodGet, "/json", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1111"))
	// другой порт того же адреса считается тем же клиентом
	assert.Equal(t, http.StatusOK, do("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1111"))
}
