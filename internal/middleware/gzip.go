package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressibleTypes типы содержимого, которые имеет смысл сжимать
var compressibleTypes = map[string]struct{}{
	"application/json":       {},
	"text/html":              {},
	"text/css":               {},
	"text/javascript":        {},
	"application/javascript": {},
	"application/wasm":       {},
}

// shouldCompress проверяет, нужно ли сжимать ответ на основе Content-Type
func shouldCompress(contentType string) bool {
	// Извлекаем тип без параметров (например, "application/json; charset=utf-8" -> "application/json")
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	_, ok := compressibleTypes[ct]
	return ok
}

// gzipResponseWriter оборачивает http.ResponseWriter и решает сжимать или нет на основе Content-Type
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
	}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	// Частичные ответы и ответы без тела не сжимаем
	if statusCode == http.StatusOK && shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		// Длина несжатого тела больше не актуальна
		w.Header().Del("Content-Length")
		w.gzipWriter = gzip.NewWriter(w.ResponseWriter)
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.compressing {
		return w.gzipWriter.Close()
	}
	return nil
}

// GzipMiddleware сжимает ответы для клиентов, поддерживающих gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := newGzipResponseWriter(w)
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
