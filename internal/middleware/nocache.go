package middleware

import "net/http"

// NoStoreValue значение Cache-Control для ответов, которые нельзя кешировать
const NoStoreValue = "no-store, no-cache, must-revalidate"

// NoStore запрещает кеширование ответов браузером и промежуточными прокси
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", NoStoreValue)
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
