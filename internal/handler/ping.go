package handler

import "net/http"

// Ping отвечает на проверку живости сервиса
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
