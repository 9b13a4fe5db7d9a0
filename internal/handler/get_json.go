package handler

import (
	"net/http"

	"github.com/avc-dev/random-string/internal/usecase"
)

// GetJSON обрабатывает GET /json и возвращает пару сгенерированных строк
func (h *Handler) GetJSON(w http.ResponseWriter, req *http.Request) {
	response, err := h.usecase.GenerateStrings(usecase.ParseLengthRequest(req.URL.Query()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
