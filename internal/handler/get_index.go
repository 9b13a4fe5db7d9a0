package handler

import (
	"bytes"
	"net/http"

	"github.com/avc-dev/random-string/internal/usecase"
	"github.com/avc-dev/random-string/internal/web"
	"go.uber.org/zap"
)

// GetIndex обрабатывает GET /.
// CLI клиенты получают JSON, браузеры получают HTML страницу.
func (h *Handler) GetIndex(w http.ResponseWriter, req *http.Request) {
	if IsCLIUserAgent(req.UserAgent()) {
		h.GetJSON(w, req)
		return
	}

	response, err := h.usecase.GenerateStrings(usecase.ParseLengthRequest(req.URL.Query()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	data := web.PageData{
		PrintableLength:    response.Printable.Length,
		PrintableString:    response.Printable.String,
		AlphanumericLength: response.Alphanumeric.Length,
		AlphanumericString: response.Alphanumeric.String,
		Version:            h.build.Version,
		BuildTime:          h.build.BuildTime,
		CommitHash:         h.build.CommitHash,
	}

	// Рендерим в буфер, чтобы не отдать клиенту половину страницы при ошибке
	var buf bytes.Buffer
	if err := h.renderer.RenderIndex(&buf, data); err != nil {
		h.logger.Error("failed to render index page", zap.Error(err))
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write index page", zap.Error(err))
	}
}
