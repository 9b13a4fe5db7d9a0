package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc-dev/random-string/internal/model"
	"github.com/avc-dev/random-string/internal/usecase"
	"github.com/avc-dev/random-string/internal/web"
	"go.uber.org/zap"
)

//go:generate mockery --name StringsUsecase

// StringsUsecase определяет интерфейс бизнес-логики генерации строк
type StringsUsecase interface {
	GenerateStrings(req model.LengthRequest) (model.Response, error)
}

// Renderer определяет интерфейс рендеринга HTML страницы
type Renderer interface {
	RenderIndex(w io.Writer, data web.PageData) error
}

// Handler обрабатывает HTTP запросы генератора строк
type Handler struct {
	usecase  StringsUsecase
	renderer Renderer
	logger   *zap.Logger
	build    model.BuildInfo
}

// New создает новый экземпляр Handler
func New(usecase StringsUsecase, renderer Renderer, logger *zap.Logger, build model.BuildInfo) *Handler {
	return &Handler{
		usecase:  usecase,
		renderer: renderer,
		logger:   logger,
		build:    build,
	}
}

// writeJSON отправляет ответ в формате JSON с отступами
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// handleError маппит ошибки usecase на HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrGenerationFailed):
		h.logger.Error("string generation failed", zap.Error(err))
		http.Error(w, "failed to generate strings", http.StatusInternalServerError)
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
