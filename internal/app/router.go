package app

import (
	"net/http"

	"github.com/avc-dev/random-string/internal/config"
	"github.com/avc-dev/random-string/internal/handler"
	"github.com/avc-dev/random-string/internal/middleware"
	"github.com/avc-dev/random-string/internal/ratelimit"
	"github.com/avc-dev/random-string/internal/web"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, limiter *ratelimit.Limiter, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	// Routes
	r.Get("/ping", h.Ping)

	// Сгенерированные строки никогда не кешируются
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, logger))
		r.Use(middleware.NoStore)

		r.Get("/", h.GetIndex)
		r.Get("/json", h.GetJSON)
	})

	// Static: сборка wasm клиента с диска, остальное встроено в бинарник
	r.Handle("/static/wasm/*", http.StripPrefix("/static/wasm/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	return r
}
