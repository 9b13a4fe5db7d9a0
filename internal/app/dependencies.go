package app

import (
	"fmt"
	"net/http"

	"github.com/avc-dev/random-string/internal/config"
	"github.com/avc-dev/random-string/internal/grpcapi"
	"github.com/avc-dev/random-string/internal/handler"
	"github.com/avc-dev/random-string/internal/model"
	"github.com/avc-dev/random-string/internal/ratelimit"
	"github.com/avc-dev/random-string/internal/service"
	"github.com/avc-dev/random-string/internal/usecase"
	"github.com/avc-dev/random-string/internal/web"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// dependencies собранные компоненты приложения
type dependencies struct {
	router     http.Handler
	limiter    *ratelimit.Limiter
	grpcServer *grpc.Server
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger, build model.BuildInfo) (*dependencies, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	generator := service.NewGenerator()
	stringsUsecase := usecase.NewStringsUsecase(generator, logger)
	h := handler.New(stringsUsecase, renderer, logger, build)

	limiter := ratelimit.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	deps := &dependencies{
		router:  newRouter(h, limiter, logger, cfg),
		limiter: limiter,
	}

	if cfg.GRPCAddress != "" {
		deps.grpcServer = newGRPCServer(stringsUsecase, logger)
	}

	return deps, nil
}

// newGRPCServer создает gRPC сервер с зарегистрированным сервисом генератора
func newGRPCServer(uc grpcapi.StringsUsecase, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.LoggingInterceptor(logger)))
	grpcapi.RegisterGeneratorServer(s, grpcapi.NewServer(uc, logger))
	return s
}
