package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/random-string/internal/config"
	"github.com/avc-dev/random-string/internal/model"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

// App представляет приложение генератора случайных строк
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
}

// New создает новый экземпляр приложения
func New(args []string, build model.BuildInfo) (*App, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(cfg, logger, build)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
	}, nil
}

// Run запускает приложение: HTTP и gRPC серверы локально или обработчик AWS Lambda
func Run(args []string, build model.BuildInfo) error {
	app, err := New(args, build)
	if err != nil {
		return err
	}
	defer app.Close()

	app.logger.Info("Build info",
		zap.String("version", build.Version),
		zap.String("build_time", build.BuildTime),
		zap.String("commit", build.CommitHash),
	)

	if app.config.IsLambda() {
		app.logger.Info("Running as AWS Lambda function", zap.String("function", app.config.LambdaFunctionName))
		lambda.Start(newLambdaHandler(app.deps.router, app.logger))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.start(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.deps != nil && a.deps.limiter != nil {
		a.deps.limiter.Stop()
	}
	a.logger.Sync()
}

// newLogger создает production логгер с заданным уровнем
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = atomicLevel

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
