package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// start запускает HTTP и gRPC серверы и останавливает их при отмене ctx
func (a *App) start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.deps.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	if a.deps.grpcServer != nil {
		lis, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			srv.Close()
			return fmt.Errorf("failed to listen gRPC address %s: %w", a.config.GRPCAddress, err)
		}

		go func() {
			a.logger.Info("Starting gRPC server", zap.String("address", lis.Addr().String()))
			if err := a.deps.grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server failed: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down")
	case runErr = <-errCh:
		a.logger.Error("Server failed", zap.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	return errors.Join(runErr, a.shutdown(shutdownCtx, srv))
}

// shutdown останавливает серверы, дожидаясь завершения активных запросов
func (a *App) shutdown(ctx context.Context, srv *http.Server) error {
	if a.deps.grpcServer != nil {
		stopped := make(chan struct{})
		go func() {
			a.deps.grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-ctx.Done():
			a.deps.grpcServer.Stop()
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	a.logger.Info("Server stopped")
	return nil
}
