package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	"github.com/BruksfildServices01/service-auto/internal/config"
	"github.com/BruksfildServices01/service-auto/internal/infra/storage"
	"github.com/BruksfildServices01/service-auto/internal/logging"
	"github.com/BruksfildServices01/service-auto/internal/routes"
)

func newServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if *port != "" {
				cfg.ServerPort = *port
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("storage close failed", zap.Error(err))
		}
	}()
	logger.Info("storage ready", zap.String("driver", backend.Driver))

	// ======================================================
	// AUDIT
	// ======================================================
	sinks, closeSinks := eventSinks(cfg, backend, logger)
	defer closeSinks()

	dispatcher := audit.NewDispatcher(logger, cfg.Events.QueueSize, sinks...)
	defer dispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, routes.Dependencies{
		Config: cfg,
		Logger: logger,
		Store:  backend.Store,
		Audit:  dispatcher,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// eventSinks always logs events; the database and broker sinks are added when
// their backends are available.
func eventSinks(cfg *config.Config, backend *storage.Backend, logger *zap.Logger) ([]audit.Sink, func()) {
	sinks := []audit.Sink{audit.NewLogSink(logger)}
	closeSinks := func() {}

	if backend.DB != nil {
		sinks = append(sinks, audit.NewGormSink(backend.DB))
	}

	if cfg.Events.Enabled {
		rmq, err := audit.NewRabbitMQSink(cfg.Events.RabbitMQURL, cfg.Events.Exchange, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events will only be logged", zap.Error(err))
		} else {
			sinks = append(sinks, rmq)
			closeSinks = func() {
				if err := rmq.Close(); err != nil {
					logger.Warn("rabbitmq close failed", zap.Error(err))
				}
			}
		}
	}

	return sinks, closeSinks
}
