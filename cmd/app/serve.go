package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/api"
	"github.com/magscene/magsav-api/internal/config"
	"github.com/magscene/magsav-api/internal/events"
	"github.com/magscene/magsav-api/internal/google"
	"github.com/magscene/magsav-api/internal/metrics"
	"github.com/magscene/magsav-api/internal/repository"
	"github.com/magscene/magsav-api/internal/repository/dao"
	"github.com/magscene/magsav-api/internal/service"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(parent context.Context, configPath string) error {
	conf, postgresDB, err := bootstrap(configPath)
	if err != nil {
		return err
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate the database -> %w", err)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	hub := events.NewHub(conf.API.AllowedCORSDomains)
	go hub.Run(ctx)

	sinks := []events.Sink{hub}
	var amqpPublisher *events.AMQPPublisher
	if conf.AMQP.Enabled {
		amqpPublisher, err = events.NewAMQPPublisher(conf.AMQP.URL, conf.AMQP.Exchange)
		if err != nil {
			return fmt.Errorf("failed to connect to the message broker -> %w", err)
		}
		sinks = append(sinks, amqpPublisher)
	}
	bus := events.NewBus(m, sinks...)

	googleConfig := service.NewGoogleConfigService(
		repository.NewGoogleConfigRepository(dao.NewGoogleConfigDAO(postgresDB)),
		conf.Google.Defaults(),
	)
	integration := google.NewIntegration(conf.Google, googleConfig, m)
	if !integration.Initialize(ctx) {
		zap.L().Info("Google services not configured, starting without them")
	}

	config.Watch(configPath,
		func(next *config.AppConfig) {
			zap.L().Info("configuration file changed, reloading Google settings")
			integration.UpdateSettings(next.Google)
		},
		func(err error) {
			zap.L().Warn("ignoring invalid configuration change", zap.Error(err))
		},
	)

	bg := service.NewBackground(conf.Google.RequestTimeout * 4)

	s, err := api.NewServer(ctx, conf, postgresDB, api.Deps{
		Google:       integration,
		GoogleConfig: googleConfig,
		Events:       bus,
		Hub:          hub,
		Background:   bg,
		Metrics:      m,
		Gatherer:     registry,
	})
	if err != nil {
		return fmt.Errorf("failed to build the server -> %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + conf.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: conf.API.ShutdownTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err = <-serverErr:
		err = fmt.Errorf("failed to start the server -> %w", err)
	case <-ctx.Done():
		zap.L().Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.API.ShutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		zap.L().Error("server shutdown failed", zap.Error(shutdownErr))
	}
	integration.Shutdown()
	bg.Wait()
	if amqpPublisher != nil {
		if closeErr := amqpPublisher.Close(); closeErr != nil {
			zap.L().Warn("failed to close the message broker connection", zap.Error(closeErr))
		}
	}
	stop()

	zap.L().Info("server stopped")

	return err
}
