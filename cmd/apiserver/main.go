// Command apiserver runs the HTTP API directly, configured from the
// environment.  Equivalent to "peptigraph serve" but without the CLI
// surface; intended for container images.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peptilab/peptigraph/internal/application/conversion"
	"github.com/peptilab/peptigraph/internal/config"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/peptilab/peptigraph/internal/interfaces/http"
	"github.com/peptilab/peptigraph/internal/interfaces/http/handlers"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	metrics := prometheus.New()
	svc := conversion.New(cfg.Convert, logger, metrics)

	router := httpiface.NewRouter(httpiface.RouterConfig{
		ConvertHandler: handlers.NewConvertHandler(svc),
		HealthHandler:  handlers.NewHealthHandler(version),
		Logger:         logger,
		Metrics:        metrics,
		Cfg:            cfg,
	})
	server := httpiface.NewServer(router, cfg.Server, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("signal received", logging.String("signal", sig.String()))
		return server.Stop(context.Background())
	}
}
