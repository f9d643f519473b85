package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
	httpiface "github.com/peptilab/peptigraph/internal/interfaces/http"
	"github.com/peptilab/peptigraph/internal/interfaces/http/handlers"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			router := httpiface.NewRouter(httpiface.RouterConfig{
				ConvertHandler: handlers.NewConvertHandler(a.svc),
				HealthHandler:  handlers.NewHealthHandler(cmd.Root().Version),
				Logger:         a.logger,
				Metrics:        a.metrics,
				Cfg:            a.cfg,
			})
			server := httpiface.NewServer(router, a.cfg.Server, a.logger)

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				a.logger.Info("signal received", logging.String("signal", sig.String()))
				return server.Stop(context.Background())
			}
		},
	}
}
