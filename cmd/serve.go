package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hance08/wallet/internal/api"
	"github.com/hance08/wallet/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	Addr string
}

type serveRunner struct {
	app   *app.App
	flags *serveFlags
}

func NewServeCmd(application *app.App) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet views as JSON over HTTP",
		Long: `Serve the wallet views as JSON over HTTP.

Every request reads the snapshot again, so changes to the source show up
without a restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &serveRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "Listen address (default server.addr)")

	return cmd
}

func (r *serveRunner) Run(ctx context.Context) error {
	svc := r.app.Service
	log := r.app.Log

	addr := r.flags.Addr
	if addr == "" {
		addr = svc.Config.Server.Addr
	}

	handler, err := api.NewHandler(svc)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(handler, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printf("Serving wallet on %s (source: %s)\n", addr, svc.Wallet.Source())
	log.Info().Str("addr", addr).Str("source", svc.Wallet.Source()).Msg("http server started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
