package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/kastheco/matiz/log"
	"github.com/kastheco/matiz/server"
	"github.com/spf13/cobra"
)

// NewServeCmd returns the `matiz serve` cobra command.
// It starts an HTTP server that resolves color descriptions.
func NewServeCmd(opts *options) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the color resolver HTTP server",
		Long:  "Start an HTTP server that resolves color descriptions over a REST API and exposes Prometheus metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("bind") {
				cfg.Server.Bind = bind
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Log.Debug {
				log.InitializeDebug(true)
			} else {
				log.Initialize(true)
			}
			defer log.Close()

			r, err := loadResolver(cfg)
			if err != nil {
				return err
			}

			addr := net.JoinHostPort(cfg.Server.Bind, strconv.Itoa(cfg.Server.Port))
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.NewHandler(r),
				ReadHeaderTimeout: 5 * time.Second,
			}

			fmt.Fprintf(cmd.OutOrStdout(), "matiz listening on http://%s (%d keywords, logs: %s)\n", addr, r.Index().Len(), log.FileName())
			log.InfoLog.Printf("listening on %s", addr)

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.ErrorLog.Printf("server: %v", err)
				}
				return err
			case <-ctx.Done():
				fmt.Fprintln(cmd.OutOrStdout(), "\nshutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 7434, "port to listen on (overrides config)")
	cmd.Flags().StringVar(&bind, "bind", "127.0.0.1", "address to bind to (overrides config)")

	return cmd
}
