package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"cash-audit/internal/handler"
	"cash-audit/internal/usecase"
)

func newServeCmd() *cobra.Command {
	var port int
	var ai bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit workflow as an HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = cfg.Server.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			uc := usecase.NewAuditUseCase(nil, narratorFor(ctx, ai), cfg.Settings())
			h := handler.NewAuditHandler(uc, handler.NewSessionStore(), cfg.CompanyName, cfg.ICQ)
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", port),
				Handler:           handler.NewRouter(h),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Infof("[HTTP] server starting on port %d", port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Infof("[HTTP] shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (defaults to server.port from config)")
	cmd.Flags().BoolVar(&ai, "ai", false, "Use the Gemini narrative service even if disabled in config")
	return cmd
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
