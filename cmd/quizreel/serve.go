package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/quiz-reel/internal/api"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the render HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := newApp(ctx, *configPath, false, false)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			router := api.NewRouter(api.NewHandler(a.renderer, a.templates, a.log), a.cfg.Server.AllowOrigins, a.log)
			srv := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errChan := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Render API listening on %s", a.cfg.Server.Addr)
			a.log.Info(ctx, "Press Ctrl+C to stop")
			a.log.Info(ctx, "========================================")

			select {
			case <-ctx.Done():
				a.log.Info(context.Background(), "Shutdown signal received")
			case err := <-errChan:
				return err
			}

			// Renders are long; give in-flight requests a while to finish
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			a.log.Info(shutdownCtx, "Shutting down gracefully...")
			return srv.Shutdown(shutdownCtx)
		},
	}
}
