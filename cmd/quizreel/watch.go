package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/quiz-reel/internal/watcher"
)

func newWatchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render JSON requests dropped into the spool directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := newApp(ctx, *configPath, false, true)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			w, err := watcher.New(a.cfg.Paths.Spool, a.cfg.Paths.Archived, watcher.RenderHandler(a.renderer, a.log), a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Drop render requests into %s (Ctrl+C to stop)", a.cfg.Paths.Spool)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
