package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/quiz-reel/internal/worker"
)

func newWorkerCmd(configPath *string) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Render stored videos waiting in captions_generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			a, err := newApp(ctx, *configPath, true, false)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			w := worker.New(a.videos, a.renderer, a.cfg.Worker.PollInterval, a.cfg.Worker.BatchSize, a.log)

			if once {
				n, err := w.RunOnce(ctx)
				if err != nil {
					return err
				}
				a.log.Info(ctx, "Rendered %d video(s)", n)
				return nil
			}

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "process a single batch and exit")
	return cmd
}
