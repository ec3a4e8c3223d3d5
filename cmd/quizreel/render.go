package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/quiz-reel/internal/watcher"
)

func newRenderCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "render <spec.json>",
		Short: "Render a single request file and print the published URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			spec, err := watcher.ReadSpec(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(ctx, *configPath, false, true)
			if err != nil {
				return err
			}
			defer a.log.Sync()

			url, err := a.renderer.Render(ctx, spec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
