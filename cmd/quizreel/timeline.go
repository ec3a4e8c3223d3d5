package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/quiz-reel/internal/captions"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/template"
	"github.com/nguyentantai21042004/quiz-reel/internal/timeline"
	"github.com/nguyentantai21042004/quiz-reel/internal/watcher"
)

func newTimelineCmd() *cobra.Command {
	var (
		duration      float64
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "timeline <spec.json>",
		Short: "Print the assembled layers for a request without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := watcher.ReadSpec(args[0])
			if err != nil {
				return err
			}
			if len(spec.Captions) == 0 && strings.TrimSpace(spec.Script) != "" {
				spec.Captions = captions.Estimate(spec.Script)
			}

			a := timeline.New(timeline.NewLayout(width, height), template.New())
			layers, err := a.Assemble(spec, models.Seconds(duration))
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(layers, "", "  ")
			if err != nil {
				return fmt.Errorf("encode layers: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().Float64Var(&duration, "duration", 0, "audio duration in seconds")
	cmd.Flags().IntVar(&width, "width", 1080, "frame width")
	cmd.Flags().IntVar(&height, "height", 1920, "frame height")
	cmd.MarkFlagRequired("duration")
	return cmd
}
