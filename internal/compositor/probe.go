package compositor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// Probe asks ffprobe for the container duration in seconds.
func (c *implCompositor) Probe(ctx context.Context, path string) (models.Seconds, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := c.executor.Execute(ctx, c.ffmpeg.ProbeBinary, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	d, err := parseDuration(out)
	if err != nil {
		return 0, err
	}

	c.logger.Debug(ctx, "Probed %s: %.3fs", path, float64(d))
	return d, nil
}

func parseDuration(out string) (models.Seconds, error) {
	raw := strings.TrimSpace(out)
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("ffprobe reported non-positive duration %q", raw)
	}
	return models.Seconds(v), nil
}
