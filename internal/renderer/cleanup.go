package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// newWorkDir creates an isolated temp directory for one render.
func (r *implRenderer) newWorkDir(videoID string) (string, error) {
	if err := os.MkdirAll(r.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp root: %w", err)
	}
	dir, err := os.MkdirTemp(r.cfg.Paths.Temp, "video_"+safeName(videoID)+"_*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("resolve temp dir: %w", err)
	}
	return abs, nil
}

// cleanupWorkDir removes a render's temp directory, logs warning if fails
func (r *implRenderer) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		r.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		r.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}

// safeName keeps video ids usable inside file names.
func safeName(id string) string {
	out := make([]rune, 0, len(id))
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
