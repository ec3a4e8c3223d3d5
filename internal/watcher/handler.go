package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/renderer"
)

// ReadSpec decodes a render request file. A missing video_id defaults to the
// file name without its extension.
func ReadSpec(path string) (models.RenderSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.RenderSpec{}, fmt.Errorf("read request: %w", err)
	}

	var spec models.RenderSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return models.RenderSpec{}, fmt.Errorf("%w: decode %s: %w", renderer.ErrInvalidInput, filepath.Base(path), err)
	}
	if strings.TrimSpace(spec.VideoID) == "" {
		spec.VideoID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return spec, nil
}

// RenderHandler returns an EventHandler that renders each request file with r.
func RenderHandler(r renderer.Renderer, log logger.Logger) EventHandler {
	return func(ctx context.Context, filePath string) error {
		spec, err := ReadSpec(filePath)
		if err != nil {
			return err
		}
		url, err := r.Render(ctx, spec)
		if err != nil {
			return err
		}
		log.Info(ctx, "Rendered %s: %s", spec.VideoID, url)
		return nil
	}
}
