package compositor

import (
	"context"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// Compositor turns an ordered layer list plus a narration track into an encoded video.
type Compositor interface {
	// Probe measures the duration of a media file.
	Probe(ctx context.Context, path string) (models.Seconds, error)
	// Compose renders job.Layers over job.AudioPath into job.OutputPath.
	Compose(ctx context.Context, job Job) error
}

// Job describes one composite render.
type Job struct {
	Layers     []models.Layer
	AudioPath  string
	Duration   models.Seconds
	OutputPath string
	// WorkDir holds the rasterized overlays; the caller owns its cleanup.
	WorkDir string
}
