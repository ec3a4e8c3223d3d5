package renderer

import (
	"context"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

// Renderer turns render specs into published videos.
type Renderer interface {
	// Render produces and uploads the video for spec and returns its public URL.
	Render(ctx context.Context, spec models.RenderSpec) (string, error)
	// Process renders a stored video record and writes the outcome to its status.
	Process(ctx context.Context, videoID string) error
}

// SpecStore loads render specs for stored video records.
type SpecStore interface {
	GetRenderSpec(ctx context.Context, videoID string) (models.RenderSpec, error)
}
