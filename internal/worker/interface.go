package worker

import (
	"context"

	"github.com/nguyentantai21042004/quiz-reel/internal/repository"
)

// Worker drains video records waiting to be rendered.
type Worker interface {
	// Start polls until ctx is cancelled.
	Start(ctx context.Context) error
	// RunOnce processes a single batch and returns how many records succeeded.
	RunOnce(ctx context.Context) (int, error)
}

// Lister finds records in a given status.
type Lister interface {
	ListByStatus(ctx context.Context, status string, limit int) ([]repository.Video, error)
}

// Processor renders one stored record and records its outcome.
type Processor interface {
	Process(ctx context.Context, videoID string) error
}
