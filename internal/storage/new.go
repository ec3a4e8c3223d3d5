package storage

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

// New builds the Uploader selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (Uploader, error) {
	switch cfg.Backend {
	case config.StorageGCS:
		return NewGCS(ctx, cfg, log)
	case config.StorageLocal:
		return NewLocal(cfg.LocalDir, cfg.Prefix, cfg.PublicBaseURL, log), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
