package worker

import (
	"time"

	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

const defaultBatchSize = 10

type implWorker struct {
	lister    Lister
	processor Processor
	interval  time.Duration
	batchSize int
	logger    logger.Logger
}

// New creates a Worker that polls lister every interval.
func New(lister Lister, processor Processor, interval time.Duration, batchSize int, log logger.Logger) Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &implWorker{
		lister:    lister,
		processor: processor,
		interval:  interval,
		batchSize: batchSize,
		logger:    log,
	}
}
