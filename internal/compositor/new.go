package compositor

import (
	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/pkg/executor"
)

type implCompositor struct {
	ffmpeg   config.FFmpegConfig
	video    config.VideoConfig
	executor executor.Executor
	raster   *rasterizer
	logger   logger.Logger
}

// New creates a Compositor that draws overlays with the configured fonts and encodes with ffmpeg.
func New(ffmpeg config.FFmpegConfig, video config.VideoConfig, exec executor.Executor, log logger.Logger) (Compositor, error) {
	fonts, err := newFontSet(video.FontPath, video.BoldFontPath)
	if err != nil {
		return nil, err
	}

	return &implCompositor{
		ffmpeg:   ffmpeg,
		video:    video,
		executor: exec,
		raster:   newRasterizer(fonts),
		logger:   log,
	}, nil
}
