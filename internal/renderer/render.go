package renderer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/quiz-reel/internal/captions"
	"github.com/nguyentantai21042004/quiz-reel/internal/compositor"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/timeline"
)

// Render orchestrates the whole pipeline for one video
func (r *implRenderer) Render(ctx context.Context, spec models.RenderSpec) (string, error) {
	if err := checkInput(spec); err != nil {
		return "", err
	}
	if err := r.checkAudioSource(spec.AudioURL); err != nil {
		return "", err
	}

	if !r.gate.tryEnter() {
		r.logger.Info(ctx, "Another render is in progress, %s is waiting", spec.VideoID)
		if err := r.gate.enter(ctx); err != nil {
			return "", fmt.Errorf("wait for render slot: %w", err)
		}
	}
	defer r.gate.leave()

	startTime := time.Now()
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Starting video rendering for %s", spec.VideoID)
	r.logger.Info(ctx, "========================================")

	if len(spec.Captions) == 0 && strings.TrimSpace(spec.Script) != "" {
		spec.Captions = captions.Estimate(spec.Script)
		r.logger.Info(ctx, "No captions supplied, estimated %d from script", len(spec.Captions))
	}

	workDir, err := r.newWorkDir(spec.VideoID)
	if err != nil {
		return "", err
	}
	defer r.cleanupWorkDir(ctx, workDir)

	// Step 1: Fetch narration
	audioPath, err := r.downloadAudio(ctx, spec.AudioURL, workDir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	// Step 2: Measure it once; every overlay is timed against this
	duration, err := r.compositor.Probe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: probe audio: %w", ErrCompose, err)
	}
	r.logger.Info(ctx, "Audio duration: %.2fs", float64(duration))

	// Step 3: Lay out the timeline
	layers, err := r.assembler.Assemble(spec, duration)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	r.logger.Debug(ctx, "Assembled %d layers", len(layers))

	// Step 4: Composite and encode
	outputPath := filepath.Join(workDir, "video_"+safeName(spec.VideoID)+".mp4")
	if err := r.compositor.Compose(ctx, compositor.Job{
		Layers:     layers,
		AudioPath:  audioPath,
		Duration:   duration,
		OutputPath: outputPath,
		WorkDir:    workDir,
	}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompose, err)
	}

	// Step 5: Publish
	videoURL, err := r.publisher.Upload(ctx, outputPath, spec.VideoID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpload, err)
	}

	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Rendering completed successfully!")
	r.logger.Info(ctx, "Video URL: %s", videoURL)
	r.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	r.logger.Info(ctx, "========================================")

	return videoURL, nil
}

// checkInput fails fast on fields every render needs.
func checkInput(spec models.RenderSpec) error {
	switch {
	case strings.TrimSpace(spec.VideoID) == "":
		return fmt.Errorf("%w: video_id is required", ErrInvalidInput)
	case strings.TrimSpace(spec.AudioURL) == "":
		return fmt.Errorf("%w: no audio URL found for video %s", ErrInvalidInput, spec.VideoID)
	case spec.Question == nil:
		return fmt.Errorf("%w: %w", ErrInvalidInput, timeline.ErrMissingQuestion)
	}
	return nil
}
