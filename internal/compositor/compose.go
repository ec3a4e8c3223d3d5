package compositor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/quiz-reel/internal/models"
)

const softwareEncoder = "libx264"

// Compose rasterizes the text layers and encodes the final video with ffmpeg.
// A failing hardware encoder is retried once with libx264.
func (c *implCompositor) Compose(ctx context.Context, job Job) error {
	if job.Duration <= 0 {
		return fmt.Errorf("compose: non-positive duration %v", job.Duration)
	}

	bg := models.Black
	var overlays []overlay
	for i, l := range job.Layers {
		if l.Kind == models.LayerBackground {
			bg = l.Payload.Color
			continue
		}
		path := filepath.Join(job.WorkDir, fmt.Sprintf("layer_%03d.png", i))
		ov, err := c.raster.render(l, path)
		if err != nil {
			return fmt.Errorf("rasterize %s layer %d: %w", l.Kind, i, err)
		}
		overlays = append(overlays, ov)
	}

	if !c.raster.fonts.hasTTF() {
		c.logger.Warn(ctx, "No TTF configured (video.font_path), overlays use the 7x13 bitmap font")
	}
	c.logger.Info(ctx, "Compositing %d overlays over %.2fs of audio", len(overlays), float64(job.Duration))

	args := c.buildArgs(job, bg, overlays, c.ffmpeg.Encoder)
	if _, err := c.executor.ExecuteInDir(ctx, job.WorkDir, c.ffmpeg.Binary, args...); err != nil {
		if c.ffmpeg.Encoder == softwareEncoder {
			return fmt.Errorf("ffmpeg compose: %w", err)
		}
		c.logger.Warn(ctx, "Encoder %s failed, trying software encoder...", c.ffmpeg.Encoder)
		args = c.buildArgs(job, bg, overlays, softwareEncoder)
		if _, err := c.executor.ExecuteInDir(ctx, job.WorkDir, c.ffmpeg.Binary, args...); err != nil {
			return fmt.Errorf("both %s and %s encoders failed: %w", c.ffmpeg.Encoder, softwareEncoder, err)
		}
	}

	c.logger.Info(ctx, "Video composed: %s", job.OutputPath)
	return nil
}

func (c *implCompositor) buildArgs(job Job, bg models.RGB, overlays []overlay, encoder string) []string {
	duration := formatSeconds(job.Duration)
	fps := strconv.Itoa(c.ffmpeg.FPS)

	args := []string{
		"-y",
		"-f", "lavfi",
		"-i", backgroundSource(bg, c.video.Width, c.video.Height, c.ffmpeg.FPS, job.Duration),
		"-i", job.AudioPath,
	}
	for _, ov := range overlays {
		args = append(args, "-loop", "1", "-framerate", fps, "-t", duration, "-i", ov.path)
	}

	args = append(args,
		"-filter_complex", buildFilterGraph(overlays),
		"-map", "[vout]",
		"-map", "1:a",
		"-c:v", encoder,
	)
	if encoder == softwareEncoder {
		args = append(args, "-preset", c.ffmpeg.Preset)
	}
	if c.ffmpeg.VideoBitrate != "" {
		args = append(args, "-b:v", c.ffmpeg.VideoBitrate)
	}
	args = append(args,
		"-pix_fmt", "yuv420p",
		"-c:a", c.ffmpeg.AudioCodec,
		"-r", fps,
		"-threads", strconv.Itoa(c.ffmpeg.Threads),
		"-t", duration,
		"-movflags", "+faststart",
		job.OutputPath,
	)
	return args
}
