package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/nguyentantai21042004/quiz-reel/internal/compositor"
	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/publisher"
	"github.com/nguyentantai21042004/quiz-reel/internal/renderer"
	"github.com/nguyentantai21042004/quiz-reel/internal/repository"
	"github.com/nguyentantai21042004/quiz-reel/internal/storage"
	"github.com/nguyentantai21042004/quiz-reel/internal/template"
	"github.com/nguyentantai21042004/quiz-reel/internal/timeline"
	"github.com/nguyentantai21042004/quiz-reel/pkg/executor"
)

// app holds the wired dependencies shared by every command.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	templates template.Resolver
	videos    repository.VideoRepo
	renderer  renderer.Renderer
}

// newApp loads config and wires the pipeline. The video repository is only
// opened when needDB is set or a DSN is configured. localAudio allows audio_url
// to name files on this host.
func newApp(ctx context.Context, configPath string, needDB, localAudio bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Quiz Reel Renderer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU Cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Output: %dx%d @ %dfps, encoder %s", cfg.Video.Width, cfg.Video.Height, cfg.FFmpeg.FPS, cfg.FFmpeg.Encoder)

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	var videos repository.VideoRepo
	if needDB || cfg.Database.DSN != "" {
		if cfg.Database.DSN == "" {
			return nil, fmt.Errorf("database.dsn is required for this command")
		}
		db, err := repository.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		videos = repository.NewVideoRepo(db, log)
		if cfg.Database.Driver == config.DriverSQLite {
			if err := videos.Migrate(ctx); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		log.Info(ctx, "Database connected (%s)", cfg.Database.Driver)
	}

	uploader, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	comp, err := compositor.New(cfg.FFmpeg, cfg.Video, executor.New(), log)
	if err != nil {
		return nil, fmt.Errorf("init compositor: %w", err)
	}

	templates := template.New()
	assembler := timeline.New(timeline.NewLayout(cfg.Video.Width, cfg.Video.Height), templates)

	var specs renderer.SpecStore
	if videos != nil {
		specs = videos
	}

	var opts []renderer.Option
	if localAudio {
		opts = append(opts, renderer.WithLocalAudio())
	}

	return &app{
		cfg:       cfg,
		log:       log,
		templates: templates,
		videos:    videos,
		renderer:  renderer.New(cfg, assembler, comp, publisher.New(uploader, videos), specs, log, opts...),
	}, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Temp,
		cfg.Paths.Spool,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
