package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid gcs config",
			config: Config{
				FFmpeg:  FFmpegConfig{Encoder: "libx264"},
				Storage: StorageConfig{Backend: StorageGCS, Bucket: "videos"},
			},
			wantErr: false,
		},
		{
			name: "valid local config",
			config: Config{
				FFmpeg:   FFmpegConfig{Encoder: "libx264"},
				Storage:  StorageConfig{Backend: StorageLocal, LocalDir: "data/out"},
				Database: DatabaseConfig{Driver: DriverSQLite, DSN: "file::memory:"},
			},
			wantErr: false,
		},
		{
			name: "missing encoder",
			config: Config{
				Storage: StorageConfig{Backend: StorageGCS, Bucket: "videos"},
			},
			wantErr: true,
		},
		{
			name: "gcs without bucket",
			config: Config{
				FFmpeg:  FFmpegConfig{Encoder: "libx264"},
				Storage: StorageConfig{Backend: StorageGCS},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				FFmpeg:  FFmpegConfig{Encoder: "libx264"},
				Storage: StorageConfig{Backend: "s3"},
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			config: Config{
				FFmpeg:   FFmpegConfig{Encoder: "libx264"},
				Storage:  StorageConfig{Backend: StorageLocal, LocalDir: "out"},
				Database: DatabaseConfig{Driver: "mysql"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		FFmpeg:  FFmpegConfig{Encoder: "libx264"},
		Storage: StorageConfig{Backend: StorageLocal, LocalDir: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Video.Width != 1080 || cfg.Video.Height != 1920 {
		t.Errorf("frame = %dx%d, want 1080x1920", cfg.Video.Width, cfg.Video.Height)
	}
	if cfg.FFmpeg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FFmpeg.FPS)
	}
	if cfg.Worker.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.Worker.BatchSize)
	}
	if cfg.FFmpeg.AudioCodec != "aac" {
		t.Errorf("AudioCodec = %s, want aac", cfg.FFmpeg.AudioCodec)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Driver = %s, want %s", cfg.Database.Driver, DriverPostgres)
	}
	if cfg.Worker.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.Worker.PollInterval)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ffmpeg:
  encoder: "libx264"
  preset: "fast"

video:
  font_path: "fonts/Arial.ttf"

storage:
  backend: "gcs"
  bucket: "quiz-videos"

worker:
  poll_interval: 10s

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FFmpeg.Preset != "fast" {
		t.Errorf("Preset = %v, want %v", cfg.FFmpeg.Preset, "fast")
	}
	if cfg.Storage.Bucket != "quiz-videos" {
		t.Errorf("Bucket = %v, want %v", cfg.Storage.Bucket, "quiz-videos")
	}
	if cfg.Worker.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.Worker.PollInterval)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ffmpeg:
  encoder: "libx264"
storage:
  backend: "gcs"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	tmpfile.Close()

	t.Setenv("GCS_BUCKET", "from-env")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db/videos")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Bucket != "from-env" {
		t.Errorf("Bucket = %v, want from-env", cfg.Storage.Bucket)
	}
	if cfg.Database.DSN != "postgres://u:p@db/videos" {
		t.Errorf("DSN = %v", cfg.Database.DSN)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
