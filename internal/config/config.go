package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Video      VideoConfig      `yaml:"video"`
	Paths      PathsConfig      `yaml:"paths"`
	Storage    StorageConfig    `yaml:"storage"`
	Database   DatabaseConfig   `yaml:"database"`
	Worker     WorkerConfig     `yaml:"worker"`
	HTTPClient HTTPClientConfig `yaml:"http_client"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type FFmpegConfig struct {
	Binary       string `yaml:"binary"`
	ProbeBinary  string `yaml:"probe_binary"`
	Encoder      string `yaml:"encoder"`
	AudioCodec   string `yaml:"audio_codec"`
	Preset       string `yaml:"preset"`
	VideoBitrate string `yaml:"video_bitrate"`
	FPS          int    `yaml:"fps"`
	Threads      int    `yaml:"threads"`
}

type VideoConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	FontPath     string `yaml:"font_path"`
	BoldFontPath string `yaml:"bold_font_path"`
}

type PathsConfig struct {
	Temp     string `yaml:"temp"`
	Spool    string `yaml:"spool"`
	Archived string `yaml:"archived"`
}

type StorageConfig struct {
	Backend         string `yaml:"backend"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	CDNDomain       string `yaml:"cdn_domain"`
	CredentialsFile string `yaml:"credentials_file"`
	LocalDir        string `yaml:"local_dir"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type WorkerConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
}

type HTTPClientConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	StorageGCS   = "gcs"
	StorageLocal = "local"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func (c *Config) Validate() error {
	if c.FFmpeg.Encoder == "" {
		return fmt.Errorf("ffmpeg.encoder is required")
	}

	switch c.Storage.Backend {
	case StorageGCS:
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required for the gcs backend")
		}
	case StorageLocal:
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("storage.local_dir is required for the local backend")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", StorageGCS, StorageLocal, c.Storage.Backend)
	}

	switch c.Database.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.FPS == 0 {
		c.FFmpeg.FPS = 30
	}
	if c.FFmpeg.Threads == 0 {
		c.FFmpeg.Threads = 4
	}
	if c.Video.Width == 0 {
		c.Video.Width = 1080
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1920
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Spool == "" {
		c.Paths.Spool = "data/spool"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Storage.Prefix == "" {
		c.Storage.Prefix = "videos"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Worker.PollInterval == 0 {
		c.Worker.PollInterval = 30 * time.Second
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 10
	}
	if c.HTTPClient.Timeout == 0 {
		c.HTTPClient.Timeout = 2 * time.Minute
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
