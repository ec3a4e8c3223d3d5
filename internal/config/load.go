package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies environment overrides
// (a .env file in the working directory is loaded when present) and validates it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.Server.Addr, "SERVER_ADDR")
	override(&c.Database.Driver, "DATABASE_DRIVER")
	override(&c.Database.DSN, "DATABASE_DSN")
	override(&c.Storage.Bucket, "GCS_BUCKET")
	override(&c.Storage.CDNDomain, "GCS_CDN_DOMAIN")
	override(&c.Storage.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	override(&c.Logging.Level, "LOG_LEVEL")
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
