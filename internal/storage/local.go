package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

type localUploader struct {
	dir     string
	prefix  string
	baseURL string
	logger  logger.Logger
}

// NewLocal creates an Uploader that copies videos into dir. URLs are built from
// baseURL when set, otherwise they are file:// URLs.
func NewLocal(dir, prefix, baseURL string, log logger.Logger) Uploader {
	return &localUploader{
		dir:     dir,
		prefix:  prefix,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log.With("uploader", "local"),
	}
}

func (u *localUploader) Upload(ctx context.Context, filePath, videoID string) (string, error) {
	key := ObjectKey(u.prefix, videoID)
	dest := filepath.Join(u.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}
	if err := copyFile(filePath, dest); err != nil {
		return "", err
	}

	u.logger.Info(ctx, "Stored %s at %s", filePath, dest)

	if u.baseURL != "" {
		return u.baseURL + "/" + key, nil
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", fmt.Errorf("resolve stored path: %w", err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy to destination: %w", err)
	}
	return out.Close()
}
