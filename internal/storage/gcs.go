package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

const uploadTimeout = 10 * time.Minute

type gcsUploader struct {
	client    *gcs.Client
	bucket    string
	prefix    string
	cdnDomain string
	logger    logger.Logger
}

// NewGCS creates an Uploader backed by a Google Cloud Storage bucket.
func NewGCS(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (Uploader, error) {
	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if creds := strings.TrimSpace(cfg.CredentialsFile); creds != "" {
		if strings.HasPrefix(creds, "{") {
			opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
		} else {
			opts = append(opts, option.WithCredentialsFile(creds))
		}
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &gcsUploader{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    cfg.Prefix,
		cdnDomain: cfg.CDNDomain,
		logger:    log.With("uploader", "gcs"),
	}, nil
}

func (u *gcsUploader) Upload(ctx context.Context, filePath, videoID string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open rendered video: %w", err)
	}
	defer f.Close()

	key := ObjectKey(u.prefix, videoID)
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	u.logger.Info(ctx, "Uploading %s to gs://%s/%s", filePath, u.bucket, key)

	w := u.client.Bucket(u.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentTypeForKey(key)
	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object writer %s: %w", key, err)
	}

	return u.publicURL(key), nil
}

func (u *gcsUploader) publicURL(key string) string {
	if u.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key)
}
