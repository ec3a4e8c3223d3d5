package renderer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// checkAudioSource rejects audio URLs the renderer is not allowed to read.
func (r *implRenderer) checkAudioSource(audioURL string) error {
	u, err := url.Parse(audioURL)
	if err != nil {
		return fmt.Errorf("%w: parse audio url: %w", ErrInvalidInput, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return nil
	case "file", "":
		if r.localAudio {
			return nil
		}
		return fmt.Errorf("%w: local audio source %q is not allowed", ErrInvalidInput, audioURL)
	default:
		return fmt.Errorf("%w: unsupported audio url scheme %q", ErrInvalidInput, u.Scheme)
	}
}

// downloadAudio fetches the narration track into dir and returns the local path.
// http(s) URLs are downloaded; file:// URLs and bare paths are copied.
func (r *implRenderer) downloadAudio(ctx context.Context, audioURL, dir string) (string, error) {
	u, err := url.Parse(audioURL)
	if err != nil {
		return "", fmt.Errorf("parse audio url: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(u.Path))
	if ext == "" {
		ext = ".mp3"
	}
	audioPath := filepath.Join(dir, "audio"+ext)

	r.logger.Info(ctx, "Downloading audio from %s", audioURL)

	if err := r.checkAudioSource(audioURL); err != nil {
		return "", err
	}

	var src io.ReadCloser
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		src, err = r.openHTTP(ctx, audioURL)
	case "file":
		src, err = os.Open(u.Path)
	case "":
		src, err = os.Open(audioURL)
	default:
		err = fmt.Errorf("unsupported audio url scheme %q", u.Scheme)
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(audioPath)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close audio file: %w", err)
	}

	r.logger.Info(ctx, "Audio downloaded: %s (%d bytes)", audioPath, n)
	return audioPath, nil
}

func (r *implRenderer) openHTTP(ctx context.Context, audioURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get audio: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("get audio: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp.Body, nil
}
