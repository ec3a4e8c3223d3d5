package renderer

import "errors"

var (
	ErrInvalidInput = errors.New("invalid render input")
	ErrDownload     = errors.New("audio download failed")
	ErrCompose      = errors.New("composite render failed")
	ErrUpload       = errors.New("upload failed")
)
