package models

// Video record statuses written by the publisher.
const (
	StatusCaptionsGenerated = "captions_generated"
	StatusVideoRendered     = "video_rendered"
	StatusError             = "error"
)
