package renderer

import (
	"net/http"

	"github.com/nguyentantai21042004/quiz-reel/internal/compositor"
	"github.com/nguyentantai21042004/quiz-reel/internal/config"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/publisher"
	"github.com/nguyentantai21042004/quiz-reel/internal/timeline"
)

type implRenderer struct {
	cfg        *config.Config
	assembler  timeline.Assembler
	compositor compositor.Compositor
	publisher  publisher.Publisher
	specs      SpecStore
	httpClient *http.Client
	logger     logger.Logger
	gate       *renderGate
	localAudio bool
}

// Option configures a Renderer.
type Option func(*implRenderer)

// WithLocalAudio lets audio_url name a local file, either a file:// URL or a
// bare path. Without it only http and https sources are fetched.
func WithLocalAudio() Option {
	return func(r *implRenderer) {
		r.localAudio = true
	}
}

// New creates a Renderer. specs may be nil when only Render is used.
func New(
	cfg *config.Config,
	assembler timeline.Assembler,
	comp compositor.Compositor,
	pub publisher.Publisher,
	specs SpecStore,
	log logger.Logger,
	opts ...Option,
) Renderer {
	r := &implRenderer{
		cfg:        cfg,
		assembler:  assembler,
		compositor: comp,
		publisher:  pub,
		specs:      specs,
		httpClient: &http.Client{Timeout: cfg.HTTPClient.Timeout},
		logger:     log,
		gate:       newRenderGate(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
