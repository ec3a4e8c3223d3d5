package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
	"github.com/nguyentantai21042004/quiz-reel/internal/models"
	"github.com/nguyentantai21042004/quiz-reel/internal/renderer"
	"github.com/nguyentantai21042004/quiz-reel/internal/template"
)

// Handler serves the render API.
type Handler struct {
	renderer  renderer.Renderer
	templates template.Resolver
	logger    logger.Logger
}

func NewHandler(r renderer.Renderer, templates template.Resolver, log logger.Logger) *Handler {
	return &Handler{renderer: r, templates: templates, logger: log}
}

// Render handles POST /render. The request blocks until the video is published.
func (h *Handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	var spec models.RenderSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(spec.VideoID) == "" {
		spec.VideoID = uuid.NewString()
	}

	h.logger.Info(ctx, "Render requested for %s", spec.VideoID)

	videoURL, err := h.renderer.Render(ctx, spec)
	if err != nil {
		h.logger.Error(ctx, "Render %s failed: %v", spec.VideoID, err)
		respondError(c, statusFor(err), err)
		return
	}

	respondOK(c, renderResponse{Success: true, VideoURL: videoURL, VideoID: spec.VideoID})
}

// Templates handles GET /templates.
func (h *Handler) Templates(c *gin.Context) {
	all := h.templates.All()
	out := make([]templateResponse, 0, len(all))
	for _, t := range all {
		out = append(out, templateResponse{ID: t.ID, Name: t.Name, Background: t.Background.Hex()})
	}
	respondOK(c, out)
}

func (h *Handler) Health(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}

func statusFor(err error) int {
	if errors.Is(err, renderer.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
