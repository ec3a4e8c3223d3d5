package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

// NewRouter wires the render API. An empty allowOrigins allows any origin.
func NewRouter(h *Handler, allowOrigins []string, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	router.Use(cors.New(corsCfg))

	router.Use(requestID(), accessLog(log))

	router.GET("/healthz", h.Health)
	router.GET("/templates", h.Templates)
	router.POST("/render", h.Render)

	return router
}
