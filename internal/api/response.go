package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type renderResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"video_url,omitempty"`
	VideoID  string `json:"video_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

type templateResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
}

func respondError(c *gin.Context, status int, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, renderResponse{Success: false, Error: msg})
}

func respondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
