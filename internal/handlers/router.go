package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), CORS(), AccessLog(logger), Recovery(logger))

	r.GET("/health", h.Health)
	r.GET("/labels", h.Labels)
	r.POST("/classify", h.Classify)
	r.POST("/classify/upload", h.ClassifyUpload)
	r.GET("/ws", h.Stream)

	return r
}

// Routes lists the registered endpoints for the startup banner.
func Routes() []string {
	return []string{
		"GET  /health          - Health check",
		"GET  /labels          - Label list with descriptions",
		"POST /classify        - Classify {\"image\": \"<base64>\"}",
		"POST /classify/upload - Classify multipart upload (field \"image\")",
		"GET  /ws              - Websocket stream of images",
	}
}
