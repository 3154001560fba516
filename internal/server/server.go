// Package server exposes the engine and renderer over a small JSON and
// multipart API. It is a thin presentation layer: every failure comes
// back as a displayable error string, never as a bare status code.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
	"github.com/KagiiKubu/Ithuba/internal/renderer"
)

// maxUploadBytes bounds voice note uploads.
const maxUploadBytes = 25 << 20

type handler struct {
	engine   engine.Engine
	renderer renderer.Renderer
	logger   logger.Logger
}

// NewRouter constructs the Gin engine with routes registered.
func NewRouter(eng engine.Engine, rnd renderer.Renderer, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = maxUploadBytes

	h := &handler{engine: eng, renderer: rnd, logger: log}

	r.GET("/healthz", h.health)

	v1 := r.Group("/v1")
	{
		v1.POST("/transcriptions", h.transcribe)
		v1.POST("/profiles", h.generate)
		v1.POST("/documents", h.render)
	}

	return r
}
