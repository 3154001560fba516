package pipeline

import (
	"github.com/KagiiKubu/Ithuba/internal/config"
	"github.com/KagiiKubu/Ithuba/internal/engine"
	"github.com/KagiiKubu/Ithuba/internal/logger"
	"github.com/KagiiKubu/Ithuba/internal/renderer"
	"github.com/KagiiKubu/Ithuba/pkg/executor"
)

type implPipeline struct {
	cfg      *config.Config
	engine   engine.Engine
	renderer renderer.Renderer
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Pipeline instance
func New(cfg *config.Config, eng engine.Engine, rnd renderer.Renderer, exec executor.Executor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		engine:   eng,
		renderer: rnd,
		executor: exec,
		logger:   log,
	}
}
