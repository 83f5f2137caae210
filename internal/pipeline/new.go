package pipeline

import (
	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/document"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
	"github.com/nguyentantai21042004/pptx-video/internal/media"
	"github.com/nguyentantai21042004/pptx-video/internal/presentation"
	"github.com/nguyentantai21042004/pptx-video/internal/progress"
	"github.com/nguyentantai21042004/pptx-video/internal/script"
	"github.com/nguyentantai21042004/pptx-video/internal/speech"
)

// Deps are the collaborators of the Driver. Script may be nil when no narration export is wanted.
type Deps struct {
	Reader      presentation.Reader
	Converter   document.Converter
	Inspector   document.Inspector
	Rasterizer  document.Rasterizer
	Synthesizer speech.Synthesizer
	Language    speech.LanguageResolver
	Media       media.Toolkit
	Script      script.Writer
	Progress    progress.Reporter
}

type implDriver struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
}

// New creates a new Driver instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Driver {
	if deps.Progress == nil {
		deps.Progress = progress.Nop()
	}
	if deps.Language == nil {
		deps.Language = speech.NewLanguageResolver(cfg.Speech.Language)
	}
	return &implDriver{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
}
