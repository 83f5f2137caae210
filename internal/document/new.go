package document

import (
	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
	"github.com/nguyentantai21042004/pptx-video/pkg/executor"
)

type implConverter struct {
	cfg      config.DocumentConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewConverter creates a Converter backed by headless LibreOffice
func NewConverter(cfg config.DocumentConfig, exec executor.Executor, log logger.Logger) Converter {
	return &implConverter{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

type implInspector struct{}

// NewInspector creates an Inspector backed by pdfcpu
func NewInspector() Inspector {
	return &implInspector{}
}

type implRasterizer struct {
	cfg      config.DocumentConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewRasterizer creates a Rasterizer backed by poppler's pdftoppm
func NewRasterizer(cfg config.DocumentConfig, exec executor.Executor, log logger.Logger) Rasterizer {
	return &implRasterizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
