package media

import (
	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
	"github.com/nguyentantai21042004/pptx-video/pkg/executor"
)

type implToolkit struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Toolkit that runs the configured ffmpeg and ffprobe binaries
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Toolkit {
	return &implToolkit{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
