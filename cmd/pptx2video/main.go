package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/document"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
	"github.com/nguyentantai21042004/pptx-video/internal/media"
	"github.com/nguyentantai21042004/pptx-video/internal/pipeline"
	"github.com/nguyentantai21042004/pptx-video/internal/presentation"
	"github.com/nguyentantai21042004/pptx-video/internal/progress"
	"github.com/nguyentantai21042004/pptx-video/internal/script"
	"github.com/nguyentantai21042004/pptx-video/internal/speech"
	"github.com/nguyentantai21042004/pptx-video/pkg/executor"
)

func main() {
	var inputPath, outputPath string
	flag.StringVar(&inputPath, "pptx", "", "path to the input presentation (required)")
	flag.StringVar(&inputPath, "p", "", "shorthand for -pptx")
	flag.StringVar(&outputPath, "output", "", "path of the output video (required)")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output")
	flag.Parse()

	if inputPath == "" || outputPath == "" {
		fmt.Fprintln(os.Stderr, "Both -pptx and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println("PPTX to video: narrating each slide and stitching the clips together")

	// Load configuration
	cfg, err := config.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	// Create context cancelled on Ctrl+C
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize dependencies
	exec := executor.New()
	synth, err := speech.New(cfg.Speech, log)
	if err != nil {
		log.Error(ctx, "Failed to create speech synthesizer: %v", err)
		os.Exit(1)
	}

	driver := pipeline.New(cfg, pipeline.Deps{
		Reader:      presentation.NewReader(),
		Converter:   document.NewConverter(cfg.Document, exec, log),
		Inspector:   document.NewInspector(),
		Rasterizer:  document.NewRasterizer(cfg.Document, exec, log),
		Synthesizer: synth,
		Language:    speech.NewLanguageResolver(cfg.Speech.Language),
		Media:       media.New(cfg.FFmpeg, exec, log),
		Script:      script.New(log),
		Progress:    progress.NewBar(os.Stderr),
	}, log)

	if err := driver.Convert(ctx, inputPath, outputPath); err != nil {
		log.Error(ctx, "Conversion failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Done! Video saved to %s\n", outputPath)
}
