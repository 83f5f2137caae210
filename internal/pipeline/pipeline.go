package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/pptx-video/internal/document"
	"github.com/nguyentantai21042004/pptx-video/internal/media"
	"github.com/nguyentantai21042004/pptx-video/internal/presentation"
	"github.com/nguyentantai21042004/pptx-video/internal/script"
	"github.com/nguyentantai21042004/pptx-video/internal/speech"
)

// ticksPerSlide: extract, synthesize, rasterize, save audio, encode
const ticksPerSlide = 5

// run holds what one conversion created, so cleanup removes exactly that
type run struct {
	base           string
	pdfPath        string
	createdPDF     bool
	workDir        string
	createdWorkDir bool
	artifacts      []string
	entries        []script.Entry
	clipsDuration  time.Duration
}

// Convert orchestrates the entire presentation to video pipeline
func (d *implDriver) Convert(ctx context.Context, inputPath, outputPath string) error {
	startTime := time.Now()
	r := &run{
		base:    baseName(inputPath),
		workDir: d.cfg.Paths.WorkDir,
	}

	d.logger.Info(ctx, "========================================")
	d.logger.Info(ctx, "Starting conversion: %s -> %s", inputPath, outputPath)
	d.logger.Info(ctx, "========================================")

	// Step 1: Make sure a PDF sits next to the presentation
	if err := d.ensurePDF(ctx, inputPath, r); err != nil {
		return err
	}

	// Step 2: Working directory
	if err := d.ensureWorkDir(r); err != nil {
		return err
	}

	// Step 3: Open both inputs and check they agree
	pres, err := d.deps.Reader.Read(inputPath)
	if err != nil {
		return fmt.Errorf("read presentation: %w", err)
	}
	pages, err := d.deps.Inspector.PageCount(r.pdfPath)
	if err != nil {
		return fmt.Errorf("inspect pdf: %w", err)
	}
	if pages != len(pres.Slides) {
		return &InputMismatchError{Slides: len(pres.Slides), Pages: pages, PDFPath: r.pdfPath}
	}

	// Step 4: One clip per slide
	manifest, err := media.CreateManifest(filepath.Join(r.workDir, manifestName))
	if err != nil {
		return err
	}
	defer func() {
		if err := manifest.Close(); err != nil {
			d.logger.Warn(ctx, "Failed to close manifest: %v", err)
		}
	}()
	r.artifacts = append(r.artifacts, manifest.Path())

	d.logger.Info(ctx, "Creating narration and images for %d slides, then combining them into clips...", len(pres.Slides))
	d.deps.Progress.Start(ticksPerSlide*len(pres.Slides), "Processing slides")
	for i, slide := range pres.Slides {
		if err := d.processSlide(ctx, r, i, slide, manifest); err != nil {
			d.deps.Progress.Finish()
			return err
		}
	}
	d.deps.Progress.Finish()

	if err := manifest.Flush(); err != nil {
		return err
	}

	// Step 5: Stream-copy the clips into the output
	if err := d.deps.Media.Concatenate(ctx, manifest.Path(), outputPath); err != nil {
		return err
	}
	d.reportDuration(ctx, r, outputPath)

	if d.deps.Script != nil && d.cfg.Script.DocxPath != "" {
		if err := d.deps.Script.Write(ctx, d.cfg.Script.DocxPath, r.base, r.entries); err != nil {
			d.logger.Warn(ctx, "Failed to write narration script: %v", err)
		}
	}

	// Step 6: Intermediates are only removed after a successful run
	if err := manifest.Close(); err != nil {
		d.logger.Warn(ctx, "Failed to close manifest: %v", err)
	}
	d.cleanup(ctx, r)

	d.logger.Info(ctx, "========================================")
	d.logger.Info(ctx, "Conversion completed successfully!")
	d.logger.Info(ctx, "Output video: %s", outputPath)
	d.logger.Info(ctx, "Slides: %d", len(pres.Slides))
	d.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	d.logger.Info(ctx, "========================================")

	return nil
}

func (d *implDriver) ensurePDF(ctx context.Context, inputPath string, r *run) error {
	r.pdfPath = document.PDFPath(inputPath)

	_, err := os.Stat(r.pdfPath)
	switch {
	case err == nil:
		d.logger.Info(ctx, "Using existing PDF: %s", r.pdfPath)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat pdf: %w", err)
	}

	pdfPath, err := d.deps.Converter.ToPDF(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("convert to pdf: %w", err)
	}
	r.pdfPath = pdfPath
	r.createdPDF = true
	return nil
}

func (d *implDriver) ensureWorkDir(r *run) error {
	if _, err := os.Stat(r.workDir); errors.Is(err, fs.ErrNotExist) {
		r.createdWorkDir = true
	}
	if err := os.MkdirAll(r.workDir, 0755); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	return nil
}

// processSlide produces the clip of slide i (zero-based) and appends it to the manifest
func (d *implDriver) processSlide(ctx context.Context, r *run, i int, slide presentation.Slide, manifest *media.Manifest) error {
	index := i + 1
	paths := artifactsFor(r.workDir, r.base, index)

	text, err := presentation.SpeechText(slide)
	if err != nil {
		if errors.Is(err, presentation.ErrEmptySlide) {
			return &presentation.EmptySlideError{Index: index}
		}
		return fmt.Errorf("slide %d: speech text: %w", index, err)
	}
	d.logger.Debug(ctx, "Slide %d text: %s", index, text)
	d.deps.Progress.Advance(1)

	lang := d.deps.Language.Resolve(text)
	audio, retried, err := speech.SynthesizeWithRetry(ctx, d.deps.Synthesizer, text, lang)
	if retried {
		d.logger.Warn(ctx, "Slide %d: speech synthesis failed once, retried with normalized text", index)
	}
	if err != nil {
		return fmt.Errorf("slide %d: %w", index, err)
	}
	d.deps.Progress.Advance(1)

	r.artifacts = append(r.artifacts, paths.all()...)
	if err := d.deps.Rasterizer.Rasterize(ctx, r.pdfPath, i, paths.image); err != nil {
		return fmt.Errorf("slide %d: rasterize: %w", index, err)
	}
	d.deps.Progress.Advance(1)

	if err := os.WriteFile(paths.audio, audio, 0644); err != nil {
		return fmt.Errorf("slide %d: save audio: %w", index, err)
	}
	d.deps.Progress.Advance(1)

	if err := d.deps.Media.Encode(ctx, paths.image, paths.audio, paths.clip); err != nil {
		return fmt.Errorf("slide %d: %w", index, err)
	}
	if err := manifest.Append(paths.clip); err != nil {
		return fmt.Errorf("slide %d: %w", index, err)
	}
	d.deps.Progress.Advance(1)

	if dur, err := d.deps.Media.Duration(ctx, paths.clip); err != nil {
		d.logger.Warn(ctx, "Slide %d: could not read clip duration: %v", index, err)
	} else {
		r.clipsDuration += dur
	}

	r.entries = append(r.entries, script.Entry{Index: index, Text: text})
	return nil
}

// reportDuration compares the output length with the sum of the clips; stream copy should keep them equal
func (d *implDriver) reportDuration(ctx context.Context, r *run, outputPath string) {
	total, err := d.deps.Media.Duration(ctx, outputPath)
	if err != nil {
		d.logger.Warn(ctx, "Could not read output duration: %v", err)
		return
	}
	d.logger.Info(ctx, "Output duration: %s (clips: %s)", total, r.clipsDuration)
}
