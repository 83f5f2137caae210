package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/pptx-video/internal/media"
	"github.com/nguyentantai21042004/pptx-video/internal/presentation"
	"github.com/nguyentantai21042004/pptx-video/internal/script"
	"github.com/nguyentantai21042004/pptx-video/internal/speech"
)

type fakeReader struct {
	pres *presentation.Presentation
}

func (f *fakeReader) Read(path string) (*presentation.Presentation, error) {
	return f.pres, nil
}

type fakeConverter struct {
	calls int
}

func (f *fakeConverter) ToPDF(ctx context.Context, pptxPath string) (string, error) {
	f.calls++
	pdf := strings.TrimSuffix(pptxPath, filepath.Ext(pptxPath)) + ".pdf"
	return pdf, os.WriteFile(pdf, []byte("%PDF-1.7"), 0644)
}

type fakeInspector struct {
	pages int
}

func (f *fakeInspector) PageCount(pdfPath string) (int, error) {
	return f.pages, nil
}

type fakeRasterizer struct {
	pages []int
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, pdfPath string, pageIndex int, outPath string) error {
	f.pages = append(f.pages, pageIndex)
	return os.WriteFile(outPath, []byte("png"), 0644)
}

// fakeSynthesizer fails the first `failures` calls
type fakeSynthesizer struct {
	failures int
	inputs   []string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	f.inputs = append(f.inputs, text)
	if len(f.inputs) <= f.failures {
		return nil, &speech.SynthesisError{Backend: "fake", Err: errors.New("503")}
	}
	return []byte(text), nil
}

// fakeMedia pretends every clip lasts clipDuration and the output is the sum of its clips
type fakeMedia struct {
	clipDuration time.Duration
	encodeErr    error
	encoded      []string
	manifest     []string
	concatCalls  int
}

func (f *fakeMedia) Encode(ctx context.Context, imagePath, audioPath, outPath string) error {
	if f.encodeErr != nil {
		return &media.EncodingError{Output: outPath, Err: f.encodeErr}
	}
	f.encoded = append(f.encoded, outPath)
	return os.WriteFile(outPath, []byte("mp4"), 0644)
}

func (f *fakeMedia) Concatenate(ctx context.Context, manifestPath, outPath string) error {
	f.concatCalls++
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}
	f.manifest = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return os.WriteFile(outPath, data, 0644)
}

func (f *fakeMedia) Duration(ctx context.Context, path string) (time.Duration, error) {
	if strings.HasSuffix(path, "output.mp4") {
		return time.Duration(len(f.manifest)) * f.clipDuration, nil
	}
	return f.clipDuration, nil
}

type countingProgress struct {
	total, ticks, finished int
}

func (c *countingProgress) Start(total int, description string) { c.total = total }
func (c *countingProgress) Advance(n int)                       { c.ticks += n }
func (c *countingProgress) Finish()                             { c.finished++ }

type fakeScript struct {
	entries []script.Entry
}

func (f *fakeScript) Write(ctx context.Context, path, title string, entries []script.Entry) error {
	f.entries = entries
	return nil
}
