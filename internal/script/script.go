// Package script exports the narration of a run as a Word document.
package script

import (
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/pptx-video/internal/logger"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 12
	headingSize = 14
	titleSize   = 16
)

// Entry is the narration of one slide
type Entry struct {
	Index int
	Text  string
}

// Writer saves narration entries as a document
type Writer interface {
	Write(ctx context.Context, path, title string, entries []Entry) error
}

type implWriter struct {
	logger logger.Logger
}

// New creates a docx Writer
func New(log logger.Logger) Writer {
	return &implWriter{logger: log}
}

// Write lays out a title, then one heading and one paragraph per slide
func (w *implWriter) Write(ctx context.Context, path, title string, entries []Entry) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	for _, e := range entries {
		addRun(doc.AddParagraph(""), fmt.Sprintf("Slide %d", e.Index), true, headingSize)
		addRun(doc.AddParagraph(""), e.Text, false, fontSize)
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	w.logger.Info(ctx, "Narration script written: %s", path)
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
