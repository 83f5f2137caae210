// Package progress reports pipeline advancement to the user.
package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress ticks; it has no influence on the pipeline
type Reporter interface {
	Start(total int, description string)
	Advance(n int)
	Finish()
}

type barReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBar renders a terminal progress bar to w
func NewBar(w io.Writer) Reporter {
	return &barReporter{w: w}
}

func (b *barReporter) Start(total int, description string) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(b.w)
		}),
	)
}

func (b *barReporter) Advance(n int) {
	if b.bar != nil {
		_ = b.bar.Add(n)
	}
}

func (b *barReporter) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

type nopReporter struct{}

// Nop discards all progress
func Nop() Reporter {
	return nopReporter{}
}

func (nopReporter) Start(int, string) {}
func (nopReporter) Advance(int)       {}
func (nopReporter) Finish()           {}
