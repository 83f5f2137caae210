package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
	"github.com/nguyentantai21042004/pptx-video/pkg/executor/mock"
)

func testConfig() config.DocumentConfig {
	return config.DocumentConfig{SofficePath: "soffice", PdftoppmPath: "pdftoppm", DPI: 72}
}

func TestPDFPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"deck.pptx", "deck.pdf"},
		{"talks/2024/intro.pptx", "talks/2024/intro.pdf"},
		{"noext", "noext.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := PDFPath(tt.in); got != tt.want {
				t.Errorf("PDFPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToPDF(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	pptx := filepath.Join(dir, "deck.pptx")

	exec := &mock.Executor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			// soffice writes <outdir>/<name>.pdf
			return "", os.WriteFile(filepath.Join(args[len(args)-2], "deck.pdf"), []byte("%PDF"), 0644)
		},
	}

	conv := NewConverter(testConfig(), exec, logger.New("error"))
	pdf, err := conv.ToPDF(ctx, pptx)
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if pdf != filepath.Join(dir, "deck.pdf") {
		t.Errorf("ToPDF() = %q", pdf)
	}

	calls := exec.Calls()
	if len(calls) != 1 || calls[0].Name != "soffice" || calls[0].Dir != dir {
		t.Fatalf("calls = %+v", calls)
	}
	if got := strings.Join(calls[0].Args, " "); !strings.Contains(got, "--headless --convert-to pdf --outdir "+dir) {
		t.Errorf("args = %q", got)
	}
}

func TestToPDFMissingOutput(t *testing.T) {
	conv := NewConverter(testConfig(), &mock.Executor{}, logger.New("error"))
	if _, err := conv.ToPDF(context.Background(), filepath.Join(t.TempDir(), "deck.pptx")); err == nil {
		t.Error("ToPDF() should fail when soffice produced nothing")
	}
}

func TestToPDFCommandFailure(t *testing.T) {
	exec := &mock.Executor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("exit status 1")
		},
	}
	conv := NewConverter(testConfig(), exec, logger.New("error"))
	if _, err := conv.ToPDF(context.Background(), "deck.pptx"); err == nil {
		t.Error("ToPDF() should propagate soffice failure")
	}
}

func TestRasterize(t *testing.T) {
	exec := &mock.Executor{}
	r := NewRasterizer(testConfig(), exec, logger.New("error"))

	if err := r.Rasterize(context.Background(), "deck.pdf", 2, "tmp/deck_3.png"); err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}

	calls := exec.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	want := "-png -r 72 -f 3 -l 3 -singlefile deck.pdf tmp/deck_3"
	if got := strings.Join(calls[0].Args, " "); got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestRasterizeNegativePage(t *testing.T) {
	r := NewRasterizer(testConfig(), &mock.Executor{}, logger.New("error"))
	if err := r.Rasterize(context.Background(), "deck.pdf", -1, "out.png"); err == nil {
		t.Error("Rasterize() should reject negative page index")
	}
}

func TestPageCountInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewInspector().PageCount(path); err == nil {
		t.Error("PageCount() should fail for an invalid pdf")
	}
}
