// Package document turns presentations into paginated PDFs and rasterizes their pages.
package document

import "context"

// Converter exports a presentation to a PDF with one page per slide
type Converter interface {
	ToPDF(ctx context.Context, pptxPath string) (string, error)
}

// Inspector reads structural facts about a PDF
type Inspector interface {
	PageCount(pdfPath string) (int, error)
}

// Rasterizer renders one zero-based PDF page to a PNG at outPath
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, pageIndex int, outPath string) error
}
