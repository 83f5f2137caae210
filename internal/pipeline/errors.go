package pipeline

import "fmt"

// InputMismatchError means the PDF does not belong to the presentation (stale or foreign export)
type InputMismatchError struct {
	Slides  int
	Pages   int
	PDFPath string
}

func (e *InputMismatchError) Error() string {
	return fmt.Sprintf("presentation has %d slides but %s has %d pages", e.Slides, e.PDFPath, e.Pages)
}
