package document

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func (i *implInspector) PageCount(pdfPath string) (int, error) {
	n, err := api.PageCountFile(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("count pdf pages: %w", err)
	}
	return n, nil
}
