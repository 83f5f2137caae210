package presentation

type implReader struct{}

// NewReader creates a Reader for Office Open XML (.pptx) files
func NewReader() Reader {
	return &implReader{}
}
