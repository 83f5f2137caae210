// Package presentation reads PPTX decks into slides and derives the text spoken for each slide.
package presentation

// Reader loads a presentation from disk
type Reader interface {
	Read(path string) (*Presentation, error)
}

// Presentation is the ordered list of slides of one deck
type Presentation struct {
	Slides []Slide
}

// Slide holds the text-bearing shapes of a slide, in authored order, plus its presenter notes
type Slide struct {
	Shapes []Shape
	Notes  string
}

// Shape is a top-level text-bearing shape
type Shape struct {
	Text    string
	IsTitle bool
}
