package presentation

import (
	"errors"
	"fmt"
)

// ErrEmptySlide is returned when a slide has neither notes nor any shape text
var ErrEmptySlide = errors.New("slide has no notes and no text")

// EmptySlideError identifies the slide that carries nothing to speak
type EmptySlideError struct {
	Index int
}

func (e *EmptySlideError) Error() string {
	return fmt.Sprintf("slide %d: %v", e.Index, ErrEmptySlide)
}

func (e *EmptySlideError) Unwrap() error {
	return ErrEmptySlide
}
