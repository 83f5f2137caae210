package media

import "fmt"

// EncodingError reports a non-zero exit of ffmpeg while rendering one clip
type EncodingError struct {
	Output string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode clip %s: %v", e.Output, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// ConcatenationError reports a non-zero exit of ffmpeg while joining clips
type ConcatenationError struct {
	Output string
	Err    error
}

func (e *ConcatenationError) Error() string {
	return fmt.Sprintf("concatenate clips into %s: %v", e.Output, e.Err)
}

func (e *ConcatenationError) Unwrap() error {
	return e.Err
}
