package speech

import "fmt"

// SynthesisError reports a failure of the underlying speech service
type SynthesisError struct {
	Backend string
	Err     error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("speech synthesis (%s): %v", e.Backend, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

func synthesisErrorf(backend, format string, args ...interface{}) error {
	return &SynthesisError{Backend: backend, Err: fmt.Errorf(format, args...)}
}
