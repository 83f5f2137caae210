package speech

import (
	"context"
	"errors"
	"strings"
)

// NormalizeWhitespace collapses every run of whitespace to a single space and trims the ends
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// SynthesizeWithRetry calls s once and, if that fails with a *SynthesisError,
// retries exactly once with the whitespace-normalised form of the same text.
// retried reports whether the second attempt was made.
func SynthesizeWithRetry(ctx context.Context, s Synthesizer, text, language string) (audio []byte, retried bool, err error) {
	audio, err = s.Synthesize(ctx, text, language)
	if err == nil {
		return audio, false, nil
	}

	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) || ctx.Err() != nil {
		return nil, false, err
	}

	audio, err = s.Synthesize(ctx, NormalizeWhitespace(text), language)
	if err != nil {
		return nil, true, err
	}
	return audio, true, nil
}
