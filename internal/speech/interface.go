// Package speech synthesizes narration audio (MP3) from text.
//
// Backends are selected by name: "gtts" talks to the Google Translate speech
// endpoint, "openai" and "elevenlabs" call the respective hosted APIs. Every
// backend reports failures as *SynthesisError so callers can apply the retry
// policy in SynthesizeWithRetry.
package speech

import "context"

// Synthesizer turns text into MP3 audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
