package speech

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
)

const defaultHTTPTimeout = 60 * time.Second

// New creates the Synthesizer named by cfg.Backend
func New(cfg config.SpeechConfig, log logger.Logger) (Synthesizer, error) {
	switch cfg.Backend {
	case config.BackendGTTS:
		return NewGTTS(cfg.GTTS, log), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAI, log), nil
	case config.BackendElevenLabs:
		return NewElevenLabs(cfg.ElevenLabs, log), nil
	default:
		return nil, fmt.Errorf("unknown speech backend %q", cfg.Backend)
	}
}

// Option customises an HTTP-based backend
type Option func(*httpOptions)

type httpOptions struct {
	client *http.Client
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *httpOptions) {
		o.client = c
	}
}

func buildOptions(opts []Option) httpOptions {
	o := httpOptions{client: &http.Client{Timeout: defaultHTTPTimeout}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
