package speech

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
)

const openAIBackend = config.BackendOpenAI

type openAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
	logger logger.Logger
}

// NewOpenAI creates a Synthesizer for the OpenAI speech API.
// The API infers the language from the text, so the language argument is unused.
func NewOpenAI(cfg config.OpenAIConfig, log logger.Logger, opts ...Option) Synthesizer {
	o := buildOptions(opts)

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = o.client

	return &openAISynthesizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		voice:  cfg.Voice,
		logger: log,
	}
}

func (s *openAISynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if text == "" {
		return nil, synthesisErrorf(openAIBackend, "no text to speak")
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, &SynthesisError{Backend: openAIBackend, Err: err}
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, synthesisErrorf(openAIBackend, "read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, synthesisErrorf(openAIBackend, "empty audio response")
	}

	s.logger.Debug(ctx, "openai synthesized %d bytes with voice %s", len(data), s.voice)
	return data, nil
}
