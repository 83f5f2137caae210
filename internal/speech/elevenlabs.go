package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
)

const elevenLabsBackend = config.BackendElevenLabs

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	cfg    config.ElevenLabsConfig
	client *http.Client
	logger logger.Logger
}

// NewElevenLabs creates a Synthesizer for the ElevenLabs text-to-speech REST API.
// The multilingual models pick the language from the text.
func NewElevenLabs(cfg config.ElevenLabsConfig, log logger.Logger, opts ...Option) Synthesizer {
	o := buildOptions(opts)
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &elevenLabsSynthesizer{
		cfg:    cfg,
		client: o.client,
		logger: log,
	}
}

func (e *elevenLabsSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if text == "" {
		return nil, synthesisErrorf(elevenLabsBackend, "no text to speak")
	}

	payload, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: e.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       e.cfg.Stability,
			SimilarityBoost: e.cfg.SimilarityBoost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal elevenlabs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.APIURL+"/"+e.cfg.VoiceID, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create elevenlabs request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", e.cfg.APIKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, synthesisErrorf(elevenLabsBackend, "request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, synthesisErrorf(elevenLabsBackend, "read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, synthesisErrorf(elevenLabsBackend, "status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	if len(data) == 0 {
		return nil, synthesisErrorf(elevenLabsBackend, "empty audio response")
	}

	e.logger.Debug(ctx, "elevenlabs synthesized %d bytes with voice %s", len(data), e.cfg.VoiceID)
	return data, nil
}
