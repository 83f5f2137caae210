package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
	"github.com/nguyentantai21042004/pptx-video/internal/logger"
)

const (
	gttsBackend  = config.BackendGTTS
	gttsEndpoint = "/translate_tts"
	// the endpoint rejects requests longer than this many characters
	gttsMaxChars  = 100
	gttsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

type gttsSynthesizer struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewGTTS creates a Synthesizer for the Google Translate speech endpoint
func NewGTTS(cfg config.GTTSConfig, log logger.Logger, opts ...Option) Synthesizer {
	o := buildOptions(opts)
	return &gttsSynthesizer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  o.client,
		logger:  log,
	}
}

// Synthesize requests each chunk in turn and concatenates the MP3 streams
func (g *gttsSynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	chunks := splitText(text, gttsMaxChars)
	if len(chunks) == 0 {
		return nil, synthesisErrorf(gttsBackend, "no text to speak")
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		data, err := g.fetch(ctx, chunk, language, i, len(chunks))
		if err != nil {
			return nil, &SynthesisError{Backend: gttsBackend, Err: fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)}
		}
		audio.Write(data)
	}

	g.logger.Debug(ctx, "gtts synthesized %d chunk(s), %d bytes", len(chunks), audio.Len())
	return audio.Bytes(), nil
}

func (g *gttsSynthesizer) fetch(ctx context.Context, chunk, language string, idx, total int) ([]byte, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("q", chunk)
	query.Set("tl", language)
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))
	query.Set("client", "tw-ob")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+gttsEndpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", gttsUserAgent)
	req.Header.Set("Referer", g.baseURL+"/")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}
	return data, nil
}

// splitText breaks text into chunks of at most limit runes on whitespace.
// Words longer than limit are cut.
func splitText(text string, limit int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		if len(runes) == 0 {
			continue
		}

		need := len(runes)
		if currentLen > 0 {
			need++
		}
		if currentLen+need > limit {
			flush()
			need = len(runes)
		}
		if currentLen > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(string(runes))
		currentLen += need
	}
	flush()

	return chunks
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
