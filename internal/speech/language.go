package speech

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/nguyentantai21042004/pptx-video/internal/config"
)

const fallbackLanguage = "en"

// LanguageResolver picks the speech language for a piece of text
type LanguageResolver interface {
	Resolve(text string) string
}

type fixedLanguage string

func (f fixedLanguage) Resolve(string) string {
	return string(f)
}

type detectedLanguage struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLanguageResolver returns a resolver for the configured language.
// "auto" detects per text and falls back to English when detection is not confident.
func NewLanguageResolver(language string) LanguageResolver {
	if strings.ToLower(language) != config.LanguageAuto {
		return fixedLanguage(language)
	}
	return &detectedLanguage{}
}

func (d *detectedLanguage) Resolve(text string) string {
	// the full model set is large, build it only when first needed
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return fallbackLanguage
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
