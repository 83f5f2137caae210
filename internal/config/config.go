package config

import (
	"fmt"
	"strings"
)

// Speech backends
const (
	BackendGTTS       = "gtts"
	BackendOpenAI     = "openai"
	BackendElevenLabs = "elevenlabs"
)

// LanguageAuto asks the synthesizer to detect the language of every slide
const LanguageAuto = "auto"

type Config struct {
	Speech   SpeechConfig   `yaml:"speech"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Document DocumentConfig `yaml:"document"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
	Script   ScriptConfig   `yaml:"script"`
}

type SpeechConfig struct {
	Backend    string           `yaml:"backend"`
	Language   string           `yaml:"language"`
	GTTS       GTTSConfig       `yaml:"gtts"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	ElevenLabs ElevenLabsConfig `yaml:"elevenlabs"`
}

type GTTSConfig struct {
	BaseURL string `yaml:"base_url"`
	TLD     string `yaml:"tld"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"-"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Voice   string `yaml:"voice"`
}

type ElevenLabsConfig struct {
	APIKey          string  `yaml:"-"`
	APIURL          string  `yaml:"api_url"`
	VoiceID         string  `yaml:"voice_id"`
	ModelID         string  `yaml:"model_id"`
	Stability       float64 `yaml:"stability"`
	SimilarityBoost float64 `yaml:"similarity_boost"`
}

type FFmpegConfig struct {
	Binary       string `yaml:"binary"`
	ProbeBinary  string `yaml:"probe_binary"`
	VideoCodec   string `yaml:"video_codec"`
	Tune         string `yaml:"tune"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
	PixelFormat  string `yaml:"pixel_format"`
}

type DocumentConfig struct {
	SofficePath  string `yaml:"soffice_path"`
	PdftoppmPath string `yaml:"pdftoppm_path"`
	DPI          int    `yaml:"dpi"`
}

type PathsConfig struct {
	WorkDir string `yaml:"work_dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ScriptConfig struct {
	DocxPath string `yaml:"docx_path"`
}

// Validate rejects unusable settings and fills defaults for everything left empty
func (c *Config) Validate() error {
	if c.Speech.Backend == "" {
		c.Speech.Backend = BackendGTTS
	}
	c.Speech.Backend = strings.ToLower(c.Speech.Backend)
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}

	switch c.Speech.Backend {
	case BackendGTTS:
		if c.Speech.GTTS.TLD == "" {
			c.Speech.GTTS.TLD = "com"
		}
		if c.Speech.GTTS.BaseURL == "" {
			c.Speech.GTTS.BaseURL = fmt.Sprintf("https://translate.google.%s", c.Speech.GTTS.TLD)
		}
	case BackendOpenAI:
		if c.Speech.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for speech.backend=openai")
		}
		if c.Speech.OpenAI.Model == "" {
			c.Speech.OpenAI.Model = "tts-1"
		}
		if c.Speech.OpenAI.Voice == "" {
			c.Speech.OpenAI.Voice = "alloy"
		}
	case BackendElevenLabs:
		if c.Speech.ElevenLabs.APIKey == "" {
			return fmt.Errorf("ELEVEN_LABS_API_KEY is required for speech.backend=elevenlabs")
		}
		if c.Speech.ElevenLabs.VoiceID == "" {
			return fmt.Errorf("speech.elevenlabs.voice_id is required")
		}
		if c.Speech.ElevenLabs.APIURL == "" {
			c.Speech.ElevenLabs.APIURL = "https://api.elevenlabs.io/v1/text-to-speech"
		}
		if c.Speech.ElevenLabs.ModelID == "" {
			c.Speech.ElevenLabs.ModelID = "eleven_multilingual_v2"
		}
		if c.Speech.ElevenLabs.Stability == 0 {
			c.Speech.ElevenLabs.Stability = 0.5
		}
		if c.Speech.ElevenLabs.SimilarityBoost == 0 {
			c.Speech.ElevenLabs.SimilarityBoost = 0.75
		}
	default:
		return fmt.Errorf("speech.backend %q is not supported", c.Speech.Backend)
	}

	if c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}
	if c.Document.DPI < 0 {
		return fmt.Errorf("document.dpi must be positive")
	}

	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}
	if c.FFmpeg.VideoCodec == "" {
		c.FFmpeg.VideoCodec = "libx264"
	}
	if c.FFmpeg.Tune == "" {
		c.FFmpeg.Tune = "stillimage"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "192k"
	}
	if c.FFmpeg.PixelFormat == "" {
		c.FFmpeg.PixelFormat = "yuv420p"
	}
	if c.Document.SofficePath == "" {
		c.Document.SofficePath = "soffice"
	}
	if c.Document.PdftoppmPath == "" {
		c.Document.PdftoppmPath = "pdftoppm"
	}
	if c.Document.DPI == 0 {
		c.Document.DPI = 72
	}
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = "tmp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	return nil
}
