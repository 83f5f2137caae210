package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the location of the YAML config file
	EnvConfigPath = "PPTX2VIDEO_CONFIG"
	// DefaultConfigPath is read when present, otherwise built-in defaults apply
	DefaultConfigPath = "pptx2video.yaml"

	envOpenAIKey     = "OPENAI_API_KEY"
	envElevenLabsKey = "ELEVEN_LABS_API_KEY"
)

// Load reads the YAML file at path, applies secrets from the environment and validates
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finish(&cfg)
}

// Resolve loads .env (if any), then the config file named by PPTX2VIDEO_CONFIG,
// then ./pptx2video.yaml. With neither present it returns the defaults.
func Resolve() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return Load(DefaultConfigPath)
	}

	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	cfg.Speech.OpenAI.APIKey = os.Getenv(envOpenAIKey)
	cfg.Speech.ElevenLabs.APIKey = os.Getenv(envElevenLabsKey)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
