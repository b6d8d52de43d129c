package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wellnest/internal/llm"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Session struct {
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Providers struct {
		OpenAI llm.OpenAIConfig `yaml:"openai"`
		Gemini llm.GeminiConfig `yaml:"gemini"`
	} `yaml:"providers"`
}

// Load reads YAML config from path. API keys may be supplied via config
// or through the standard env vars (OPENAI_API_KEY, GEMINI_API_KEY).
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	cfg.Providers.OpenAI.FillFromEnv()
	cfg.Providers.Gemini.FillFromEnv()
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
