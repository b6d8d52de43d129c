package llm

import "os"

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // default "gpt-4o-mini"
	BaseURL string `yaml:"base_url"` // optional override for compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // default "gemini-2.0-flash"
}

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.0-flash"
)

// FillFromEnv applies env-var fallbacks and model defaults.
func (c *OpenAIConfig) FillFromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("OPENAI_MODEL")
	}
	if c.Model == "" {
		c.Model = defaultOpenAIModel
	}
}

// FillFromEnv applies env-var fallbacks and model defaults.
func (c *GeminiConfig) FillFromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = os.Getenv("GEMINI_MODEL")
	}
	if c.Model == "" {
		c.Model = defaultGeminiModel
	}
}
