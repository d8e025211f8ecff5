package config

// AIConfig holds the chat-completion settings for AI narratives
type AIConfig struct {
	APIKey      string  `json:"-" yaml:"-"` // Never serialize
	BaseURL     string  `json:"baseUrl" yaml:"baseUrl"`
	Model       string  `json:"model" yaml:"model"`
	System      string  `json:"system" yaml:"system"` // System message sent with every prompt
	MaxTokens   int     `json:"maxTokens" yaml:"maxTokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	TimeoutMS   int     `json:"timeoutMs" yaml:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() AIConfig {
	return AIConfig{
		BaseURL:     "https://api.openai.com/v1/",
		Model:       "gpt-4o",
		System:      "You are an expert financial advisor.",
		MaxTokens:   800,
		Temperature: 0.7,
		TimeoutMS:   30000,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func (c *AIConfig) applyEnv() {
	c.APIKey = getEnv("OPENAI_API_KEY", c.APIKey)
	c.BaseURL = getEnv("OPENAI_BASE_URL", c.BaseURL)
	c.Model = getEnv("OPENAI_MODEL", c.Model)
	c.MaxTokens = getEnvInt("OPENAI_MAX_TOKENS", c.MaxTokens)
	c.TimeoutMS = getEnvInt("OPENAI_TIMEOUT_MS", c.TimeoutMS)
}
