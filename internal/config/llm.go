package config

import "time"

// DefaultModel is the Gemini model used for both plain and search replies.
const DefaultModel = "gemini-2.5-flash"

// LLMConfig configures the completion endpoint.
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`

	// SearchModel answers "search ..." requests. Empty means Model.
	SearchModel string `yaml:"search_model,omitempty"`

	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout"`

	// Temperature is left to the provider default when nil.
	Temperature     *float32 `yaml:"temperature,omitempty"`
	MaxOutputTokens int32    `yaml:"max_output_tokens,omitempty"`
}

// EffectiveSearchModel returns the model used for search summaries.
func (c LLMConfig) EffectiveSearchModel() string {
	if c.SearchModel != "" {
		return c.SearchModel
	}
	return c.Model
}

// GetTimeout returns the completion timeout as a duration.
func (c LLMConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 120*time.Second)
}
