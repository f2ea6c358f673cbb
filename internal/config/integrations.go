package config

// DefaultSerperEndpoint is the Serper Google search endpoint.
const DefaultSerperEndpoint = "https://google.serper.dev/search"

// SearchConfig configures the web search integration.
type SearchConfig struct {
	Provider string `yaml:"provider"` // serper
	APIKey   string `yaml:"api_key,omitempty"`
	Endpoint string `yaml:"endpoint"`

	// MaxResults caps how many organic results are summarized.
	MaxResults int `yaml:"max_results"`

	Timeout string `yaml:"timeout"` // e.g., "30s"

	// RateLimit is the client-side request budget in requests per second.
	// Zero disables pacing.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}
