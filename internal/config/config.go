package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"promptcraft/internal/technique"
)

// Config holds all promptcraft configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Completion endpoint
	LLM LLMConfig `yaml:"llm"`

	// Web search provider
	Search SearchConfig `yaml:"search"`

	// Dispatcher defaults
	Agent AgentConfig `yaml:"agent"`

	// Terminal output
	UX UXConfig `yaml:"ux"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "promptcraft",
		Version: "0.3.0",

		LLM: LLMConfig{
			Provider:        "gemini",
			Model:           DefaultModel,
			BaseURL:         "",
			Timeout:         "120s",
			MaxOutputTokens: 0,
		},

		Search: SearchConfig{
			Provider:   "serper",
			Endpoint:   DefaultSerperEndpoint,
			MaxResults: 3,
			Timeout:    "30s",
			RateLimit:  1,
			Burst:      1,
		},

		Agent: AgentConfig{
			DefaultTechnique: technique.ZeroShot,
			DemoTechniques: []technique.Technique{
				technique.ZeroShot,
				technique.ChainOfThought,
				technique.RoleBased,
				technique.Emotion,
			},
			DemoConcurrency: 1,
			RequestTimeout:  "2m",
		},

		UX: UXConfig{
			RenderMarkdown: true,
			Theme:          "auto",
			WordWrap:       80,
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			Dir:       filepath.Join(".promptcraft", "logs"),
			DebugMode: false,
		},
	}
}

// DefaultConfigPath returns the default path to .promptcraft/config.yaml.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".promptcraft", "config.yaml")
	}
	return filepath.Join(cwd, ".promptcraft", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API keys, first non-empty variable wins
	if key := firstEnv("GEMINI_API_KEY", "Gemini_api_key", "GOOGLE_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if key := firstEnv("SERPER_API_KEY", "Serper_api_key"); key != "" {
		c.Search.APIKey = key
	}

	if model := os.Getenv("PROMPTCRAFT_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if endpoint := os.Getenv("SERPER_ENDPOINT"); endpoint != "" {
		c.Search.Endpoint = endpoint
	}
	if os.Getenv("PROMPTCRAFT_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetSearchTimeout returns the search HTTP timeout as a duration.
func (c *Config) GetSearchTimeout() time.Duration {
	return parseDuration(c.Search.Timeout, 30*time.Second)
}

// GetRequestTimeout returns the per-input deadline used by the shell.
func (c *Config) GetRequestTimeout() time.Duration {
	return parseDuration(c.Agent.RequestTimeout, 2*time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ValidProviders lists all supported LLM providers.
var ValidProviders = []string{"gemini"}

// ValidSearchProviders lists all supported search providers.
var ValidSearchProviders = []string{"serper"}

// Validate validates the configuration. Credentials are not checked here;
// see MissingCredentials.
func (c *Config) Validate() error {
	if !contains(ValidProviders, c.LLM.Provider) {
		return fmt.Errorf("invalid LLM provider: %s (valid: %v)", c.LLM.Provider, ValidProviders)
	}
	if !contains(ValidSearchProviders, c.Search.Provider) {
		return fmt.Errorf("invalid search provider: %s (valid: %v)", c.Search.Provider, ValidSearchProviders)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	for field, value := range map[string]string{
		"llm.timeout":           c.LLM.Timeout,
		"search.timeout":        c.Search.Timeout,
		"agent.request_timeout": c.Agent.RequestTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", field, value, err)
		}
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.RateLimit < 0 {
		return fmt.Errorf("search.rate_limit must not be negative, got %v", c.Search.RateLimit)
	}
	if c.Agent.DemoConcurrency < 0 {
		return fmt.Errorf("agent.demo_concurrency must not be negative, got %d", c.Agent.DemoConcurrency)
	}
	return nil
}

// MissingCredentials names the API keys that are not configured.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.LLM.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Search.APIKey == "" {
		missing = append(missing, "SERPER_API_KEY")
	}
	return missing
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
