package perception

import (
	"fmt"
	"strings"

	"promptcraft/internal/config"
)

// NewClient builds the completion client selected by cfg.Provider.
func NewClient(cfg config.LLMConfig) (LLMClient, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gemini", "":
		gc := DefaultGeminiConfig(cfg.APIKey)
		if cfg.Model != "" {
			gc.Model = cfg.Model
		}
		gc.BaseURL = cfg.BaseURL
		gc.Temperature = cfg.Temperature
		gc.MaxOutputTokens = cfg.MaxOutputTokens
		gc.Timeout = cfg.GetTimeout()
		return NewGeminiClientWithConfig(gc), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
}
