package agent

import (
	"go.uber.org/zap"

	"promptcraft/internal/technique"
)

// DefaultModel answers both plain and search requests unless overridden.
const DefaultModel = "gemini-2.5-flash"

// Option configures an Agent.
type Option func(*Agent)

// WithModel sets the model used for technique prompts.
func WithModel(model string) Option {
	return func(a *Agent) {
		if model != "" {
			a.model = model
		}
	}
}

// WithSearchModel sets the model used for search summaries. Empty means the
// regular model.
func WithSearchModel(model string) Option {
	return func(a *Agent) { a.searchModel = model }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDemoConcurrency bounds how many demo completions run at once.
func WithDemoConcurrency(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.demoConcurrency = n
		}
	}
}

// WithDemoTechniques sets the techniques compared by Demonstrate.
func WithDemoTechniques(ts ...technique.Technique) Option {
	return func(a *Agent) {
		if len(ts) > 0 {
			a.demoTechniques = append([]technique.Technique(nil), ts...)
		}
	}
}
