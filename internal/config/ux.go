package config

import "promptcraft/internal/technique"

// AgentConfig holds dispatcher defaults.
type AgentConfig struct {
	// DefaultTechnique is active when the shell starts.
	DefaultTechnique technique.Technique `yaml:"default_technique"`

	// DemoTechniques are compared by the demo command, in order.
	DemoTechniques []technique.Technique `yaml:"demo_techniques"`

	// DemoConcurrency bounds parallel completions during a demo.
	// 1 runs them one after another.
	DemoConcurrency int `yaml:"demo_concurrency"`

	// RequestTimeout is the deadline for one shell input (search + completion).
	RequestTimeout string `yaml:"request_timeout"`
}

// UXConfig holds terminal output configuration.
type UXConfig struct {
	// RenderMarkdown renders replies through glamour.
	RenderMarkdown bool `yaml:"render_markdown"`

	// Theme selects the glamour style: auto, dark, light, notty.
	Theme string `yaml:"theme"`

	// WordWrap is the rendering width in columns.
	WordWrap int `yaml:"word_wrap"`

	// ShowPrompt echoes the final prompt before each reply.
	ShowPrompt bool `yaml:"show_prompt"`
}
