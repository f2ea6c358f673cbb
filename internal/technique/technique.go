// Package technique implements the prompt engineering techniques used by
// promptcraft. Every technique is a pure string transformation: it never
// fails, never touches the network, and produces the same prompt for the same
// inputs.
//
// Techniques form a closed set. Each member of the Technique enumeration maps
// to one entry in the registry table below, which carries its canonical
// selector name, shell command, aliases and help text.
package technique

import (
	"errors"
	"fmt"
	"strings"
)

// Technique identifies a prompt construction strategy.
type Technique int

const (
	// ZeroShot sends the task unchanged.
	ZeroShot Technique = iota

	// FewShot prefixes the task with input/output example pairs.
	FewShot

	// ChainOfThought appends a step-by-step reasoning scaffold.
	ChainOfThought

	// RoleBased assigns the model a persona before the task.
	RoleBased

	// Structured asks for the response in a literal format template.
	Structured

	// Emotion appends a motivational phrase.
	Emotion

	// SelfConsistency asks for several independent reasoning paths.
	SelfConsistency

	// InstructionBreakdown lists constraints and numbered steps under the task.
	InstructionBreakdown

	// ContextEnriched places background context ahead of the task.
	ContextEnriched

	// MetaPrompting asks the model to design a prompt for the task.
	MetaPrompting

	numTechniques
)

// ErrUnknownTechnique is returned by Parse for names outside the registry.
var ErrUnknownTechnique = errors.New("unknown technique")

type info struct {
	name        string
	command     string
	title       string
	description string
	aliases     []string
	render      func(task string, p Params) string
}

// registry holds one entry per Technique, indexed by the enum value.
var registry = [numTechniques]info{
	ZeroShot: {
		name:        "zero_shot",
		command:     "/zero",
		title:       "Zero-Shot",
		description: "Direct instruction (default)",
		aliases:     []string{"zero", "direct", "default"},
		render:      func(task string, _ Params) string { return ZeroShotPrompt(task) },
	},
	FewShot: {
		name:        "few_shot",
		command:     "/few",
		title:       "Few-Shot",
		description: "Few-shot with examples",
		aliases:     []string{"few", "examples"},
		render:      func(task string, p Params) string { return FewShotPrompt(task, p.Examples) },
	},
	ChainOfThought: {
		name:        "chain_of_thought",
		command:     "/cot",
		title:       "Chain of Thought",
		description: "Chain-of-thought reasoning",
		aliases:     []string{"cot", "step", "steps"},
		render:      func(task string, _ Params) string { return ChainOfThoughtPrompt(task) },
	},
	RoleBased: {
		name:        "role_based",
		command:     "/role",
		title:       "Role-Based",
		description: "Role-based prompting",
		aliases:     []string{"role", "persona"},
		render:      func(task string, p Params) string { return RoleBasedPrompt(p.Role, task, p.Context) },
	},
	Structured: {
		name:        "structured",
		command:     "/structured",
		title:       "Structured Output",
		description: "Structured output format",
		aliases:     []string{"structured_output", "format"},
		render:      func(task string, p Params) string { return StructuredPrompt(task, p.Format) },
	},
	Emotion: {
		name:        "emotion",
		command:     "/emotion",
		title:       "Emotion Prompt",
		description: "Emotion/motivation prompt",
		aliases:     []string{"emotion_prompt", "motivational"},
		render:      func(task string, p Params) string { return EmotionPrompt(task, p.Motivation) },
	},
	SelfConsistency: {
		name:        "self_consistency",
		command:     "/consistency",
		title:       "Self-Consistency",
		description: "Multiple reasoning paths, reconciled",
		aliases:     []string{"consistency", "multi_path"},
		render:      func(task string, p Params) string { return SelfConsistencyPrompt(task, p.Approaches) },
	},
	InstructionBreakdown: {
		name:        "instruction_breakdown",
		command:     "/breakdown",
		title:       "Instruction Breakdown",
		description: "Task with constraints and steps (task :: c1; c2 :: s1; s2)",
		aliases:     []string{"breakdown", "constrained"},
		render:      func(task string, p Params) string { return InstructionBreakdownPrompt(task, p.Constraints, p.Steps) },
	},
	ContextEnriched: {
		name:        "context_enriched",
		command:     "/context",
		title:       "Context Enriched",
		description: "Background context first (context :: task)",
		aliases:     []string{"context"},
		render:      func(task string, p Params) string { return ContextEnrichedPrompt(task, p.Context) },
	},
	MetaPrompting: {
		name:        "meta_prompting",
		command:     "/meta",
		title:       "Meta Prompting",
		description: "Design an optimal prompt (task type :: task)",
		aliases:     []string{"meta", "meta_prompt"},
		render:      func(task string, p Params) string { return MetaPrompt(p.TaskType, task) },
	},
}

// All returns every technique in menu order.
func All() []Technique {
	out := make([]Technique, 0, numTechniques)
	for t := ZeroShot; t < numTechniques; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a member of the enumeration.
func (t Technique) Valid() bool {
	return t >= ZeroShot && t < numTechniques
}

// String returns the canonical selector name (e.g. "chain_of_thought").
func (t Technique) String() string {
	if !t.Valid() {
		return fmt.Sprintf("technique(%d)", int(t))
	}
	return registry[t].name
}

// Command returns the shell command that selects t (e.g. "/cot").
func (t Technique) Command() string {
	if !t.Valid() {
		return ""
	}
	return registry[t].command
}

// Title returns the human readable name used in demos and menus.
func (t Technique) Title() string {
	if !t.Valid() {
		return t.String()
	}
	return registry[t].title
}

// Description returns the one-line help text.
func (t Technique) Description() string {
	if !t.Valid() {
		return ""
	}
	return registry[t].description
}

// MarshalText lets techniques round-trip through YAML and flags by name.
func (t Technique) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTechnique, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (t *Technique) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse resolves a canonical name, alias or shell command, ignoring case and
// surrounding whitespace. Hyphens are treated as underscores.
func Parse(name string) (Technique, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(key, "/") {
		if t, ok := FromCommand(key); ok {
			return t, nil
		}
		return ZeroShot, fmt.Errorf("%w: %s", ErrUnknownTechnique, name)
	}
	key = strings.ReplaceAll(key, "-", "_")
	for t := ZeroShot; t < numTechniques; t++ {
		if registry[t].name == key {
			return t, nil
		}
		for _, alias := range registry[t].aliases {
			if alias == key {
				return t, nil
			}
		}
	}
	return ZeroShot, fmt.Errorf("%w: %s", ErrUnknownTechnique, name)
}

// FromCommand maps a shell command such as "/cot" to its technique.
func FromCommand(cmd string) (Technique, bool) {
	cmd = strings.ToLower(strings.TrimSpace(cmd))
	for t := ZeroShot; t < numTechniques; t++ {
		if registry[t].command == cmd {
			return t, true
		}
	}
	return ZeroShot, false
}

// Params carries the optional per-technique inputs. Fields a technique does
// not use are ignored.
type Params struct {
	Examples    []Example
	Role        string
	Context     string
	Format      string
	Motivation  string
	Approaches  int
	Constraints []string
	Steps       []string
	TaskType    string
}

// Apply renders task with technique t. Invalid techniques render as ZeroShot.
// Apply performs no defaulting beyond what the individual templates do.
func Apply(t Technique, task string, p Params) string {
	return registry[t.OrDefault()].render(task, p)
}

// OrDefault returns t when valid and ZeroShot otherwise.
func (t Technique) OrDefault() Technique {
	if t.Valid() {
		return t
	}
	return ZeroShot
}
