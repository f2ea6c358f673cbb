package agent

import (
	"strings"

	"promptcraft/internal/technique"
)

// DefaultRole is the persona used when none is given or found in the task.
const DefaultRole = "helpful assistant"

// DefaultStructuredFormat is the format used by the structured technique
// when the request carries none.
const DefaultStructuredFormat = "Please structure your response clearly with headers and bullet points"

// DefaultTaskType is the meta-prompting task type when none is given.
const DefaultTaskType = "general"

// InlineSeparator splits inline parameters from the task text. The
// surrounding spaces keep identifiers such as std::vector intact.
const InlineSeparator = " :: "

const searchPrefix = "search "

// searchFormat is the response template for search summaries.
const searchFormat = `
Key Points (3-5 bullet points):
- Point 1
- Point 2
...

Summary (2-3 sentences):
[Your summary here]
`

// Request is one user input and the technique chosen for it.
type Request struct {
	Task      string
	Technique technique.Technique

	// Params override the defaults and any inline parameters.
	Params technique.Params
}

// Prompt is the final text sent to the model.
type Prompt struct {
	Text      string
	Technique technique.Technique
	Model     string

	// Search is set when the task was a "search ..." request; Query holds
	// the stripped query and Technique is ignored.
	Search bool
	Query  string
}

// Reply pairs a prompt with the model's answer.
type Reply struct {
	Prompt Prompt
	Text   string
}

// DemoResult is one technique's outcome in a demonstration.
type DemoResult struct {
	Technique technique.Technique
	Text      string
	Err       error
}

// SearchQuery reports whether task is a search request and returns the
// query with the prefix removed. The prefix match ignores case.
func SearchQuery(task string) (string, bool) {
	if len(task) < len(searchPrefix) || !strings.EqualFold(task[:len(searchPrefix)], searchPrefix) {
		return "", false
	}
	return strings.TrimSpace(task[len(searchPrefix):]), true
}

// ExtractRole returns up to three words following the first "as a" in the
// lowercased task, stopping at the next "as a". It falls back to
// DefaultRole when the phrase is absent or nothing follows it.
func ExtractRole(task string) string {
	lower := strings.ToLower(task)
	i := strings.Index(lower, "as a")
	if i < 0 {
		return DefaultRole
	}
	rest := lower[i+len("as a"):]
	if j := strings.Index(rest, "as a"); j >= 0 {
		rest = rest[:j]
	}
	words := strings.Fields(rest)
	if len(words) == 0 {
		return DefaultRole
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// ParseInline extracts "::" separated parameters for the techniques that
// take them:
//
//	context_enriched:      <context> :: <task>
//	meta_prompting:        <task type> :: <task>
//	instruction_breakdown: <task> :: c1; c2 :: s1; s2
//
// Other techniques, and text without a separator, come back unchanged.
func ParseInline(t technique.Technique, text string) (string, technique.Params) {
	var p technique.Params
	if !strings.Contains(text, InlineSeparator) {
		return text, p
	}

	switch t {
	case technique.ContextEnriched:
		ctx, task, _ := strings.Cut(text, InlineSeparator)
		p.Context = strings.TrimSpace(ctx)
		return strings.TrimSpace(task), p

	case technique.MetaPrompting:
		taskType, task, _ := strings.Cut(text, InlineSeparator)
		p.TaskType = strings.TrimSpace(taskType)
		return strings.TrimSpace(task), p

	case technique.InstructionBreakdown:
		parts := strings.SplitN(text, InlineSeparator, 3)
		p.Constraints = splitList(parts[1])
		if len(parts) == 3 {
			p.Steps = splitList(parts[2])
		}
		return strings.TrimSpace(parts[0]), p
	}
	return text, p
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// resolveParams fills every parameter the technique needs: explicit request
// values first, then inline values, then defaults.
func resolveParams(t technique.Technique, task string, explicit technique.Params) (string, technique.Params) {
	task, p := ParseInline(t, task)

	if len(explicit.Examples) > 0 {
		p.Examples = explicit.Examples
	}
	if explicit.Role != "" {
		p.Role = explicit.Role
	}
	if explicit.Context != "" {
		p.Context = explicit.Context
	}
	if explicit.Format != "" {
		p.Format = explicit.Format
	}
	if explicit.Motivation != "" {
		p.Motivation = explicit.Motivation
	}
	if explicit.Approaches > 0 {
		p.Approaches = explicit.Approaches
	}
	if len(explicit.Constraints) > 0 {
		p.Constraints = explicit.Constraints
	}
	if len(explicit.Steps) > 0 {
		p.Steps = explicit.Steps
	}
	if explicit.TaskType != "" {
		p.TaskType = explicit.TaskType
	}

	switch t {
	case technique.FewShot:
		if len(p.Examples) == 0 {
			p.Examples = technique.DefaultExamples()
		}
	case technique.RoleBased:
		if p.Role == "" {
			p.Role = ExtractRole(task)
		}
	case technique.Structured:
		if p.Format == "" {
			p.Format = DefaultStructuredFormat
		}
	case technique.SelfConsistency:
		if p.Approaches <= 0 {
			p.Approaches = technique.DefaultApproaches
		}
	case technique.Emotion:
		if p.Motivation == "" {
			p.Motivation = technique.DefaultMotivation
		}
	case technique.MetaPrompting:
		if p.TaskType == "" {
			p.TaskType = DefaultTaskType
		}
	}
	return task, p
}
