// Package agent dispatches user requests: it routes "search ..." input
// through the search provider, applies the selected prompting technique to
// everything else, and forwards the final prompt to the completion client.
// An Agent keeps no state between calls.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"promptcraft/internal/logging"
	"promptcraft/internal/perception"
	"promptcraft/internal/technique"
)

// Searcher condenses web results for a query into plain text. It never
// fails; problems are reported inside the returned text.
type Searcher interface {
	Summarize(ctx context.Context, query string) string
}

// ErrNoSearcher is returned for search requests when no provider is set.
var ErrNoSearcher = errors.New("no search provider configured")

// DefaultDemoTechniques are compared by Demonstrate unless overridden.
var DefaultDemoTechniques = []technique.Technique{
	technique.ZeroShot,
	technique.ChainOfThought,
	technique.RoleBased,
	technique.Emotion,
}

// Agent builds prompts and obtains replies.
type Agent struct {
	llm             perception.LLMClient
	searcher        Searcher
	model           string
	searchModel     string
	logger          *zap.Logger
	demoConcurrency int
	demoTechniques  []technique.Technique
}

// New constructs an Agent around a completion client and a search provider.
func New(llm perception.LLMClient, searcher Searcher, opts ...Option) *Agent {
	a := &Agent{
		llm:             llm,
		searcher:        searcher,
		model:           DefaultModel,
		logger:          logging.Get(logging.CategoryAgent),
		demoConcurrency: 1,
		demoTechniques:  DefaultDemoTechniques,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildPrompt produces the final prompt for req without calling the model.
// Search requests do call the search provider.
func (a *Agent) BuildPrompt(ctx context.Context, req Request) (Prompt, error) {
	if query, ok := SearchQuery(req.Task); ok {
		if a.searcher == nil {
			return Prompt{}, ErrNoSearcher
		}
		summary := a.searcher.Summarize(ctx, query)
		text := technique.StructuredPrompt("Summarize these search results about: "+query, searchFormat) +
			"\n\nSearch Results:\n" + summary

		model := a.searchModel
		if model == "" {
			model = a.model
		}
		a.logger.Debug("search request",
			zap.String("query", query),
			zap.Int("summary_len", len(summary)))
		return Prompt{Text: text, Technique: technique.Structured, Model: model, Search: true, Query: query}, nil
	}

	t := req.Technique.OrDefault()
	task, params := resolveParams(t, req.Task, req.Params)
	text := technique.Apply(t, task, params)

	a.logger.Debug("prompt built",
		zap.Stringer("technique", t),
		zap.Int("task_len", len(req.Task)),
		zap.Int("prompt_len", len(text)))
	return Prompt{Text: text, Technique: t, Model: a.model}, nil
}

// Reply builds the prompt for req and sends it to the completion client.
// Completion errors are returned unchanged apart from wrapping.
func (a *Agent) Reply(ctx context.Context, req Request) (Reply, error) {
	prompt, err := a.BuildPrompt(ctx, req)
	if err != nil {
		return Reply{}, err
	}

	timer := logging.StartTimer(logging.CategoryAgent, "reply")
	text, err := a.llm.Generate(ctx, prompt.Model, prompt.Text)
	timer.StopWithThreshold(30 * time.Second)
	if err != nil {
		return Reply{Prompt: prompt}, fmt.Errorf("generate with %s: %w", prompt.Technique, err)
	}
	return Reply{Prompt: prompt, Text: text}, nil
}
