package main

import (
	"fmt"
	"io"

	"promptcraft/internal/agent"
	"promptcraft/internal/config"
	"promptcraft/internal/logging"
	"promptcraft/internal/perception"
	"promptcraft/internal/search"
)

// Client constructors, replaced in tests.
var (
	newLLMClient = perception.NewClient
	newSearcher  = func(c *config.Config) agent.Searcher {
		return search.NewSerper(search.Config{
			APIKey:     c.Search.APIKey,
			Endpoint:   c.Search.Endpoint,
			MaxResults: c.Search.MaxResults,
			Timeout:    c.GetSearchTimeout(),
			RateLimit:  c.Search.RateLimit,
			Burst:      c.Search.Burst,
		}, search.WithLogger(logging.Get(logging.CategorySearch)))
	}
)

// buildAgent wires the completion client and search provider from c.
// Missing credentials are reported on warn but do not stop startup.
func buildAgent(c *config.Config, warn io.Writer) (*agent.Agent, error) {
	if warn != nil {
		for _, key := range c.MissingCredentials() {
			fmt.Fprintf(warn, "Warning: %s is not set; requests that need it will fail.\n", key)
		}
	}

	llm, err := newLLMClient(c.LLM)
	if err != nil {
		return nil, err
	}

	return agent.New(
		perception.NewTracingClient(llm, nil),
		newSearcher(c),
		agent.WithModel(c.LLM.Model),
		agent.WithSearchModel(c.LLM.EffectiveSearchModel()),
		agent.WithDemoConcurrency(c.Agent.DemoConcurrency),
		agent.WithDemoTechniques(c.Agent.DemoTechniques...),
		agent.WithLogger(logging.Get(logging.CategoryAgent)),
	), nil
}
