package agent

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Demonstrate runs query through every demo technique and returns the
// outcomes in technique order. A failing technique records its error and
// does not stop the others.
func (a *Agent) Demonstrate(ctx context.Context, query string) []DemoResult {
	results := make([]DemoResult, len(a.demoTechniques))

	var g errgroup.Group
	g.SetLimit(a.demoConcurrency)
	for i, t := range a.demoTechniques {
		g.Go(func() error {
			reply, err := a.Reply(ctx, Request{Task: query, Technique: t})
			results[i] = DemoResult{Technique: t, Text: reply.Text, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	a.logger.Debug("demo finished",
		zap.Int("techniques", len(results)),
		zap.Int("failed", failed))
	return results
}
