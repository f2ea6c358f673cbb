package perception

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptcraft/internal/logging"
)

// TracingClient wraps any LLMClient and logs every call.
type TracingClient struct {
	underlying LLMClient
	logger     *zap.Logger
}

// NewTracingClient creates a tracing wrapper around an existing client.
// A nil logger uses the api logging category.
func NewTracingClient(underlying LLMClient, logger *zap.Logger) *TracingClient {
	if logger == nil {
		logger = logging.Get(logging.CategoryAPI)
	}
	return &TracingClient{underlying: underlying, logger: logger}
}

// Generate implements LLMClient with tracing.
func (tc *TracingClient) Generate(ctx context.Context, model, content string) (string, error) {
	log := tc.logger.With(zap.String("request_id", uuid.NewString()), zap.String("model", model))

	start := time.Now()
	log.Debug("LLM call started", zap.Int("prompt_len", len(content)))

	response, err := tc.underlying.Generate(ctx, model, content)

	duration := time.Since(start)
	if err != nil {
		log.Warn("LLM call failed", zap.Duration("duration", duration), zap.Error(err))
		return response, err
	}
	log.Debug("LLM call completed", zap.Duration("duration", duration), zap.Int("response_len", len(response)))
	return response, nil
}
