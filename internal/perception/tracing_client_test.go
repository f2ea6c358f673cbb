package perception

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTracingClient_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := LLMClientFunc(func(_ context.Context, model, content string) (string, error) {
		return "echo: " + content, nil
	})
	tc := NewTracingClient(inner, zap.New(core))

	got, err := tc.Generate(context.Background(), "gemini-2.5-flash", "ping")
	require.NoError(t, err)
	assert.Equal(t, "echo: ping", got)

	started := logs.FilterMessage("LLM call started").All()
	require.Len(t, started, 1)
	fields := started[0].ContextMap()
	assert.Equal(t, "gemini-2.5-flash", fields["model"])
	assert.Equal(t, int64(4), fields["prompt_len"])
	assert.NotEmpty(t, fields["request_id"])

	completed := logs.FilterMessage("LLM call completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, fields["request_id"], completed[0].ContextMap()["request_id"])
	assert.Equal(t, int64(len("echo: ping")), completed[0].ContextMap()["response_len"])
}

func TestTracingClient_Error(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	wantErr := errors.New("quota exceeded")
	inner := LLMClientFunc(func(context.Context, string, string) (string, error) {
		return "", wantErr
	})
	tc := NewTracingClient(inner, zap.New(core))

	_, err := tc.Generate(context.Background(), "m", "x")
	assert.ErrorIs(t, err, wantErr)

	failed := logs.FilterMessage("LLM call failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}

func TestTracingClient_UniqueRequestIDs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tc := NewTracingClient(LLMClientFunc(func(context.Context, string, string) (string, error) {
		return "", nil
	}), zap.New(core))

	for i := 0; i < 3; i++ {
		_, _ = tc.Generate(context.Background(), "", "")
	}

	ids := map[any]bool{}
	for _, e := range logs.FilterMessage("LLM call started").All() {
		ids[e.ContextMap()["request_id"]] = true
	}
	assert.Len(t, ids, 3)
}

func TestTracingClient_NilLoggerIsSafe(t *testing.T) {
	tc := NewTracingClient(LLMClientFunc(func(context.Context, string, string) (string, error) {
		return "ok", nil
	}), nil)

	got, err := tc.Generate(context.Background(), "", "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
