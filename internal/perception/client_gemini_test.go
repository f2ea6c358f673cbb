package perception

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiRequest struct {
	path   string
	apiKey string
	body   map[string]any
}

func newGeminiServer(t *testing.T, status int, reply string) (*httptest.Server, chan geminiRequest) {
	t.Helper()
	seen := make(chan geminiRequest, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		select {
		case seen <- geminiRequest{path: r.URL.Path, apiKey: r.Header.Get("x-goog-api-key"), body: body}:
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func newTestGemini(srv *httptest.Server, model string) *GeminiClient {
	return NewGeminiClientWithConfig(GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL + "/",
		Model:      model,
		HTTPClient: srv.Client(),
	})
}

const helloReply = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello"},{"text":" there"}]},"finishReason":"STOP"}]}`

func TestGeminiClient_Generate(t *testing.T) {
	srv, seen := newGeminiServer(t, http.StatusOK, helloReply)
	client := newTestGemini(srv, "gemini-2.5-flash")

	got, err := client.Generate(context.Background(), "", "What is 15% of 240?")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", got)

	req := <-seen
	assert.True(t, strings.HasSuffix(req.path, "gemini-2.5-flash:generateContent"), req.path)
	assert.Equal(t, "test-key", req.apiKey)
	assert.Contains(t, req.body, "contents")
}

func TestGeminiClient_ModelOverride(t *testing.T) {
	srv, seen := newGeminiServer(t, http.StatusOK, helloReply)
	client := newTestGemini(srv, "gemini-2.5-flash")

	_, err := client.Generate(context.Background(), "gemini-2.5-pro", "hi")
	require.NoError(t, err)

	req := <-seen
	assert.True(t, strings.HasSuffix(req.path, "gemini-2.5-pro:generateContent"), req.path)
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`)
	client := newTestGemini(srv, "gemini-2.5-flash")

	_, err := client.Generate(context.Background(), "", "hi")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiClient_ServiceError(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`)
	client := newTestGemini(srv, "gemini-2.5-flash")

	_, err := client.Generate(context.Background(), "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generate")
}

func TestGeminiClient_MissingKey(t *testing.T) {
	client := NewGeminiClient("")

	_, err := client.Generate(context.Background(), "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is missing")
}

func TestNewGeminiClientWithConfig_DefaultModel(t *testing.T) {
	client := NewGeminiClientWithConfig(GeminiConfig{APIKey: "k", Model: "  "})
	assert.Equal(t, "gemini-2.5-flash", client.GetModel())
}
