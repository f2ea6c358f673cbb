package perception

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string

	// BaseURL overrides the API host, e.g. for a proxy. Empty uses the SDK default.
	BaseURL string

	Model   string
	Timeout time.Duration

	// Temperature is left to the model default when nil.
	Temperature     *float32
	MaxOutputTokens int32

	// HTTPClient replaces the SDK transport when set.
	HTTPClient *http.Client
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		Model:   "gemini-2.5-flash",
		Timeout: 120 * time.Second,
	}
}

// GeminiClient implements LLMClient for the Gemini API via the genai SDK.
//
// The SDK client is created on first use, so a missing API key surfaces as
// an error from Generate rather than at construction time.
type GeminiClient struct {
	config GeminiConfig

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a new Gemini client with default config.
func NewGeminiClient(apiKey string) *GeminiClient {
	return NewGeminiClientWithConfig(DefaultGeminiConfig(apiKey))
}

// NewGeminiClientWithConfig creates a new Gemini client with custom config.
func NewGeminiClientWithConfig(config GeminiConfig) *GeminiClient {
	config.Model = strings.TrimSpace(config.Model)
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}
	return &GeminiClient{config: config}
}

// GetModel returns the default model.
func (c *GeminiClient) GetModel() string {
	return c.config.Model
}

func (c *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is missing (set GEMINI_API_KEY)")
	}

	cc := &genai.ClientConfig{
		APIKey:     c.config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.config.HTTPClient,
	}
	if c.config.BaseURL != "" {
		cc.HTTPOptions.BaseURL = c.config.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	c.client = client
	return client, nil
}

// Generate sends content as a single user turn and returns the reply text.
func (c *GeminiClient) Generate(ctx context.Context, model, content string) (string, error) {
	if model == "" {
		model = c.config.Model
	}

	client, err := c.sdk(ctx)
	if err != nil {
		return "", err
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     c.config.Temperature,
		MaxOutputTokens: c.config.MaxOutputTokens,
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(content), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %w", model, err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Text(), nil
}
