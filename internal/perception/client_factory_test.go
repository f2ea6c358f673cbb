package perception

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptcraft/internal/config"
)

func TestNewClient(t *testing.T) {
	temp := float32(0.2)
	client, err := NewClient(config.LLMConfig{
		Provider:        "gemini",
		APIKey:          "key",
		Model:           "gemini-2.5-pro",
		BaseURL:         "http://localhost:1",
		Timeout:         "45s",
		Temperature:     &temp,
		MaxOutputTokens: 512,
	})
	require.NoError(t, err)

	gc, ok := client.(*GeminiClient)
	require.True(t, ok, "expected *GeminiClient, got %T", client)
	assert.Equal(t, "gemini-2.5-pro", gc.GetModel())
	assert.Equal(t, "http://localhost:1", gc.config.BaseURL)
	assert.Equal(t, 45*time.Second, gc.config.Timeout)
	assert.Equal(t, &temp, gc.config.Temperature)
	assert.Equal(t, int32(512), gc.config.MaxOutputTokens)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(config.LLMConfig{Provider: "Gemini"})
	require.NoError(t, err)

	gc := client.(*GeminiClient)
	assert.Equal(t, "gemini-2.5-flash", gc.GetModel())
	assert.Equal(t, 120*time.Second, gc.config.Timeout)
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(config.LLMConfig{Provider: "openai"})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
	assert.ErrorContains(t, err, "openai")
}
