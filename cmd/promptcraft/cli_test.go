package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptcraft/internal/agent"
	"promptcraft/internal/config"
	"promptcraft/internal/perception"
	"promptcraft/internal/technique"
)

type cliEnv struct {
	dir      string
	config   string
	llm      *scriptedLLM
	searcher *stubSearcher
}

// newCLIEnv isolates the global command state and stubs both clients.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	for _, name := range []string{
		"GEMINI_API_KEY", "Gemini_api_key", "GOOGLE_API_KEY",
		"SERPER_API_KEY", "Serper_api_key",
		"PROMPTCRAFT_MODEL", "SERPER_ENDPOINT", "PROMPTCRAFT_DEBUG",
	} {
		t.Setenv(name, "")
	}

	env := &cliEnv{
		dir:      t.TempDir(),
		llm:      &scriptedLLM{reply: "stub reply"},
		searcher: &stubSearcher{},
	}
	env.config = filepath.Join(env.dir, "config.yaml")

	c := config.DefaultConfig()
	c.UX.RenderMarkdown = false
	require.NoError(t, c.Save(env.config))

	origLLM, origSearch := newLLMClient, newSearcher
	newLLMClient = func(config.LLMConfig) (perception.LLMClient, error) { return env.llm, nil }
	newSearcher = func(*config.Config) agent.Searcher { return env.searcher }
	t.Cleanup(func() {
		newLLMClient, newSearcher = origLLM, origSearch
	})
	return env
}

func (e *cliEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	verbose, configPath, envFile, timeout, modelName = false, "", "", 0, ""
	askTechnique, promptTechnique, configForce = "", "", false

	full := append([]string{"--config", e.config, "--env-file", filepath.Join(e.dir, ".env")}, args...)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_Techniques(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "", "techniques")
	require.NoError(t, err)
	for _, tech := range technique.All() {
		assert.Contains(t, out, tech.Command())
		assert.Contains(t, out, tech.String())
	}
	assert.Contains(t, out, "Direct instruction (default) *")
}

func TestCLI_Prompt(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "", "prompt", "-t", "cot", "What", "is", "15%", "of", "240?")
	require.NoError(t, err)
	assert.Equal(t, technique.ChainOfThoughtPrompt("What is 15% of 240?")+"\n", out)
	assert.Empty(t, env.llm.prompts())
}

func TestCLI_PromptUnknownTechnique(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "", "prompt", "-t", "telepathy", "hi")
	assert.ErrorIs(t, err, technique.ErrUnknownTechnique)
}

func TestCLI_Ask(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "", "ask", "-t", "/role", "Explain DNS as a pirate")
	require.NoError(t, err)
	assert.Contains(t, out, "stub reply")
	assert.Contains(t, out, "Warning: GEMINI_API_KEY is not set")
	assert.Equal(t, []string{"You are a pirate.\n\nExplain DNS as a pirate"}, env.llm.prompts())
	assert.Equal(t, "gemini-2.5-flash", env.llm.calls[0].model)
}

func TestCLI_AskModelFlagAndKeys(t *testing.T) {
	env := newCLIEnv(t)
	t.Setenv("GEMINI_API_KEY", "k1")
	t.Setenv("SERPER_API_KEY", "k2")

	out, err := env.run(t, "", "--model", "gemini-2.5-pro", "ask", "hi")
	require.NoError(t, err)
	assert.NotContains(t, out, "Warning:")
	assert.Equal(t, "gemini-2.5-pro", env.llm.calls[0].model)
	assert.Equal(t, "hi", env.llm.calls[0].content)
}

func TestCLI_AskCompletionError(t *testing.T) {
	env := newCLIEnv(t)
	env.llm.err = assert.AnError

	_, err := env.run(t, "", "ask", "hi")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCLI_Search(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "", "search", "golang", "generics")
	require.NoError(t, err)
	assert.Contains(t, out, "stub reply")
	assert.Equal(t, []string{"golang generics"}, env.searcher.queries)
	assert.Contains(t, env.llm.prompts()[0], "Search Results:\n- Result:\n  snippet")
}

func TestCLI_Demo(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "", "demo", "What", "is", "photosynthesis?")
	require.NoError(t, err)
	assert.Contains(t, out, "Testing Query: What is photosynthesis?")
	assert.Equal(t, 4, strings.Count(out, "Response: stub reply"))
	assert.Len(t, env.llm.prompts(), 4)
}

func TestCLI_ConfigInit(t *testing.T) {
	env := newCLIEnv(t)
	env.config = filepath.Join(env.dir, "fresh", "config.yaml")

	out, err := env.run(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+env.config)
	_, statErr := os.Stat(env.config)
	require.NoError(t, statErr)

	_, err = env.run(t, "", "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = env.run(t, "", "config", "init", "--force")
	assert.NoError(t, err)
}

func TestCLI_ConfigShowRedactsKeys(t *testing.T) {
	env := newCLIEnv(t)
	t.Setenv("GEMINI_API_KEY", "super-secret")

	out, err := env.run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "***")
	assert.NotContains(t, out, "super-secret")
}

func TestCLI_DotEnvFile(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.Unsetenv("SERPER_API_KEY"))
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".env"), []byte("SERPER_API_KEY=from-dotenv\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("SERPER_API_KEY") })

	out, err := env.run(t, "", "ask", "hi")
	require.NoError(t, err)
	assert.NotContains(t, out, "SERPER_API_KEY is not set")
	assert.Contains(t, out, "GEMINI_API_KEY is not set")
}

func TestCLI_InvalidConfig(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.config, []byte("llm:\n  provider: openai\n"), 0600))

	_, err := env.run(t, "", "techniques")
	assert.ErrorContains(t, err, "invalid config")
}

func TestCLI_Shell(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "/cot 2+2?\nexit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "GEMINI PROMPT ENGINEERING AGENT")
	assert.Contains(t, out, "[Using chain_of_thought technique]")
	assert.Contains(t, out, "Agent: stub reply")
	assert.Contains(t, out, "Goodbye!")
}

func TestCLI_TimeoutFlag(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "", "--timeout", "3s", "techniques")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, requestTimeout(cfg))
}

func TestNewSession_RequestTimeoutFollowsConfig(t *testing.T) {
	newCLIEnv(t)
	timeout = 0
	t.Cleanup(func() { timeout = 0 })

	c := config.DefaultConfig()
	c.Agent.RequestTimeout = "7s"
	s, err := newSession(c, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, s.timeout)

	timeout = 3 * time.Second
	s, err = newSession(c, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, s.timeout)
}

func TestCLI_SearchUsesModelOverride(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "", "--model", "gemini-test", "search", "golang")
	require.NoError(t, err)

	env.llm.mu.Lock()
	defer env.llm.mu.Unlock()
	require.Len(t, env.llm.calls, 1)
	assert.Equal(t, "gemini-test", env.llm.calls[0].model)
}
