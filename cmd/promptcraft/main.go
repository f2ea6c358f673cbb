package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptcraft/internal/config"
	"promptcraft/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	envFile    string
	timeout    time.Duration
	modelName  string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptcraft",
	Short: "promptcraft - prompt engineering agent for Gemini",
	Long: `promptcraft rewrites your request with a prompt engineering technique
(zero-shot, few-shot, chain of thought, role-based, structured output, emotion
prompt and more) before sending it to Gemini. Requests that start with
"search " are grounded in live Google results via Serper.

Run without arguments to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadRuntime()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .promptcraft/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with API keys")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (default from config)")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Gemini model override")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(techniquesCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolvedConfigPath returns --config or the default location.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadRuntime loads .env, the config file and flag overrides, then
// initializes logging.
func loadRuntime() error {
	loadedKeys, err := config.LoadDotEnv(envFile)
	if err != nil {
		return err
	}

	loaded, err := config.Load(resolvedConfigPath())
	if err != nil {
		return err
	}
	applyFlags(loaded)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Initialize(loggingOptions(loaded.Logging)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger = logging.Get(logging.CategoryBoot)
	logger.Debug("runtime loaded",
		zap.String("config", resolvedConfigPath()),
		zap.Int("dotenv_keys", len(loadedKeys)),
		zap.String("model", loaded.LLM.Model))

	cfg = loaded
	return nil
}

// applyFlags layers command line overrides on top of the loaded config.
func applyFlags(c *config.Config) {
	if modelName != "" {
		c.LLM.Model = modelName
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
}

func loggingOptions(c config.LoggingConfig) logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Format:     c.Format,
		Dir:        c.Dir,
		File:       c.File,
		Categories: c.Categories,
	}
}

// requestTimeout is the deadline applied to one request. The --timeout flag
// wins over the config value.
func requestTimeout(c *config.Config) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return c.GetRequestTimeout()
}
