// Package logging provides config-driven categorized logging for promptcraft.
// All categories share one zap logger that writes to a file under the
// configured logs directory. Logging is controlled by debug_mode in the
// config file: when false, every category is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, flag and config resolution
	CategoryConfig Category = "config" // Config loading and hot reload
	CategoryAPI    Category = "api"    // Completion API calls
	CategorySearch Category = "search" // Search provider calls
	CategoryAgent  Category = "agent"  // Dispatch decisions, prompt building
	CategoryShell  Category = "shell"  // Interactive shell input handling
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // json, console
	Dir        string
	File       string
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	current Options
)

// Initialize builds the shared logger. With DebugMode off it installs a no-op
// logger and touches nothing on disk.
func Initialize(opts Options) error {
	if !opts.DebugMode {
		install(zap.NewNop(), opts)
		return nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || opts.Level == "" {
		level = zapcore.InfoLevel
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	file := opts.File
	if file == "" {
		file = fmt.Sprintf("%s_promptcraft.log", time.Now().Format("2006-01-02"))
	}

	encoding := "json"
	if opts.Format == "console" || opts.Format == "text" {
		encoding = "console"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{filepath.Join(dir, file)},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	install(logger, opts)

	boot := Get(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("path", filepath.Join(dir, file)),
		zap.String("level", level.String()),
		zap.String("encoding", encoding))
	if len(opts.Categories) == 0 {
		boot.Debug("all categories enabled (no category filter)")
	}
	return nil
}

// Replace installs logger as the shared logger and returns a function that
// restores the previous one. Tests use it with zaptest/observer.
func Replace(logger *zap.Logger, opts Options) (restore func()) {
	mu.Lock()
	prevBase, prevOpts := base, current
	mu.Unlock()

	install(logger, opts)
	return func() { install(prevBase, prevOpts) }
}

func install(logger *zap.Logger, opts Options) {
	mu.Lock()
	defer mu.Unlock()
	base = logger
	current = opts
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return current.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()

	if !current.DebugMode {
		return false
	}
	if current.Categories == nil {
		return true
	}
	enabled, exists := current.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns the named logger for a category, or a no-op logger when the
// category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(string(category))
}

// WithRequestID returns a category logger tagged with a correlation ID.
func WithRequestID(category Category, requestID string) *zap.Logger {
	return Get(category).With(zap.String("request_id", requestID))
}

// Sync flushes buffered entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("operation completed",
		zap.String("op", t.op),
		zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	logger := Get(t.category)
	if elapsed > threshold {
		logger.Warn("slow operation",
			zap.String("op", t.op),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold))
	} else {
		logger.Debug("operation completed",
			zap.String("op", t.op),
			zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
