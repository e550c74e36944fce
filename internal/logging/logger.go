// Package logging provides category-scoped zap loggers for frontinsert.
// Logs go to stderr so stdout carries only the program's own output.
// Categories can be switched off individually; a disabled category gets a
// no-op logger.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config loading
	CategoryInput   Category = "input"   // Integer reads
	CategoryBuffer  Category = "buffer"  // Shift and insertion
	CategorySession Category = "session" // Front-insertion flow
)

// Options configures Initialize. It mirrors config.LoggingConfig so this
// package does not import config.
type Options struct {
	Level      string          // debug, info, warn, error
	Format     string          // console, json
	Categories map[string]bool // per-category toggles; missing = enabled
	Verbose    bool            // forces debug level
	Output     zapcore.WriteSyncer
}

var (
	mu         sync.RWMutex
	root       = zap.NewNop()
	categories map[string]bool
)

// ParseLevel converts a config level name to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Initialize builds the root logger. Calling it again replaces the previous
// logger.
func Initialize(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "text", "":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return fmt.Errorf("unknown log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	l := zap.New(zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level)))

	mu.Lock()
	defer mu.Unlock()
	root = l
	categories = opts.Categories
	return nil
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()

	enabled, exists := categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns a logger named after category, or a no-op logger if the
// category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(category))
}

// Sync flushes the root logger.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return root.Sync()
}

// Reset restores the no-op root logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	root = zap.NewNop()
	categories = nil
}
