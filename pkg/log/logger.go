// Package log provides structured logging for specification workflows.
//
// The package wraps zerolog behind a small provider so that library
// consumers can swap the output destination or silence logging entirely.
// The specification value object itself never logs; logging belongs to the
// surrounding layers (the engine registry, binders, and applications).
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Standard attribute keys used across specification workflows. Sticking to
// these keys keeps log analysis and filtering consistent.
const (
	// SpecTypeKey identifies the specification type.
	// Examples: "linear_reg"
	SpecTypeKey = "spec.type"

	// ModeKey carries the predictive task mode. Example: "regression"
	ModeKey = "spec.mode"

	// EngineKey names the fitting engine involved in an operation.
	// Examples: "lm", "glmnet", "stan", "spark"
	EngineKey = "spec.engine"

	// OperationKey specifies the specification operation being performed.
	// Standard values: "create", "merge", "replace", "bind", "describe"
	OperationKey = "spec.operation"
)

var (
	mu     sync.RWMutex
	logger = newDefault()
)

func newDefault() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// Setup replaces the package logger with one writing to w at the given level.
// Call it once at program start; concurrent use with logging is safe.
func Setup(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// ForEngine returns a logger pre-populated with the engine name.
func ForEngine(engine string) zerolog.Logger {
	return Logger().With().Str(EngineKey, engine).Logger()
}

// Discard silences all package logging.
func Discard() {
	Setup(io.Discard, zerolog.Disabled)
}
