// Package errors provides structured error handling for the modelspec library.
// Each failure mode has its own error type carrying the offending values, so
// callers can branch on the kind of failure with errors.As instead of string
// matching.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Specification error types
//
// ===========================================================================

// UsageError signals API misuse: an argument supplied where none is accepted,
// or an option applied in a call that does not support it. It is distinct from
// the value-validation errors below, which describe bad data rather than a bad
// call shape.
type UsageError struct {
	Op     string
	Detail string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("modelspec: %s: %s", e.Op, e.Detail)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *UsageError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("detail", e.Detail).
		Str("type", "UsageError")
}

// NewUsageError creates a new UsageError with a stack trace attached.
func NewUsageError(op, detail string) error {
	err := &UsageError{Op: op, Detail: detail}
	return errors.WithStack(err)
}

// InvalidModeError reports a mode outside the fixed legal set of the
// specification type. Legal carries the full set so the message can name the
// accepted values.
type InvalidModeError struct {
	SpecType string
	Mode     string
	Legal    []string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("modelspec: %q is not a known mode for %s. Legal modes are: %v", e.Mode, e.SpecType, e.Legal)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InvalidModeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("spec_type", e.SpecType).
		Str("mode", e.Mode).
		Strs("legal_modes", e.Legal).
		Str("type", "InvalidModeError")
}

// NewInvalidModeError creates a new InvalidModeError with a stack trace attached.
func NewInvalidModeError(specType, mode string, legal []string) error {
	err := &InvalidModeError{SpecType: specType, Mode: mode, Legal: legal}
	return errors.WithStack(err)
}

// InvalidParameterError reports a hyperparameter value outside its legal
// range, e.g. a negative regularization amount or a mixture outside [0, 1].
type InvalidParameterError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("modelspec: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InvalidParameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidParameterError")
}

// NewInvalidParameterError creates a new InvalidParameterError with a stack
// trace attached.
func NewInvalidParameterError(param, reason string, value interface{}) error {
	err := &InvalidParameterError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// EngineError reports a failure during engine binding, e.g. an unknown engine
// name or an engine that cannot honor the spec's hyperparameters.
type EngineError struct {
	Engine string
	Op     string
	Reason string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("modelspec: %s: engine %q: %s", e.Op, e.Engine, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EngineError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("engine", e.Engine).
		Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "EngineError")
}

// NewEngineError creates a new EngineError with a stack trace attached.
func NewEngineError(op, engine, reason string) error {
	err := &EngineError{Engine: engine, Op: op, Reason: reason}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrNotSerializable is returned when a spec holding deferred engine
	// arguments is marshaled; thunks have no stable textual form.
	ErrNotSerializable = New("engine argument is not serializable")

	// ErrUnknownEngine is the base error for lookups of unregistered engines.
	ErrUnknownEngine = New("unknown engine")
)
