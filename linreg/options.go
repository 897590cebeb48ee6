package linreg

import (
	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/core/spec"
	"github.com/YuminosukeSato/modelspec/engine"
	"github.com/YuminosukeSato/modelspec/pkg/errors"
)

type callKind int

const (
	callCreate callKind = iota
	callUpdate
)

// options accumulates what a single call mentioned. A nil hyperparameter
// pointer means "not mentioned in this call", which updates treat differently
// from an explicitly supplied unset value.
type options struct {
	op   string
	kind callKind
	err  error

	mode           *spec.Mode
	regularization *param.Number
	mixture        *param.Number
	engineArgs     engine.Args
}

// Option configures a create or update call on a linear regression spec.
type Option func(*options)

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func apply(op string, kind callKind, opts []Option) (*options, error) {
	o := &options{op: op, kind: kind, engineArgs: engine.Args{}}
	for _, opt := range opts {
		if opt == nil {
			return nil, errors.NewUsageError(op, "nil option supplied")
		}
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return o, nil
}

// WithMode sets the predictive task mode. Only valid at creation; the mode of
// an existing spec is fixed.
func WithMode(m spec.Mode) Option {
	return func(o *options) {
		if o.kind != callCreate {
			o.fail(errors.NewUsageError(o.op, "mode cannot be changed by an update"))
			return
		}
		o.mode = &m
	}
}

// WithRegularization sets the total amount of regularization.
func WithRegularization(v float64) Option {
	return func(o *options) {
		n := param.Set(v)
		o.regularization = &n
	}
}

// WithRegularizationUnset explicitly clears regularization back to the engine
// default. In a Merge this differs from leaving the option out, which keeps
// the previous value.
func WithRegularizationUnset() Option {
	return func(o *options) {
		n := param.NewUnset()
		o.regularization = &n
	}
}

// WithMixture sets the proportion of L1 regularization; 1 is a pure lasso
// model and 0 pure ridge.
func WithMixture(v float64) Option {
	return func(o *options) {
		n := param.Set(v)
		o.mixture = &n
	}
}

// WithMixtureUnset explicitly clears the mixture back to the engine default.
func WithMixtureUnset() Option {
	return func(o *options) {
		n := param.NewUnset()
		o.mixture = &n
	}
}

// WithEngineArg passes one opaque argument through to the eventual fit call.
// The canonical hyperparameter names are rejected here; they have typed
// options and letting them through as engine arguments would bypass
// validation.
func WithEngineArg(key string, value engine.Value) Option {
	return func(o *options) {
		if key == ParamRegularization || key == ParamMixture {
			o.fail(errors.NewUsageError(o.op,
				"engine argument key \""+key+"\" collides with a canonical hyperparameter"))
			return
		}
		o.engineArgs[key] = value
	}
}

// WithEngineArgs passes a batch of opaque arguments through to the eventual
// fit call.
func WithEngineArgs(args engine.Args) Option {
	return func(o *options) {
		for k, v := range args {
			WithEngineArg(k, v)(o)
		}
	}
}
