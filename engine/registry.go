package engine

import (
	"sort"
	"sync"

	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/core/spec"
	"github.com/YuminosukeSato/modelspec/pkg/errors"
	"github.com/YuminosukeSato/modelspec/pkg/log"
)

// SupportCheck validates that an engine can honor the supplied canonical
// hyperparameters. A nil check accepts everything.
type SupportCheck func(hyper []HyperParam) error

// Registry maps engine names to bindings and their support checks.
// The zero Registry is not usable; call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]*Binding
	checks   map[string]SupportCheck
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]*Binding),
		checks:   make(map[string]SupportCheck),
	}
}

// Register adds or replaces a binding. check may be nil.
func (r *Registry) Register(b *Binding, check SupportCheck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[b.Engine] = b
	r.checks[b.Engine] = check
	lg := log.ForEngine(b.Engine)
	lg.Debug().
		Str(log.OperationKey, "register").
		Msg("engine registered")
}

// Lookup returns the binding registered under name.
func (r *Registry) Lookup(name string) (*Binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownEngine, "%q (known engines: %v)", name, r.namesLocked())
	}
	return b, nil
}

// Names returns the registered engine names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind resolves name and validates that the engine supports the mode and the
// supplied hyperparameters. It returns the binding to attach; the caller owns
// putting it on the spec.
func (r *Registry) Bind(name string, mode spec.Mode, hyper []HyperParam) (*Binding, error) {
	b, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	if !b.SupportsMode(mode) {
		return nil, errors.NewEngineError("Bind", name, "mode "+string(mode)+" is not supported")
	}

	r.mu.RLock()
	check := r.checks[name]
	r.mu.RUnlock()
	if check != nil {
		if err := check(hyper); err != nil {
			return nil, err
		}
	}

	lg := log.ForEngine(name)
	lg.Debug().
		Str(log.OperationKey, "bind").
		Str(log.ModeKey, string(mode)).
		Msg("engine bound")
	return b, nil
}

// ===========================================================================
//
//	Default registry and built-in engines
//
// ===========================================================================

var defaultRegistry = builtinRegistry()

// Default returns the registry pre-populated with the built-in engines.
func Default() *Registry {
	return defaultRegistry
}

func find(hyper []HyperParam, name string) param.Number {
	for _, h := range hyper {
		if h.Name == name {
			return h.Value
		}
	}
	return param.NewUnset()
}

// requireUnpenalized rejects hyperparameters that ask for a penalty from an
// engine that cannot apply one.
func requireUnpenalized(engine string) SupportCheck {
	return func(hyper []HyperParam) error {
		if !find(hyper, "regularization").IsZero() {
			return errors.NewEngineError("Bind", engine, "requires regularization to be zero or unset")
		}
		if find(hyper, "mixture").IsSet() {
			return errors.NewEngineError("Bind", engine, "does not accept a mixture")
		}
		return nil
	}
}

func builtinRegistry() *Registry {
	r := NewRegistry()

	// Ordinary least squares.
	r.Register(&Binding{
		Engine:      "lm",
		Modes:       []spec.Mode{spec.ModeRegression},
		Translation: map[string]string{},
		FuncName:    "stats::lm",
	}, requireUnpenalized("lm"))

	// Penalized regression.
	r.Register(&Binding{
		Engine: "glmnet",
		Modes:  []spec.Mode{spec.ModeRegression},
		Translation: map[string]string{
			"regularization": "lambda",
			"mixture":        "alpha",
		},
		FuncName: "glmnet::glmnet",
		Defaults: Args{"family": Lit(`"gaussian"`)},
	}, nil)

	// Bayesian regression.
	r.Register(&Binding{
		Engine:      "stan",
		Modes:       []spec.Mode{spec.ModeRegression},
		Translation: map[string]string{},
		FuncName:    "rstanarm::stan_glm",
		Defaults:    Args{"family": Lit("stats::gaussian")},
	}, requireUnpenalized("stan"))

	// Distributed regression.
	r.Register(&Binding{
		Engine: "spark",
		Modes:  []spec.Mode{spec.ModeRegression},
		Translation: map[string]string{
			"regularization": "reg_param",
			"mixture":        "elastic_net_param",
		},
		FuncName: "sparklyr::ml_linear_regression",
	}, nil)

	return r
}
