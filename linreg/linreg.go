package linreg

import (
	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/core/spec"
	"github.com/YuminosukeSato/modelspec/engine"
	"github.com/YuminosukeSato/modelspec/pkg/errors"
)

// specType names this specification variant in errors and renderings.
const specType = "linear_reg"

// Canonical hyperparameter names. Engine arguments may not use these keys;
// the typed options are the only way in.
const (
	ParamRegularization = "regularization"
	ParamMixture        = "mixture"
)

// legalModes is the fixed legal set for linear regression.
var legalModes = []string{string(spec.ModeRegression)}

// Spec is an immutable linear regression specification. All fields are
// reachable only through accessors; every mutation path returns a new value.
type Spec struct {
	mode           spec.Mode
	regularization param.Number
	mixture        param.Number
	engineArgs     engine.Args
	binding        *engine.Binding
}

var _ spec.Spec = (*Spec)(nil)

// New builds a linear regression specification. Without options the mode is
// regression and both hyperparameters are unset, deferring to the engine
// defaults. Validation runs before anything is stored: usage errors first,
// then mode membership, then the hyperparameter ranges.
func New(opts ...Option) (*Spec, error) {
	o, err := apply("linreg.New", callCreate, opts)
	if err != nil {
		return nil, err
	}

	s := &Spec{
		mode:       spec.ModeRegression,
		engineArgs: engine.Args{},
	}
	if o.mode != nil {
		s.mode = *o.mode
	}
	if err := validateMode(s.mode); err != nil {
		return nil, err
	}

	if o.regularization != nil {
		if err := validateRegularization(*o.regularization); err != nil {
			return nil, err
		}
		s.regularization = *o.regularization
	}
	if o.mixture != nil {
		if err := validateMixture(*o.mixture); err != nil {
			return nil, err
		}
		s.mixture = *o.mixture
	}

	if len(o.engineArgs) > 0 {
		s.engineArgs = o.engineArgs.Filtered()
	}

	return s, nil
}

// Mode returns the predictive task mode.
func (s *Spec) Mode() spec.Mode {
	return s.mode
}

// Regularization returns the total amount of regularization, which may be
// unset.
func (s *Spec) Regularization() param.Number {
	return s.regularization
}

// Mixture returns the proportion of L1 regularization, which may be unset.
func (s *Spec) Mixture() param.Number {
	return s.mixture
}

// EngineArgs returns a copy of the pass-through engine arguments.
func (s *Spec) EngineArgs() engine.Args {
	return s.engineArgs.Clone()
}

// State reports whether an engine has been bound.
func (s *Spec) State() spec.BindingState {
	if s.binding != nil {
		return spec.Bound
	}
	return spec.Unbound
}

// Binding returns the attached engine binding, or nil while unbound.
func (s *Spec) Binding() *engine.Binding {
	return s.binding
}

// Engine returns the bound engine name, or "" while unbound.
func (s *Spec) Engine() string {
	if s.binding == nil {
		return ""
	}
	return s.binding.Engine
}

// BindEngine attaches one of the built-in engines, returning a new bound
// spec. The registry validates that the engine supports the spec's mode and
// hyperparameters; hyperparameters themselves are never touched.
func (s *Spec) BindEngine(name string) (*Spec, error) {
	return s.BindEngineWith(engine.Default(), name)
}

// BindEngineWith is BindEngine against a caller-supplied registry.
func (s *Spec) BindEngineWith(r *engine.Registry, name string) (*Spec, error) {
	b, err := r.Bind(name, s.mode, s.hyperParams())
	if err != nil {
		return nil, err
	}
	out := s.clone()
	out.binding = b
	return out, nil
}

func (s *Spec) clone() *Spec {
	return &Spec{
		mode:           s.mode,
		regularization: s.regularization,
		mixture:        s.mixture,
		engineArgs:     s.engineArgs.Clone(),
		binding:        s.binding,
	}
}

// hyperParams lists the canonical hyperparameters in rendering order.
func (s *Spec) hyperParams() []engine.HyperParam {
	return []engine.HyperParam{
		{Name: ParamRegularization, Value: s.regularization},
		{Name: ParamMixture, Value: s.mixture},
	}
}

func validateMode(m spec.Mode) error {
	for _, legal := range legalModes {
		if string(m) == legal {
			return nil
		}
	}
	return errors.NewInvalidModeError(specType, string(m), legalModes)
}

func validateRegularization(n param.Number) error {
	if v, ok := n.Get(); ok && v < 0 {
		return errors.NewInvalidParameterError(ParamRegularization, "must be greater than or equal to 0", v)
	}
	return nil
}

func validateMixture(n param.Number) error {
	if v, ok := n.Get(); ok && (v < 0 || v > 1) {
		return errors.NewInvalidParameterError(ParamMixture, "must be in the range [0, 1]", v)
	}
	return nil
}
