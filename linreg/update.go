package linreg

import (
	"github.com/YuminosukeSato/modelspec/core/param"
)

// Merge returns a new spec with the supplied values overlaid key-wise onto
// the existing ones. Hyperparameters not mentioned keep their previous value;
// supplied engine arguments overwrite or add, unmentioned keys are preserved.
// Mode and engine binding always carry over. With no options Merge is an
// identity copy.
func (s *Spec) Merge(opts ...Option) (*Spec, error) {
	o, err := apply("linreg.Merge", callUpdate, opts)
	if err != nil {
		return nil, err
	}
	if err := validateSupplied(o); err != nil {
		return nil, err
	}

	out := s.clone()
	if o.regularization != nil {
		out.regularization = *o.regularization
	}
	if o.mixture != nil {
		out.mixture = *o.mixture
	}
	if len(o.engineArgs) > 0 {
		out.engineArgs = s.engineArgs.Overlay(o.engineArgs)
	}
	return out, nil
}

// Replace returns a new spec whose hyperparameter set is exactly what this
// call supplies: hyperparameters not mentioned become unset, discarding any
// previously stored value. Supplied engine arguments replace the whole
// mapping; with none supplied the existing arguments are kept. Mode and
// engine binding always carry over.
func (s *Spec) Replace(opts ...Option) (*Spec, error) {
	o, err := apply("linreg.Replace", callUpdate, opts)
	if err != nil {
		return nil, err
	}
	if err := validateSupplied(o); err != nil {
		return nil, err
	}

	out := s.clone()
	out.regularization = param.NewUnset()
	out.mixture = param.NewUnset()
	if o.regularization != nil {
		out.regularization = *o.regularization
	}
	if o.mixture != nil {
		out.mixture = *o.mixture
	}
	if len(o.engineArgs) > 0 {
		out.engineArgs = o.engineArgs.Filtered()
	}
	return out, nil
}

// validateSupplied checks only the values actually mentioned by an update,
// before any copy is built. A failed update therefore cannot leave a spec
// half-changed.
func validateSupplied(o *options) error {
	if o.regularization != nil {
		if err := validateRegularization(*o.regularization); err != nil {
			return err
		}
	}
	if o.mixture != nil {
		if err := validateMixture(*o.mixture); err != nil {
			return err
		}
	}
	return nil
}
