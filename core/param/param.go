// Package param provides hyperparameter values with an explicit unset state.
//
// An unset value means "defer to the engine default" and is distinct from an
// explicit zero. It is also distinct from a hyperparameter that is simply not
// mentioned in a partial update; that third state is carried by the update
// options, not by Number itself.
package param

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Unset is how an unset Number renders in human-readable output.
const Unset = "to be selected automatically"

// Number is a float64 hyperparameter cell that may be unset.
// The zero value is unset.
type Number struct {
	value float64
	set   bool
}

// Set returns a Number holding v.
func Set(v float64) Number {
	return Number{value: v, set: true}
}

// NewUnset returns an unset Number.
func NewUnset() Number {
	return Number{}
}

// IsSet reports whether the Number holds a value.
func (n Number) IsSet() bool {
	return n.set
}

// Get returns the held value and whether one is set.
func (n Number) Get() (float64, bool) {
	return n.value, n.set
}

// Or returns the held value, or def when unset.
func (n Number) Or(def float64) float64 {
	if n.set {
		return n.value
	}
	return def
}

// IsZero reports whether the Number is unset or holds exactly zero.
// Engine support checks use this: some engines require a hyperparameter
// to be zero or left to its default.
func (n Number) IsZero() bool {
	return !n.set || n.value == 0
}

func (n Number) String() string {
	if !n.set {
		return Unset
	}
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

// MarshalYAML renders a set Number as a scalar and an unset one as null.
func (n Number) MarshalYAML() (interface{}, error) {
	if !n.set {
		return nil, nil
	}
	return n.value, nil
}

// UnmarshalYAML accepts a numeric scalar or null.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*n = Number{}
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = Set(v)
	return nil
}
