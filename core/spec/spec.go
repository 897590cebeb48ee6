// Package spec defines the interfaces shared by all model specification types.
package spec

// Mode is the predictive task a specification describes.
type Mode string

const (
	// ModeRegression models a numeric outcome.
	ModeRegression Mode = "regression"
)

// BindingState reports whether a specification has been bound to an engine.
type BindingState int

const (
	// Unbound is the state every specification starts in; create and
	// update operate here.
	Unbound BindingState = iota
	// Bound means an engine binding is attached. Updates remain legal
	// and do not change the state.
	Bound
)

// Spec is implemented by every specification variant. The set of variants is
// closed per release; selection happens by static type, not by tag inspection.
type Spec interface {
	// Mode returns the predictive task mode of the specification.
	Mode() Mode

	// State reports whether an engine has been bound.
	State() BindingState

	// Describe renders a human-readable summary of the specification.
	Describe() string
}
