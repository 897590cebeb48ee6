// Package linreg implements the linear regression model specification.
//
// A linreg.Spec is a small immutable value describing the desired amount of
// regularization, the L1/L2 mixture, and opaque pass-through engine
// arguments. Building one performs no computation; the spec is later bound
// to a fitting engine (ordinary least squares, penalized regression, a
// Bayesian sampler, or a distributed engine) and consumed by an external fit
// step.
//
//	spec, err := linreg.New(
//	    linreg.WithRegularization(0.1),
//	    linreg.WithMixture(0.5),
//	)
//
// Updates never mutate: Merge overlays the supplied values onto a copy,
// Replace rebuilds the hyperparameter set from scratch. Both validate before
// touching anything, so a failed update leaves the original spec intact.
package linreg
