// Package modelspec provides declarative model specifications for Go,
// separating what model you want from how it gets fitted.
//
// A specification is a small immutable value describing a predictive task,
// its engine-agnostic hyperparameters, and opaque pass-through engine
// arguments. No computation happens when a specification is built; fitting
// is performed later by an external engine bound to the spec.
//
// # Features
//
// - Validated construction: hyperparameter ranges checked before anything is stored
// - Copy-on-write updates: partial overlay (Merge) or full replacement (Replace)
// - Deferred engine arguments: stored unevaluated until fit time
// - Engine bindings: translation tables from canonical names to engine-native ones
// - Human-readable Describe output, including the would-be fit call once bound
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/modelspec/linreg"
//	)
//
//	func main() {
//	    spec, err := linreg.New(
//	        linreg.WithRegularization(0.1),
//	        linreg.WithMixture(0.5),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    bound, err := spec.BindEngine("glmnet")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(bound.Describe())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linreg: The linear regression specification type
//   - engine: Deferred engine arguments, bindings, and the engine registry
//   - core/spec: Interfaces shared by all specification types
//   - core/param: Hyperparameter values with an explicit unset state
//   - pkg/errors: Structured error types with stack traces
//   - pkg/log: Structured logging built on zerolog
//
// # License
//
// modelspec is released under the MIT License.
package modelspec
