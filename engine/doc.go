// Package engine holds the pieces a model specification defers to fit time:
// unevaluated engine arguments, engine bindings with their canonical-to-native
// parameter translation tables, and the registry of known fitting engines.
//
// Nothing in this package fits a model. A Binding only describes how a fit
// call would be assembled; executing it is the job of the engine itself.
package engine
