package engine

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/core/spec"
)

// HyperParam is one canonical hyperparameter handed to a binding for
// translation, in rendering order.
type HyperParam struct {
	Name  string
	Value param.Number
}

// Binding describes a fitting engine: which modes it supports, how canonical
// hyperparameter names translate to the engine's native argument names, and
// the call template a fit would be substituted into. A Binding never executes
// anything; it is attached to a specification by the registry and consulted
// when the spec is described or fitted.
type Binding struct {
	// Engine is the registry name, e.g. "glmnet".
	Engine string

	// Modes lists the predictive task modes the engine supports.
	Modes []spec.Mode

	// Translation maps canonical hyperparameter names to the engine's
	// native argument names. A canonical name missing from the table has
	// no native counterpart and is omitted from the rendered call.
	Translation map[string]string

	// FuncName is the fully qualified fit function of the engine.
	FuncName string

	// Defaults are fixed arguments the engine always receives,
	// e.g. the model family.
	Defaults Args
}

// SupportsMode reports whether the binding accepts the given mode.
func (b *Binding) SupportsMode(m spec.Mode) bool {
	for _, mode := range b.Modes {
		if mode == m {
			return true
		}
	}
	return false
}

// Translate returns the engine-native name for a canonical hyperparameter,
// and whether the engine exposes it at all.
func (b *Binding) Translate(canonical string) (string, bool) {
	native, ok := b.Translation[canonical]
	return native, ok
}

// RenderCall renders the fit call that would be produced by substituting the
// translated hyperparameters and the engine arguments into the call template.
// Unset hyperparameters are omitted; the engine default applies. Data
// placeholders come first, mirroring how the engines are actually invoked.
func (b *Binding) RenderCall(hyper []HyperParam, args Args) string {
	var parts []string
	parts = append(parts, "x = missing_arg()", "y = missing_arg()")

	for _, h := range hyper {
		native, ok := b.Translate(h.Name)
		if !ok {
			continue
		}
		if v, set := h.Value.Get(); set {
			parts = append(parts, fmt.Sprintf("%s = %v", native, v))
		}
	}

	for _, k := range args.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%s = %s", k, args[k]))
	}

	for _, k := range b.Defaults.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%s = %s", k, b.Defaults[k]))
	}

	return fmt.Sprintf("%s(%s)", b.FuncName, strings.Join(parts, ", "))
}
