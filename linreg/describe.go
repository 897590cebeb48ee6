package linreg

import (
	"fmt"
	"strings"
)

// Describe renders a human-readable summary: the mode, the hyperparameters
// (unset ones shown as deferred to the engine), the engine arguments, and
// once bound, the fit call the binding's template would produce.
func (s *Spec) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Linear Regression Model Specification (%s)\n", s.mode)

	b.WriteString("\nMain Arguments:\n")
	for _, h := range s.hyperParams() {
		fmt.Fprintf(&b, "  %s = %s\n", h.Name, h.Value)
	}

	if len(s.engineArgs) > 0 {
		b.WriteString("\nEngine Arguments:\n")
		for _, k := range s.engineArgs.SortedKeys() {
			fmt.Fprintf(&b, "  %s = %s\n", k, s.engineArgs[k])
		}
	}

	if s.binding != nil {
		fmt.Fprintf(&b, "\nComputational engine: %s\n", s.binding.Engine)
		b.WriteString("\nModel fit template:\n")
		fmt.Fprintf(&b, "  %s\n", s.binding.RenderCall(s.hyperParams(), s.engineArgs))
	}

	return b.String()
}

func (s *Spec) String() string {
	return s.Describe()
}
