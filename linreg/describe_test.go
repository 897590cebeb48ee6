package linreg

import (
	"strings"
	"testing"

	"github.com/YuminosukeSato/modelspec/core/param"
	"github.com/YuminosukeSato/modelspec/engine"
)

func TestDescribeUnbound(t *testing.T) {
	s := mustNew(t, WithRegularization(0.1))

	got := s.Describe()

	if !strings.Contains(got, "Linear Regression Model Specification (regression)") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "regularization = 0.1") {
		t.Errorf("missing regularization line:\n%s", got)
	}
	if !strings.Contains(got, "mixture = "+param.Unset) {
		t.Errorf("unset mixture should render as deferred:\n%s", got)
	}
	if strings.Contains(got, "Computational engine") {
		t.Errorf("unbound spec must not render an engine:\n%s", got)
	}
}

func TestDescribeBoundRendersFitCall(t *testing.T) {
	s := mustNew(t,
		WithRegularization(0.1),
		WithMixture(0.5),
		WithEngineArg("nlambda", engine.Lit(10)),
	)
	bound, err := s.BindEngine("glmnet")
	if err != nil {
		t.Fatalf("BindEngine failed: %v", err)
	}

	got := bound.Describe()

	if !strings.Contains(got, "Computational engine: glmnet") {
		t.Errorf("missing engine line:\n%s", got)
	}
	// Hyperparameter names are translated to the engine's native ones.
	if !strings.Contains(got, "lambda = 0.1") || !strings.Contains(got, "alpha = 0.5") {
		t.Errorf("fit call missing translated arguments:\n%s", got)
	}
	if !strings.Contains(got, "nlambda = 10") {
		t.Errorf("fit call missing engine argument:\n%s", got)
	}
}

func TestDescribeDeterministicEngineArgOrder(t *testing.T) {
	s := mustNew(t,
		WithEngineArg("zeta", engine.Lit(1)),
		WithEngineArg("alpha_start", engine.Lit(2)),
	)

	got := s.Describe()
	if strings.Index(got, "alpha_start") > strings.Index(got, "zeta") {
		t.Errorf("engine arguments should render in lexical order:\n%s", got)
	}
	if got != s.Describe() {
		t.Error("Describe must be deterministic")
	}
}

func TestDescribeDoesNotRealizeDeferredArgs(t *testing.T) {
	called := false
	s := mustNew(t, WithEngineArg("weights", engine.Defer(func() interface{} {
		called = true
		return []float64{1, 2, 3}
	})))

	got := s.Describe()

	if called {
		t.Error("Describe must not realize deferred engine arguments")
	}
	if !strings.Contains(got, "weights = <deferred>") {
		t.Errorf("deferred argument should render as a placeholder:\n%s", got)
	}
}
