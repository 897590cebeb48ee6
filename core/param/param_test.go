package param

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

func TestNumberStates(t *testing.T) {
	tests := []struct {
		name    string
		n       Number
		wantSet bool
		wantVal float64
	}{
		{name: "zero value is unset", n: Number{}, wantSet: false},
		{name: "NewUnset is unset", n: NewUnset(), wantSet: false},
		{name: "explicit zero is set", n: Set(0), wantSet: true, wantVal: 0},
		{name: "positive value", n: Set(0.5), wantSet: true, wantVal: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.n.Get()
			if ok != tt.wantSet {
				t.Fatalf("IsSet = %v, want %v", ok, tt.wantSet)
			}
			if ok && !scalar.EqualWithinAbs(v, tt.wantVal, 1e-12) {
				t.Errorf("Get = %v, want %v", v, tt.wantVal)
			}
		})
	}
}

func TestNumberOr(t *testing.T) {
	if got := NewUnset().Or(3.5); got != 3.5 {
		t.Errorf("Or on unset = %v, want 3.5", got)
	}
	if got := Set(1.0).Or(3.5); got != 1.0 {
		t.Errorf("Or on set = %v, want 1.0", got)
	}
}

func TestNumberIsZero(t *testing.T) {
	// Unset and explicit zero are both "zero" for engine support checks;
	// the engine default wins either way.
	if !NewUnset().IsZero() {
		t.Error("unset should be zero")
	}
	if !Set(0).IsZero() {
		t.Error("explicit 0 should be zero")
	}
	if Set(0.1).IsZero() {
		t.Error("0.1 should not be zero")
	}
}

func TestNumberString(t *testing.T) {
	if got := NewUnset().String(); got != Unset {
		t.Errorf("String on unset = %q, want %q", got, Unset)
	}
	if got := Set(0.25).String(); got != "0.25" {
		t.Errorf("String = %q, want %q", got, "0.25")
	}
}

func TestNumberYAMLRoundTrip(t *testing.T) {
	type doc struct {
		Regularization Number `yaml:"regularization"`
		Mixture        Number `yaml:"mixture"`
	}

	in := doc{Regularization: Set(0.1)}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out doc
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	v, ok := out.Regularization.Get()
	if !ok || !scalar.EqualWithinAbs(v, 0.1, 1e-12) {
		t.Errorf("regularization = (%v, %v), want (0.1, true)", v, ok)
	}
	if out.Mixture.IsSet() {
		t.Error("mixture should stay unset through a round trip")
	}
}
