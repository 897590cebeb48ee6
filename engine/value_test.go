package engine

import (
	"reflect"
	"testing"
)

func TestArgsFiltered(t *testing.T) {
	args := Args{
		"a": None(),
		"b": Lit(5),
	}

	got := args.Filtered()

	if _, ok := got["a"]; ok {
		t.Error("unset entry should be dropped")
	}
	if v, ok := got["b"].Literal(); !ok || v != 5 {
		t.Errorf("b = %v, want 5", v)
	}
	// Filtering returns a copy.
	if _, ok := args["a"]; !ok {
		t.Error("original args must not be mutated")
	}
}

func TestArgsOverlay(t *testing.T) {
	tests := []struct {
		name     string
		base     Args
		supplied Args
		wantKeys map[string]interface{}
	}{
		{
			name:     "supplied keys overwrite, others preserved",
			base:     Args{"a": Lit(1), "b": Lit(2)},
			supplied: Args{"b": Lit(3)},
			wantKeys: map[string]interface{}{"a": 1, "b": 3},
		},
		{
			name:     "new keys are added",
			base:     Args{"a": Lit(1)},
			supplied: Args{"c": Lit(9)},
			wantKeys: map[string]interface{}{"a": 1, "c": 9},
		},
		{
			name:     "unset deletes instead of storing null",
			base:     Args{"a": Lit(1), "b": Lit(2)},
			supplied: Args{"a": None()},
			wantKeys: map[string]interface{}{"b": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Overlay(tt.supplied)

			if len(got) != len(tt.wantKeys) {
				t.Fatalf("got %d keys, want %d", len(got), len(tt.wantKeys))
			}
			for k, want := range tt.wantKeys {
				v, ok := got[k].Literal()
				if !ok || v != want {
					t.Errorf("%s = %v, want %v", k, v, want)
				}
			}
		})
	}
}

func TestDeferredRealization(t *testing.T) {
	calls := 0
	v := Defer(func() interface{} {
		calls++
		return 42
	})

	if !v.IsDeferred() {
		t.Fatal("expected a deferred value")
	}
	if calls != 0 {
		t.Fatal("thunk must not run before Realize")
	}
	if got := v.Realize(); got != 42 {
		t.Errorf("Realize = %v, want 42", got)
	}
	if calls != 1 {
		t.Errorf("thunk ran %d times, want 1", calls)
	}
	if got := v.String(); got != "<deferred>" {
		t.Errorf("String = %q, want %q", got, "<deferred>")
	}
}

func TestDeferNilIsUnset(t *testing.T) {
	if !Defer(nil).IsUnset() {
		t.Error("Defer(nil) should be the unset marker")
	}
}

func TestSortedKeys(t *testing.T) {
	args := Args{"z": Lit(1), "a": Lit(2), "m": Lit(3)}
	want := []string{"a", "m", "z"}
	if got := args.SortedKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys = %v, want %v", got, want)
	}
}
