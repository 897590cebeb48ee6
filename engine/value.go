package engine

import (
	"fmt"
	"sort"
)

type valueKind uint8

const (
	kindUnset valueKind = iota
	kindLiteral
	kindDeferred
)

// Value is an opaque engine argument. It is stored unevaluated and only
// realized when an engine assembles its fit call. The zero Value is the unset
// marker: supplying it for a key means "no value", and such entries are
// dropped at construction and at merge time rather than stored as nulls.
type Value struct {
	kind  valueKind
	lit   interface{}
	thunk func() interface{}
}

// None returns the unset marker.
func None() Value {
	return Value{}
}

// Lit returns a Value holding an immediate literal.
func Lit(v interface{}) Value {
	return Value{kind: kindLiteral, lit: v}
}

// Defer returns a Value whose content is produced by fn at fit time.
func Defer(fn func() interface{}) Value {
	if fn == nil {
		return None()
	}
	return Value{kind: kindDeferred, thunk: fn}
}

// IsUnset reports whether the Value is the unset marker.
func (v Value) IsUnset() bool {
	return v.kind == kindUnset
}

// IsDeferred reports whether realization runs a thunk.
func (v Value) IsDeferred() bool {
	return v.kind == kindDeferred
}

// Literal returns the immediate value, if the Value holds one.
func (v Value) Literal() (interface{}, bool) {
	if v.kind != kindLiteral {
		return nil, false
	}
	return v.lit, true
}

// Realize produces the argument value. Deferred thunks run here and only here.
func (v Value) Realize() interface{} {
	switch v.kind {
	case kindLiteral:
		return v.lit
	case kindDeferred:
		return v.thunk()
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindLiteral:
		return fmt.Sprintf("%v", v.lit)
	case kindDeferred:
		return "<deferred>"
	default:
		return "<unset>"
	}
}

// Args is a mapping of engine-native argument names to unevaluated values.
type Args map[string]Value

// Filtered returns a copy of a with all unset entries dropped.
func (a Args) Filtered() Args {
	out := make(Args, len(a))
	for k, v := range a {
		if v.IsUnset() {
			continue
		}
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of a.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Overlay returns a key-wise merge of a and supplied: supplied keys overwrite
// or add, other keys keep their previous value. A supplied unset value deletes
// the key instead of storing a null.
func (a Args) Overlay(supplied Args) Args {
	out := a.Clone()
	for k, v := range supplied {
		if v.IsUnset() {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// SortedKeys returns the argument names in lexical order, for deterministic
// rendering.
func (a Args) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
