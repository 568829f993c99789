// Package jparse implements a minimal single-pass JSON parser. It converts a
// complete in-memory document into a Value tree that preserves the order of
// array elements and object members exactly as they appear in the source, or
// reports the first offending character together with its position.
//
// The parser is deliberately small: no streaming, no serialization, no schema
// validation. Object keys are never deduplicated; every member is kept in
// source order and last-wins folding is an explicit consumer operation (see
// Object.Get, Object.Fold and Interface).
package jparse

import "strconv"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota + 1
	KindTrue
	KindFalse
	KindString
	KindNumber
	KindArray
	KindObject
)

// String returns the JSON-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one parsed JSON entity. The set of implementations is closed:
// Null, True, False, String, Number, Array and Object. A Value tree is fully
// built before Parse returns and is never mutated afterwards.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// True is the JSON true literal.
type True struct{}

// False is the JSON false literal. The three literals stay distinct types,
// mirroring the grammar's three independent keywords.
type False struct{}

// String is a JSON string with all escape sequences already resolved.
type String string

// Number is a JSON number. Integers and floats share the float64
// representation; precision loss for very large integers is accepted.
type Number float64

// Array is an ordered sequence of values. Element order is source order.
type Array []Value

// Object is an ordered collection of key-value members. Member order is
// source order and duplicate keys are all retained.
type Object []Member

// Member is a single key-value pair in an Object.
type Member struct {
	Key   string
	Value Value
}

func (Null) Kind() Kind   { return KindNull }
func (True) Kind() Kind   { return KindTrue }
func (False) Kind() Kind  { return KindFalse }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) isValue()   {}
func (True) isValue()   {}
func (False) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Get returns the value of the last member with the given key, so callers that
// want "last occurrence wins" semantics get them explicitly. The second result
// is false if no member has the key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Fold collapses the object into a map, later members overwriting earlier ones
// with the same key. Member order is lost.
func (o Object) Fold() map[string]Value {
	m := make(map[string]Value, len(o))
	for _, mem := range o {
		m[mem.Key] = mem.Value
	}
	return m
}

// Interface flattens a Value into the plain Go shape produced by most JSON
// decoders: nil, bool, string, float64, []any and map[string]any. Objects are
// folded last-wins; member order is lost. Returns nil for a nil Value.
func Interface(v Value) any {
	switch v := v.(type) {
	case nil, Null:
		return nil
	case True:
		return true
	case False:
		return false
	case String:
		return string(v)
	case Number:
		return float64(v)
	case Array:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Interface(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(v))
		for _, mem := range v {
			out[mem.Key] = Interface(mem.Value)
		}
		return out
	}
	return nil
}
