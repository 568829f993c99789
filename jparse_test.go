package jparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindNull:   "null",
		KindTrue:   "true",
		KindFalse:  "false",
		KindString: "string",
		KindNumber: "number",
		KindArray:  "array",
		KindObject: "object",
	} {
		require.Equal(t, want, kind.String())
	}
	require.Equal(t, "kind(0)", Kind(0).String())
}

func TestValueKinds(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		kind Kind
	}{
		{Null{}, KindNull},
		{True{}, KindTrue},
		{False{}, KindFalse},
		{String("s"), KindString},
		{Number(1), KindNumber},
		{Array{}, KindArray},
		{Object{}, KindObject},
	} {
		require.Equal(t, tc.kind, tc.v.Kind())
	}
}

func TestObjectGet(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		var o Object
		_, ok := o.Get("absent")
		require.False(t, ok)
	})

	t.Run("present key", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}, {Key: "b", Value: Number(2)}}
		v, ok := o.Get("b")
		require.True(t, ok)
		require.Equal(t, Number(2), v)
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		o := Object{
			{Key: "a", Value: Number(1)},
			{Key: "b", Value: Number(2)},
			{Key: "a", Value: Number(3)},
		}
		v, ok := o.Get("a")
		require.True(t, ok)
		require.Equal(t, Number(3), v)
	})
}

func TestObjectFold(t *testing.T) {
	o := Object{
		{Key: "a", Value: Number(1)},
		{Key: "b", Value: True{}},
		{Key: "a", Value: Number(3)},
	}
	require.Equal(t, map[string]Value{
		"a": Number(3),
		"b": True{},
	}, o.Fold())
}

func TestInterface(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		require.Nil(t, Interface(nil))
		require.Nil(t, Interface(Null{}))
		require.Equal(t, true, Interface(True{}))
		require.Equal(t, false, Interface(False{}))
		require.Equal(t, "s", Interface(String("s")))
		require.Equal(t, 3.14, Interface(Number(3.14)))
	})

	t.Run("empty containers are non-nil", func(t *testing.T) {
		require.Equal(t, []any{}, Interface(Array{}))
		require.Equal(t, map[string]any{}, Interface(Object{}))
	})

	t.Run("nested tree flattens recursively", func(t *testing.T) {
		v, err := Parse(`{"name": "n", "tags": [1, true, null], "meta": {"x": "y"}}`)
		require.NoError(t, err)
		require.Equal(t, map[string]any{
			"name": "n",
			"tags": []any{1.0, true, nil},
			"meta": map[string]any{"x": "y"},
		}, Interface(v))
	})

	t.Run("duplicate keys fold last-wins", func(t *testing.T) {
		v, err := Parse(`{"a": 1, "a": 2}`)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": 2.0}, Interface(v))
	})
}
