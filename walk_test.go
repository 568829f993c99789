package jparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	t.Run("visits depth-first in source order", func(t *testing.T) {
		v, err := Parse(`{"a": [1, {"b": null}], "c": true}`)
		require.NoError(t, err)

		var paths []string
		require.NoError(t, Walk(v, func(path string, v Value) error {
			paths = append(paths, path)
			return nil
		}))
		require.Equal(t, []string{
			"",
			"/a",
			"/a/0",
			"/a/1",
			"/a/1/b",
			"/c",
		}, paths)
	})

	t.Run("scalar root", func(t *testing.T) {
		var got Value
		require.NoError(t, Walk(Number(1), func(path string, v Value) error {
			require.Equal(t, "", path)
			got = v
			return nil
		}))
		require.Equal(t, Number(1), got)
	})

	t.Run("keys are pointer-escaped", func(t *testing.T) {
		v, err := Parse(`{"a/b": {"c~d": 1}}`)
		require.NoError(t, err)

		var paths []string
		require.NoError(t, Walk(v, func(path string, v Value) error {
			paths = append(paths, path)
			return nil
		}))
		require.Equal(t, []string{"", "/a~1b", "/a~1b/c~0d"}, paths)
	})

	t.Run("SkipAll stops without error", func(t *testing.T) {
		v, err := Parse(`[1, 2, 3]`)
		require.NoError(t, err)

		var visited int
		require.NoError(t, Walk(v, func(path string, v Value) error {
			visited++
			if path == "/1" {
				return SkipAll
			}
			return nil
		}))
		require.Equal(t, 3, visited) // root, /0, /1
	})

	t.Run("errors abort and propagate", func(t *testing.T) {
		v, err := Parse(`[1, 2, 3]`)
		require.NoError(t, err)

		boom := errors.New("boom")
		var visited int
		err = Walk(v, func(path string, v Value) error {
			visited++
			if path == "/0" {
				return boom
			}
			return nil
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 2, visited)
	})
}
