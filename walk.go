package jparse

import "strconv"

// SkipAll stops a walk early without reporting an error.
var SkipAll error = skipAllError{}

type skipAllError struct{}

func (skipAllError) Error() string { return "skip everything and stop the walk" }

// WalkFunc is called once per value during a walk. path is the JSON-pointer
// style location of the value ("" for the root, "/users/0/name" for nested
// values). Returning SkipAll stops the walk cleanly; any other error aborts it
// and is returned from Walk.
type WalkFunc func(path string, v Value) error

// Walk traverses a Value tree depth-first in source order, calling fn for the
// root and every nested value.
func Walk(v Value, fn WalkFunc) error {
	err := walk("", v, fn)
	if err == SkipAll {
		return nil
	}
	return err
}

func walk(path string, v Value, fn WalkFunc) error {
	if err := fn(path, v); err != nil {
		return err
	}
	switch v := v.(type) {
	case Array:
		for i, elem := range v {
			if err := walk(path+"/"+strconv.Itoa(i), elem, fn); err != nil {
				return err
			}
		}
	case Object:
		for _, mem := range v {
			if err := walk(path+"/"+escapePointer(mem.Key), mem.Value, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// escapePointer applies the RFC 6901 token escapes.
func escapePointer(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
