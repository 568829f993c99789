package jparse

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd reports that the input ran out where a character was
// required.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// TokenError reports a character that did not match any expected continuation
// of the grammar. Pos counts decoded characters from the start of the input,
// not raw bytes.
type TokenError struct {
	Ch  rune
	Pos int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("unexpected token %q at position %d", e.Ch, e.Pos)
}

// NumberError reports a number literal that passed the grammar but failed
// floating-point conversion. It is distinct from the two syntax error kinds.
type NumberError struct {
	Literal string
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("cannot convert number literal %q: %v", e.Literal, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }
