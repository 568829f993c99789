package jparse

import (
	"strconv"
	"unicode/utf8"
)

// Parse reads a complete JSON document from input and returns its Value tree.
// Exactly one value is accepted; any non-whitespace character after it is an
// error. On failure the returned error is ErrUnexpectedEnd, a *TokenError or a
// *NumberError, and no Value is returned.
func Parse(input string) (Value, error) {
	p := &parser{src: []rune(input)}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if i, ch, ok := p.next(); ok {
		return nil, &TokenError{Ch: ch, Pos: i}
	}
	return v, nil
}

// parser is a cursor over the input as decoded characters. It advances
// strictly left to right; pos doubles as the character offset reported in
// errors. Each Parse call owns its own parser, so independent calls are safe
// to run concurrently.
type parser struct {
	src []rune
	pos int
}

// peek returns the next character without consuming it.
func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

// next consumes the next character and returns its position.
func (p *parser) next() (int, rune, bool) {
	if p.pos >= len(p.src) {
		return p.pos, 0, false
	}
	i := p.pos
	p.pos++
	return i, p.src[i], true
}

// consume advances past the next character only if it equals want.
func (p *parser) consume(want rune) bool {
	if ch, ok := p.peek(); ok && ch == want {
		p.pos++
		return true
	}
	return false
}

// require consumes the next character, failing unless it equals want.
func (p *parser) require(want rune) error {
	i, ch, ok := p.next()
	if !ok {
		return ErrUnexpectedEnd
	}
	if ch != want {
		return &TokenError{Ch: ch, Pos: i}
	}
	return nil
}

// skipSpace consumes a maximal run of JSON whitespace.
func (p *parser) skipSpace() {
	for {
		switch ch, ok := p.peek(); {
		case !ok:
			return
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			p.pos++
		default:
			return
		}
	}
}

// parseValue dispatches on one character to the matching production. It skips
// whitespace both before and after the value, so no caller has to manage
// surrounding blanks itself.
func (p *parser) parseValue() (Value, error) {
	p.skipSpace()

	i, ch, ok := p.next()
	if !ok {
		return nil, ErrUnexpectedEnd
	}

	var v Value
	var err error
	switch {
	case ch == 'n':
		v, err = p.parseLiteral("ull", Null{})
	case ch == 't':
		v, err = p.parseLiteral("rue", True{})
	case ch == 'f':
		v, err = p.parseLiteral("alse", False{})
	case ch == '"':
		v, err = p.parseString()
	case ch == '[':
		v, err = p.parseArray()
	case ch == '{':
		v, err = p.parseObject()
	case ch == '-' || ('0' <= ch && ch <= '9'):
		v, err = p.parseNumber(ch)
	default:
		return nil, &TokenError{Ch: ch, Pos: i}
	}
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	return v, nil
}

// parseLiteral consumes the remaining characters of a keyword whose first
// character the dispatcher already took.
func (p *parser) parseLiteral(rest string, v Value) (Value, error) {
	for _, want := range rest {
		i, ch, ok := p.next()
		if !ok {
			return nil, ErrUnexpectedEnd
		}
		if ch != want {
			return nil, &TokenError{Ch: ch, Pos: i}
		}
	}
	return v, nil
}

// parseString consumes a string body after the opening quote. Escapes are
// resolved as they are read; \b and \f are not part of the accepted set and
// fail like any other unknown escape.
func (p *parser) parseString() (String, error) {
	var buf []rune
	for {
		_, ch, ok := p.next()
		if !ok {
			return "", ErrUnexpectedEnd
		}
		switch ch {
		case '"':
			return String(buf), nil
		case '\\':
			i, esc, ok := p.next()
			if !ok {
				return "", ErrUnexpectedEnd
			}
			switch esc {
			case '"', '\\', '/':
				buf = append(buf, esc)
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				r, err := p.parseUnicode(i)
				if err != nil {
					return "", err
				}
				buf = append(buf, r)
			default:
				return "", &TokenError{Ch: esc, Pos: i}
			}
		default:
			buf = append(buf, ch)
		}
	}
}

// parseUnicode consumes the four hex digits of a \uXXXX escape. Each escape
// decodes independently; surrogate pairs spanning two escapes are not
// reassembled, so an unpaired half fails at the escape's 'u' (its position is
// passed in by the caller).
func (p *parser) parseUnicode(start int) (rune, error) {
	var v uint32
	for range 4 {
		i, ch, ok := p.next()
		if !ok {
			return 0, ErrUnexpectedEnd
		}
		d, ok := hexDigit(ch)
		if !ok {
			return 0, &TokenError{Ch: ch, Pos: i}
		}
		v = v<<4 | uint32(d)
	}
	if !utf8.ValidRune(rune(v)) {
		return 0, &TokenError{Ch: 'u', Pos: start}
	}
	return rune(v), nil
}

func hexDigit(ch rune) (uint32, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return uint32(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return uint32(ch-'A') + 10, true
	}
	return 0, false
}

// parseNumber consumes the number grammar starting from an already-consumed
// first character. A lone 0 yields zero immediately unless a fraction or
// exponent follows, which rules out superfluous leading zeros. The fraction
// accepts zero digits after the dot (so "1." is legal); the exponent requires
// at least one. The assembled literal, exponent included, converts through
// strconv.ParseFloat.
func (p *parser) parseNumber(first rune) (Value, error) {
	var buf []rune
	switch {
	case first == '0':
		ch, ok := p.peek()
		if !ok || (ch != '.' && ch != 'e' && ch != 'E') {
			return Number(0), nil
		}
		buf = append(buf, '0')
	case first == '-':
		i, ch, ok := p.next()
		if !ok {
			return nil, ErrUnexpectedEnd
		}
		if ch < '0' || ch > '9' {
			return nil, &TokenError{Ch: ch, Pos: i}
		}
		buf = append(buf, '-', ch)
		buf = p.collectDigits(buf)
	default: // 1-9
		buf = append(buf, first)
		buf = p.collectDigits(buf)
	}

	if p.consume('.') {
		buf = append(buf, '.')
		buf = p.collectDigits(buf)
	}

	if ch, ok := p.peek(); ok && (ch == 'e' || ch == 'E') {
		p.pos++
		buf = append(buf, ch)
		if sign, ok := p.peek(); ok && (sign == '+' || sign == '-') {
			p.pos++
			buf = append(buf, sign)
		}
		i, ch, ok := p.next()
		if !ok {
			return nil, ErrUnexpectedEnd
		}
		if ch < '0' || ch > '9' {
			return nil, &TokenError{Ch: ch, Pos: i}
		}
		buf = append(buf, ch)
		buf = p.collectDigits(buf)
	}

	lit := string(buf)
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, &NumberError{Literal: lit, Err: err}
	}
	return Number(f), nil
}

// collectDigits appends a maximal run of decimal digits to buf.
func (p *parser) collectDigits(buf []rune) []rune {
	for {
		ch, ok := p.peek()
		if !ok || ch < '0' || ch > '9' {
			return buf
		}
		p.pos++
		buf = append(buf, ch)
	}
}

// parseArray consumes array elements after the opening bracket. A comma must
// be followed by another value, so trailing commas fail at the closing
// bracket.
func (p *parser) parseArray() (Value, error) {
	arr := Array{}
	p.skipSpace()
	if p.consume(']') {
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		if p.consume(',') {
			continue
		}
		if err := p.require(']'); err != nil {
			return nil, err
		}
		return arr, nil
	}
}

// parseObject consumes key-value members after the opening brace. Keys go
// through the string production, so they decode escapes like any other
// string. Duplicate keys are appended like any other member.
func (p *parser) parseObject() (Value, error) {
	obj := Object{}
	p.skipSpace()
	if p.consume('}') {
		return obj, nil
	}
	for {
		p.skipSpace()
		if err := p.require('"'); err != nil {
			return nil, err
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.require(':'); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: string(key), Value: v})

		if p.consume(',') {
			continue
		}
		if err := p.require('}'); err != nil {
			return nil, err
		}
		return obj, nil
	}
}
