package miniflag

import (
	"strconv"
	"unicode/utf8"
)

// A value is the typed destination of a flag. The concrete types below form
// a closed set, so a flag's kind and the type of its storage are bound
// together when the flag is defined and cannot disagree afterwards.
type value interface {
	// store converts tok and writes the result to the destination. On
	// failure it returns a ParseError with Code and Token set; the caller
	// fills in the flag names.
	store(tok string) *ParseError
}

type boolValue struct{ p *bool }

// store ignores tok: the presence of the flag token sets the destination.
func (v boolValue) store(string) *ParseError {
	*v.p = true
	return nil
}

type charValue struct{ p *rune }

func (v charValue) store(tok string) *ParseError {
	if utf8.RuneCountInString(tok) != 1 {
		return &ParseError{Code: CharWrongArg, Token: tok}
	}
	r, _ := utf8.DecodeRuneInString(tok)
	*v.p = r
	return nil
}

type stringValue struct{ p *string }

// store writes the token itself, with no copying or unescaping.
func (v stringValue) store(tok string) *ParseError {
	*v.p = tok
	return nil
}

type intValue struct{ p *int }

// store requires the whole token to be a base-10 integer literal within the
// bounds of int.
func (v intValue) store(tok string) *ParseError {
	n, err := strconv.ParseInt(tok, 10, 0)
	if err != nil {
		return &ParseError{Code: NotAnInt, Token: tok}
	}
	*v.p = int(n)
	return nil
}

type doubleValue struct{ p *float64 }

// store requires the whole token to be a floating-point literal; values out
// of the range of float64 fail.
func (v doubleValue) store(tok string) *ParseError {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return &ParseError{Code: NotADouble, Token: tok}
	}
	*v.p = f
	return nil
}
