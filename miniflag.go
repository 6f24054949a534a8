package miniflag

import (
	"fmt"
	"io"
	"os"
)

// Set holds flag definitions in declaration order and parses argument
// vectors against them. A Set retains no state between calls to Parse: it is
// safe to parse several argument vectors one after the other, but not to use
// the same Set from multiple goroutines, since destinations are written
// without synchronization.
type Set struct {
	flags   []*Flag
	out     io.Writer
	targets map[interface{}]bool // duplicate detection
}

// NewSet returns an empty Set. Diagnostic lines go to standard output unless
// redirected with SetOutput.
func NewSet() *Set {
	return &Set{
		out:     os.Stdout,
		targets: make(map[interface{}]bool),
	}
}

// SetOutput redirects the diagnostic lines printed by Parse before it
// returns an error.
func (s *Set) SetOutput(w io.Writer) {
	s.out = w
}

// Flag is one definition of a Set: a value kind, a typed destination, the
// short and long names matched against argument tokens, and a line of help
// text. Flags are created with the Set definition methods.
type Flag struct {
	kind  Kind
	val   value
	short string
	long  string
	doc   string
}

// Kind returns the kind of value the flag takes.
func (f *Flag) Kind() Kind { return f.kind }

// matches returns true if tok equals the short or the long name. An empty
// name never matches.
func (f *Flag) matches(tok string) bool {
	return (f.short != "" && tok == f.short) || (f.long != "" && tok == f.long)
}

// Bool defines a flag which takes no value token: its presence writes true
// to the destination. An absent flag leaves the destination alone, so its
// initial value is the default.
//
// Names are matched against single argument tokens by exact string equality,
// nothing more: no prefix matching, no grouping of short flags, no
// "name=value" splitting. Either name can be empty, but not both. The same
// conventions apply to the other definition methods. Definition errors are
// bugs in the program and panic; errors in user input are returned by Parse.
func (s *Set) Bool(dest *bool, short, long, doc string) *Flag {
	if dest == nil {
		panic(fmt.Errorf(`destination for flag "%s" is nil`, flagName(short, long)))
	}
	return s.def(Bool, boolValue{dest}, dest, short, long, doc)
}

// Char defines a flag taking one value token of exactly one character.
func (s *Set) Char(dest *rune, short, long, doc string) *Flag {
	if dest == nil {
		panic(fmt.Errorf(`destination for flag "%s" is nil`, flagName(short, long)))
	}
	return s.def(Char, charValue{dest}, dest, short, long, doc)
}

// String defines a flag taking one value token, written to the destination
// verbatim.
func (s *Set) String(dest *string, short, long, doc string) *Flag {
	if dest == nil {
		panic(fmt.Errorf(`destination for flag "%s" is nil`, flagName(short, long)))
	}
	return s.def(Str, stringValue{dest}, dest, short, long, doc)
}

// Int defines a flag taking one value token holding a base-10 integer.
func (s *Set) Int(dest *int, short, long, doc string) *Flag {
	if dest == nil {
		panic(fmt.Errorf(`destination for flag "%s" is nil`, flagName(short, long)))
	}
	return s.def(Int, intValue{dest}, dest, short, long, doc)
}

// Double defines a flag taking one value token holding a floating-point
// number.
func (s *Set) Double(dest *float64, short, long, doc string) *Flag {
	if dest == nil {
		panic(fmt.Errorf(`destination for flag "%s" is nil`, flagName(short, long)))
	}
	return s.def(Double, doubleValue{dest}, dest, short, long, doc)
}

// def appends a flag to the set. It panics on definition bugs: a flag
// without any name can never match, and a destination assigned twice would
// be written by two distinct flags. Duplicate names are deliberately not
// rejected; see the package documentation for how they parse.
func (s *Set) def(kind Kind, val value, dest interface{}, short, long, doc string) *Flag {
	if short == "" && long == "" {
		panic(fmt.Errorf("a flag needs a short or a long name"))
	}
	if s.targets[dest] {
		panic(fmt.Errorf(`destination for flag "%s" is already assigned`, flagName(short, long)))
	}
	f := &Flag{kind: kind, val: val, short: short, long: long, doc: doc}
	s.flags = append(s.flags, f)
	s.targets[dest] = true
	return f
}
