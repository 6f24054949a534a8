package miniflag

import (
	"fmt"
	"io"
	"testing"
)

func TestDefNilDestination(t *testing.T) {
	s := NewSet()
	defer panicHandler(`destination for flag "-h,--help" is nil`, t)
	s.Bool(nil, "-h", "--help", "show help message")
}

func TestDefNilDestinationLongOnly(t *testing.T) {
	s := NewSet()
	defer panicHandler(`destination for flag "--number" is nil`, t)
	s.Int(nil, "", "--number", "print this number")
}

func TestDefNoName(t *testing.T) {
	s := NewSet()
	defer panicHandler("a flag needs a short or a long name", t)
	b := false
	s.Bool(&b, "", "", "can never match")
}

func TestDefDuplicateDestination(t *testing.T) {
	s := NewSet()
	defer panicHandler(`destination for flag "--delta" is already assigned`, t)
	n := 0
	s.Int(&n, "-n", "--number", "print this number")
	s.Int(&n, "", "--delta", "another number")
}

func TestDefDuplicateNamesAllowed(t *testing.T) {
	// not a definition error, see the package documentation
	s := NewSet()
	a, b := false, false
	s.Bool(&a, "-x", "", "first")
	s.Bool(&b, "-x", "", "second")
	if len(s.flags) != 2 {
		t.Errorf("expected 2 flags, got %d", len(s.flags))
	}
}

func TestDefKinds(t *testing.T) {
	s := NewSet()
	var (
		b  bool
		c  rune
		st string
		n  int
		d  float64
	)
	kinds := []Kind{
		s.Bool(&b, "-b", "", "a bool").Kind(),
		s.Char(&c, "-c", "", "a char").Kind(),
		s.String(&st, "-s", "", "a string").Kind(),
		s.Int(&n, "-n", "", "an int").Kind(),
		s.Double(&d, "-d", "", "a double").Kind(),
	}
	expected := []Kind{Bool, Char, Str, Int, Double}
	for i, k := range kinds {
		if k != expected[i] {
			t.Errorf("kind at %d is %v, expected %v", i, k, expected[i])
		}
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		Bool:     "bool",
		Char:     "char",
		Str:      "str",
		Int:      "int",
		Double:   "double",
		Kind(42): "unknown",
	}
	for k, expected := range names {
		if k.String() != expected {
			t.Errorf(`Kind(%d).String() is "%s", expected "%s"`, int(k), k.String(), expected)
		}
	}
}

// helpers

func panicHandler(expected string, t *testing.T) {
	t.Helper()
	err := recover()
	if err == nil {
		if len(expected) > 0 {
			t.Errorf(`(recovery) no error caught, expected: "%s"`, expected)
		}
	} else {
		if e, ok := err.(error); !ok {
			t.Errorf("(recovery) unexpected error: %v", err)
		} else {
			if e.Error() != expected {
				t.Errorf(`(recovery) unexpected error message: "%s" expected: "%s"`, err, expected)
			}
		}
	}
}

func matchErrorMessage(err error, expected string) error {
	if err == nil {
		return fmt.Errorf(`expected error message missing: "%s"`, expected)
	} else if err.Error() != expected {
		return fmt.Errorf(`unexpected error message: "%s", expected: "%s"`, err.Error(), expected)
	}
	return nil
}

func matchResult(err error, test func() error) error {
	if err != nil {
		return fmt.Errorf(`unexpected error: "%s"`, err.Error())
	}
	if e := test(); e != nil {
		return e
	}
	return nil
}

// demoVars are the sample flags of the original demo program, used by many
// tests.
type demoVars struct {
	help bool
	out  string
	ch   rune
	n    int
	d    float64
}

func demoSet(w io.Writer) (*Set, *demoVars) {
	v := &demoVars{out: "out", ch: 'A', d: 123.123}
	s := NewSet()
	if w != nil {
		s.SetOutput(w)
	}
	s.Bool(&v.help, "-h", "--help", "show help message")
	s.String(&v.out, "-o", "--output", "set output file")
	s.Char(&v.ch, "-c", "--char", "give me a char!")
	s.Int(&v.n, "-n", "--number", "print this number")
	s.Double(&v.d, "-d", "--double", "print a double")
	return s, v
}
