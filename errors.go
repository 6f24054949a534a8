package miniflag

import "fmt"

// Code identifies the reason a parse failed.
type Code int

const (
	// UnknownType reports a flag whose kind is outside the closed set. It
	// cannot occur for flags defined through the Set methods.
	UnknownType Code = iota + 1
	// MissingChar, MissingStr, MissingInt and MissingDouble report a flag
	// whose value token is absent because the argument vector ended.
	MissingChar
	MissingStr
	MissingInt
	MissingDouble
	// CharWrongArg reports a Char value token which is not exactly one
	// character.
	CharWrongArg
	// UnknownFlag reports a token matching no defined flag.
	UnknownFlag
	// NotAnInt and NotADouble report value tokens which fail numeric
	// conversion or exceed the representable range.
	NotAnInt
	NotADouble
)

// ParseError is the error returned by Set.Parse. Short and Long name the
// offending flag and are empty when the code is UnknownFlag. Token is the
// offending input token, if there is one.
type ParseError struct {
	Code  Code
	Short string
	Long  string
	Token string
}

func (e *ParseError) Error() string {
	switch e.Code {
	case UnknownType:
		return fmt.Sprintf(`flag "%s" has an unknown kind`, e.name())
	case MissingChar:
		return fmt.Sprintf(`flag "%s" is missing its <char> value`, e.name())
	case MissingStr:
		return fmt.Sprintf(`flag "%s" is missing its <string> value`, e.name())
	case MissingInt:
		return fmt.Sprintf(`flag "%s" is missing its <integer> value`, e.name())
	case MissingDouble:
		return fmt.Sprintf(`flag "%s" is missing its <double> value`, e.name())
	case CharWrongArg:
		return fmt.Sprintf(`value "%s" of flag "%s" is not a single character`, e.Token, e.name())
	case UnknownFlag:
		return fmt.Sprintf(`unknown flag "%s"`, e.Token)
	case NotAnInt:
		return fmt.Sprintf(`value "%s" of flag "%s" is not an integer`, e.Token, e.name())
	case NotADouble:
		return fmt.Sprintf(`value "%s" of flag "%s" is not a number`, e.Token, e.name())
	}
	return "parse error"
}

// name joins the short and long names for error messages, omitting an
// undefined one.
func (e *ParseError) name() string {
	return flagName(e.Short, e.Long)
}

// flagName joins a short and a long name with a comma, or returns the one
// that is defined.
func flagName(short, long string) string {
	switch {
	case short == "":
		return long
	case long == "":
		return short
	}
	return short + "," + long
}
