package miniflag

// Kind identifies the shape of the value a flag takes. The set is closed: a
// flag is either a bare switch or takes exactly one value token of one of
// the four remaining shapes. A Flag gets its kind from the Set method that
// defined it, so kind and destination type cannot disagree.
type Kind int

const (
	Bool Kind = iota
	Char
	Str
	Int
	Double
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Str:
		return "str"
	case Int:
		return "int"
	case Double:
		return "double"
	}
	return "unknown"
}

// placeholder returns the value token displayed after the flag names in help
// output. It is empty for Bool, which takes no value.
func (k Kind) placeholder() string {
	switch k {
	case Char:
		return "<char>"
	case Str:
		return "<str>"
	case Int:
		return "<int>"
	case Double:
		return "<double>"
	}
	return ""
}

// usageWord returns the value description used in the diagnostic line
// printed before a parse error. The wording differs from placeholder.
func (k Kind) usageWord() string {
	switch k {
	case Char:
		return "<char>"
	case Str:
		return "<string>"
	case Int:
		return "<integer>"
	case Double:
		return "<double>"
	}
	return ""
}

// missingCode returns the error code reported when the value token of a flag
// of this kind is absent.
func (k Kind) missingCode() Code {
	switch k {
	case Char:
		return MissingChar
	case Str:
		return MissingStr
	case Int:
		return MissingInt
	case Double:
		return MissingDouble
	}
	return UnknownType
}
