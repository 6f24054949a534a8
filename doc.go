/*
Package miniflag parses command line arguments into program variables. The
program declares a table of flags, each binding a short name, a long name, a
value kind, and a destination it owns; parsing scans the argument vector,
converts matched values to the declared kind, and writes them in place. The
same table renders a help listing. There is nothing else: no subcommands, no
positional arguments, no "--flag=value" syntax, no grouped short flags, no
configuration files.

A complete program looks like this:

	package main

	import (
		"fmt"
		"os"

		"github.com/miniflag/miniflag"
	)

	func main() {
		var (
			help   bool
			output = "out"
			number int
		)

		s := miniflag.NewSet()
		s.Bool(&help, "-h", "--help", "show help message")
		s.String(&output, "-o", "--output", "set output file")
		s.Int(&number, "-n", "--number", "print this number")

		if err := s.Parse(os.Args); err != nil {
			os.Exit(1)
		}
		if help {
			s.PrintHelp(os.Stdout, "example", "A sample application")
			return
		}
		fmt.Println(output, number)
	}

Initial values of the destinations are the defaults: a flag absent from the
argument vector leaves its destination untouched.

# Matching And Values

A flag matches a token when the token equals its short or its long name,
case-sensitively and in full. The names carry no meaning beyond equality; "-n"
and "--number" are conventions of the caller, not of the package. A Bool flag
consumes no further token. Every other kind consumes exactly the next token
as its value: one character for Char, the verbatim token for Str, a whole
base-10 integer literal within the bounds of int for Int, a whole
floating-point literal for Double. A token that matches no flag ends the
parse immediately.

Parsing errors are returned as *ParseError values carrying a Code from a
closed set, and a diagnostic line is printed first (to standard output by
default, see Set.SetOutput), so a program that simply exits on error has
already told the user what was expected.

# Duplicate Names

The parser compares every defined flag against the token under the scan, and
a match does not end the comparison round. Two definitions sharing a name are
therefore both triggered by a single token, and a definition following a flag
that consumed its value is compared against the value token rather than the
flag token. Definitions are not checked for duplicate names; keeping names
unique is the caller's business.

Two deliberate differences from byte-oriented parsers: a Char value is one
character in the sense of one rune, so a single multi-byte character is
accepted; and numeric values must use up their whole token, so "42abc" is an
error rather than 42.
*/
package miniflag
