package miniflag

import (
	"fmt"
	"io"
)

// PrintHelp uses a Writer to print the program name, the description, and
// one two-line block per flag in definition order. The first line of a block
// shows the short name, a comma when both names are defined, the long name,
// and the value placeholder of the flag's kind (empty for Bool). The second
// line is the help text, indented.
//
// The output is a pure function of the arguments and the flag table: no
// sorting, no column alignment, no line wrapping.
func (s *Set) PrintHelp(w io.Writer, progName, description string) {
	fmt.Fprintln(w, progName)
	fmt.Fprintln(w, description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	for _, f := range s.flags {
		comma := ""
		if f.short != "" && f.long != "" {
			comma = ","
		}
		fmt.Fprintf(w, "    %s%s%s %s\n        %s\n", f.short, comma, f.long, f.kind.placeholder(), f.doc)
	}
}
