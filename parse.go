package miniflag

import "fmt"

// Parse scans an argument vector and writes matched values to the flag
// destinations. args follows the os.Args convention: args[0] is the program
// name and is never matched. The result is nil unless there is an error.
//
// The scan is a single left-to-right pass. Each token is compared against
// every defined flag in definition order, and the scan does not stop at the
// first flag that matches: when two definitions share a name, one token
// triggers both. A flag taking a value consumes the following token as soon
// as it matches, so definitions later in the table are compared against the
// value token, not the flag token. A token matching no definition at all
// ends the parse with an UnknownFlag error.
//
// Errors are fatal to the call and destinations written before the error
// keep their values. Before returning an error, Parse prints a one-line
// diagnostic naming the offending flag (or token) and the expected value
// shape, so a caller that only forwards the error still leaves the user
// actionable text.
func (s *Set) Parse(args []string) error {
	for i := 1; i < len(args); i++ {
		found := false
		for _, f := range s.flags {
			if !f.matches(args[i]) {
				continue
			}
			found = true
			switch f.kind {
			case Bool:
				f.val.store("")
			case Char, Str, Int, Double:
				if i+1 >= len(args) {
					s.usage(f)
					return &ParseError{Code: f.kind.missingCode(), Short: f.short, Long: f.long}
				}
				if e := f.val.store(args[i+1]); e != nil {
					e.Short, e.Long = f.short, f.long
					s.usage(f)
					return e
				}
				i++
			default:
				return &ParseError{Code: UnknownType, Short: f.short, Long: f.long}
			}
		}
		if !found {
			fmt.Fprintf(s.out, "Error parsing flags: unknown flag \"%s\"\n", args[i])
			return &ParseError{Code: UnknownFlag, Token: args[i]}
		}
	}
	return nil
}

// usage prints the diagnostic line emitted before a value error. Both names
// appear even when one is empty, keeping the line shape fixed.
func (s *Set) usage(f *Flag) {
	fmt.Fprintf(s.out, "Usage: %s,%s %s\n", f.short, f.long, f.kind.usageWord())
}
