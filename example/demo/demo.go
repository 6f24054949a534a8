// Command demo declares a few sample flags and prints whatever was parsed.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/miniflag/miniflag"
)

func main() {
	var (
		help   bool
		output = "out"
		char   = 'A'
		number int
		ratio  = 123.123
	)

	s := miniflag.NewSet()
	s.Bool(&help, "-h", "--help", "show help message")
	s.String(&output, "-o", "--output", "set output file")
	s.Char(&char, "-c", "--char", "give me a char!")
	s.Int(&number, "-n", "--number", "print this number")
	s.Double(&ratio, "-d", "--double", "print a double")

	if err := s.Parse(os.Args); err != nil {
		os.Exit(1)
	}
	if help {
		s.PrintHelp(os.Stdout, "demo", "A sample application to showcase the library")
		return
	}

	label := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %s\n", label("Output file:"), output)
	fmt.Printf("%s %c\n", label("A char:     "), char)
	fmt.Printf("%s %d\n", label("A number:   "), number)
	fmt.Printf("%s %g\n", label("A double:   "), ratio)
}
