// Package dip demonstrates the Dependency Inversion Principle.
package dip

import (
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/dip/correct"
	"github.com/olehluchkiv/gosolid/internal/examples/dip/incorrect"
)

// Example returns the DIP example.
func Example() example.Example {
	return example.Example{
		Name:          "dip",
		Principle:     example.DIP,
		Summary:       "UserManager receives a Database instead of constructing MySQL itself",
		IncorrectDemo: incorrect.Demo,
		CorrectDemo:   correct.Demo,
		Packages: map[example.Variant]string{
			example.Incorrect: "internal/examples/dip/incorrect",
			example.Correct:   "internal/examples/dip/correct",
		},
	}
}
