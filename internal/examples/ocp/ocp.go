// Package ocp demonstrates the Open/Closed Principle.
package ocp

import (
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/ocp/correct"
	"github.com/olehluchkiv/gosolid/internal/examples/ocp/incorrect"
)

// Example returns the OCP example.
func Example() example.Example {
	return example.Example{
		Name:          "ocp",
		Principle:     example.OCP,
		Summary:       "area calculation moved from a type switch onto the shapes",
		IncorrectDemo: incorrect.Demo,
		CorrectDemo:   correct.Demo,
		Packages: map[example.Variant]string{
			example.Incorrect: "internal/examples/ocp/incorrect",
			example.Correct:   "internal/examples/ocp/correct",
		},
	}
}
