// Package isp demonstrates the Interface Segregation Principle.
package isp

import (
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/isp/correct"
	"github.com/olehluchkiv/gosolid/internal/examples/isp/incorrect"
)

// Example returns the ISP example.
func Example() example.Example {
	return example.Example{
		Name:          "isp",
		Principle:     example.ISP,
		Summary:       "a fat Worker interface split into Workable, Eatable and Sleepable",
		IncorrectDemo: incorrect.Demo,
		CorrectDemo:   correct.Demo,
		Packages: map[example.Variant]string{
			example.Incorrect: "internal/examples/isp/incorrect",
			example.Correct:   "internal/examples/isp/correct",
		},
	}
}
