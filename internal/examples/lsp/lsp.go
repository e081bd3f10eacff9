// Package lsp demonstrates the Liskov Substitution Principle.
package lsp

import (
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/lsp/correct"
	"github.com/olehluchkiv/gosolid/internal/examples/lsp/incorrect"
)

// Example returns the LSP example.
func Example() example.Example {
	return example.Example{
		Name:          "lsp",
		Principle:     example.LSP,
		Summary:       "flying and running as opt-in capabilities instead of a Bird.Fly that throws",
		IncorrectDemo: incorrect.Demo,
		CorrectDemo:   correct.Demo,
		Packages: map[example.Variant]string{
			example.Incorrect: "internal/examples/lsp/incorrect",
			example.Correct:   "internal/examples/lsp/correct",
		},
	}
}
