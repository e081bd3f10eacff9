// Package srp demonstrates the Single Responsibility Principle.
package srp

import (
	"log/slog"

	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/srp/correct"
	"github.com/olehluchkiv/gosolid/internal/examples/srp/incorrect"
)

// Example returns the SRP example. With a logger, the correct version swaps
// its console creation logger for a structured one.
func Example() example.Example {
	return example.Example{
		Name:          "srp",
		Principle:     example.SRP,
		Summary:       "user creation split into validator, repository, mailer, logger and reporter",
		IncorrectDemo: incorrect.Demo,
		CorrectDemo:   correct.Demo,
		CorrectWithLogger: func(logger *slog.Logger) example.Demo {
			return correct.LoggedDemo(logger)
		},
		Packages: map[example.Variant]string{
			example.Incorrect: "internal/examples/srp/incorrect",
			example.Correct:   "internal/examples/srp/correct",
		},
	}
}
