package example

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Principle identifies the design principle an example demonstrates.
type Principle string

const (
	SRP Principle = "SRP"
	OCP Principle = "OCP"
	LSP Principle = "LSP"
	ISP Principle = "ISP"
	DIP Principle = "DIP"
)

var principleTitles = map[Principle]string{
	SRP: "Single Responsibility",
	OCP: "Open/Closed",
	LSP: "Liskov Substitution",
	ISP: "Interface Segregation",
	DIP: "Dependency Inversion",
}

// Title returns the long name of the principle.
func (p Principle) Title() string {
	if t, ok := principleTitles[p]; ok {
		return t
	}
	return string(p)
}

// Variant selects one side of an example.
type Variant string

const (
	Incorrect Variant = "incorrect"
	Correct   Variant = "correct"
)

// Variants lists both sides in demonstration order.
var Variants = []Variant{Incorrect, Correct}

// ParseVariant parses "incorrect" or "correct" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(s)) {
	case Incorrect:
		return Incorrect, nil
	case Correct:
		return Correct, nil
	default:
		return "", fmt.Errorf("unknown variant: %s (valid: incorrect, correct)", s)
	}
}

// Demo is a demonstration routine. It writes human-readable lines to w.
type Demo func(w io.Writer) error

// Example pairs the violating and the adhering rendition of one principle.
type Example struct {
	Name      string
	Principle Principle
	Summary   string

	IncorrectDemo Demo
	CorrectDemo   Demo

	// CorrectWithLogger optionally builds a correct demo that reports its
	// events to a structured logger instead of the console.
	CorrectWithLogger func(logger *slog.Logger) Demo

	// Packages maps each variant to its package path relative to the module root.
	Packages map[Variant]string
}

// Demo returns the demonstration routine for v.
func (e Example) Demo(v Variant) (Demo, error) {
	switch v {
	case Incorrect:
		return e.IncorrectDemo, nil
	case Correct:
		return e.CorrectDemo, nil
	default:
		return nil, fmt.Errorf("example %s: unknown variant %q", e.Name, v)
	}
}

// Run runs the demonstration for a single variant.
func (e Example) Run(v Variant, w io.Writer) error {
	demo, err := e.Demo(v)
	if err != nil {
		return err
	}
	return e.run(v, demo, w)
}

// RunWithLogger is Run, except that the correct variant reports through
// logger when the example supports it.
func (e Example) RunWithLogger(v Variant, w io.Writer, logger *slog.Logger) error {
	if v != Correct || e.CorrectWithLogger == nil {
		return e.Run(v, w)
	}
	return e.run(v, e.CorrectWithLogger(logger), w)
}

func (e Example) run(v Variant, demo Demo, w io.Writer) error {
	if demo == nil {
		return fmt.Errorf("example %s has no %s demo", e.Name, v)
	}
	if err := demo(w); err != nil {
		return fmt.Errorf("example %s (%s): %w", e.Name, v, err)
	}
	return nil
}

// Heading is the line printed before a variant's demo output.
func (e Example) Heading(v Variant) string {
	return fmt.Sprintf("=== %s: %s (%s) ===", e.Principle, e.Principle.Title(), v)
}

// RunAll runs the incorrect demo followed by the correct one, each after
// its heading line.
func (e Example) RunAll(w io.Writer) error {
	for _, v := range Variants {
		if _, err := fmt.Fprintln(w, e.Heading(v)); err != nil {
			return err
		}
		if err := e.Run(v, w); err != nil {
			return err
		}
	}
	return nil
}
