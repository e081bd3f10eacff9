// Package incorrect bundles working, eating and sleeping into one Worker
// interface that Robot cannot fully honor.
package incorrect

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/gosolid/internal/capability"
)

// Worker bundles every operation a worker might have.
type Worker interface {
	Work() error
	Eat() error
	Sleep() error
}

// Human can honor all of Worker.
type Human struct {
	out io.Writer
}

// NewHuman returns a human printing to out.
func NewHuman(out io.Writer) *Human { return &Human{out: out} }

func (h *Human) Work() error {
	fmt.Fprintln(h.out, "Human is working")
	return nil
}

func (h *Human) Eat() error {
	fmt.Fprintln(h.out, "Human is eating")
	return nil
}

func (h *Human) Sleep() error {
	fmt.Fprintln(h.out, "Human is sleeping")
	return nil
}

// Robot is forced to implement Eat and Sleep.
type Robot struct {
	out io.Writer
}

// NewRobot returns a robot printing to out.
func NewRobot(out io.Writer) *Robot { return &Robot{out: out} }

func (r *Robot) Work() error {
	fmt.Fprintln(r.out, "Robot is working")
	return nil
}

func (r *Robot) Eat() error {
	return capability.Unsupported("Robots don't eat")
}

func (r *Robot) Sleep() error {
	return capability.Unsupported("Robots don't sleep")
}

// Demo runs every Worker operation on a human and a robot, reporting failures.
func Demo(w io.Writer) error {
	for _, worker := range []Worker{NewHuman(w), NewRobot(w)} {
		for _, op := range []func() error{worker.Work, worker.Eat, worker.Sleep} {
			if err := op(); err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
			}
		}
	}
	return nil
}
