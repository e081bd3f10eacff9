// Package correct splits the worker contract so Robot only signs up for work.
package correct

import (
	"fmt"
	"io"
)

// Workable is implemented by anything that works.
type Workable interface {
	Work()
}

// Eatable is implemented by anything that eats.
type Eatable interface {
	Eat()
}

// Sleepable is implemented by anything that sleeps.
type Sleepable interface {
	Sleep()
}

// Human works, eats and sleeps.
type Human struct {
	out io.Writer
}

// NewHuman returns a human printing to out.
func NewHuman(out io.Writer) *Human { return &Human{out: out} }

func (h *Human) Work()  { fmt.Fprintln(h.out, "Human is working") }
func (h *Human) Eat()   { fmt.Fprintln(h.out, "Human is eating") }
func (h *Human) Sleep() { fmt.Fprintln(h.out, "Human is sleeping") }

// Robot only works.
type Robot struct {
	out io.Writer
}

// NewRobot returns a robot printing to out.
func NewRobot(out io.Writer) *Robot { return &Robot{out: out} }

func (r *Robot) Work() { fmt.Fprintln(r.out, "Robot is working") }

var (
	_ Workable  = (*Human)(nil)
	_ Eatable   = (*Human)(nil)
	_ Sleepable = (*Human)(nil)
	_ Workable  = (*Robot)(nil)
)

// Shift drives workers through the capabilities they declare.
type Shift struct{}

func (Shift) Work(w Workable)  { w.Work() }
func (Shift) Break(e Eatable)  { e.Eat() }
func (Shift) Rest(s Sleepable) { s.Sleep() }

// Demo runs a shift with a human and a robot.
func Demo(w io.Writer) error {
	shift := Shift{}
	human := NewHuman(w)
	robot := NewRobot(w)

	shift.Work(human)
	shift.Break(human)
	shift.Rest(human)

	shift.Work(robot)
	return nil
}
