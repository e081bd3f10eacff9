// Package incorrect models every bird as a flyer, so Ostrich has to fail at
// run time when asked to fly.
package incorrect

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/gosolid/internal/capability"
)

// Flyer is what MakeBirdFly expects every bird to be.
type Flyer interface {
	Fly() error
}

// Bird is the base every bird embeds, flying included.
type Bird struct {
	out io.Writer
}

// NewBird returns a bird printing to out.
func NewBird(out io.Writer) *Bird { return &Bird{out: out} }

// Fly prints a flying line.
func (b *Bird) Fly() error {
	fmt.Fprintln(b.out, "Flying high in the sky!")
	return nil
}

// Duck flies like any bird.
type Duck struct {
	Bird
}

// NewDuck returns a duck printing to out.
func NewDuck(out io.Writer) *Duck { return &Duck{Bird{out: out}} }

// Fly prints the duck flying.
func (d *Duck) Fly() error {
	fmt.Fprintln(d.out, "Duck flying!")
	return nil
}

// Ostrich is a Bird, so it inherits a Fly it cannot honor.
type Ostrich struct {
	Bird
}

// NewOstrich returns an ostrich printing to out.
func NewOstrich(out io.Writer) *Ostrich { return &Ostrich{Bird{out: out}} }

// Fly always fails: ostriches inherited an operation they cannot perform.
func (o *Ostrich) Fly() error {
	return capability.Unsupported("Ostriches can't fly!")
}

// MakeBirdFly flies bird and returns whatever error it raises.
func MakeBirdFly(bird Flyer) error {
	return bird.Fly()
}

// Demo flies a bird, a duck and an ostrich, reporting the ostrich failure.
func Demo(w io.Writer) error {
	birds := []Flyer{NewBird(w), NewDuck(w), NewOstrich(w)}
	for _, b := range birds {
		if err := MakeBirdFly(b); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
	return nil
}
