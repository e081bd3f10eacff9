// Package correct keeps only universal behavior on the Animal base and
// expresses flying and running as capabilities a type opts into.
package correct

import (
	"fmt"
	"io"
)

// Mover is implemented by anything that moves.
type Mover interface {
	Move()
}

// SoundMaker is implemented by anything that makes a sound.
type SoundMaker interface {
	MakeSound()
}

// Creature is what every animal can do.
type Creature interface {
	Mover
	SoundMaker
}

// Flyer is opted into only by animals that fly.
type Flyer interface {
	Fly()
}

// Runner is opted into only by animals that run.
type Runner interface {
	Run()
}

// Animal carries the behavior every animal genuinely shares.
type Animal struct {
	out io.Writer
}

// Move implements Mover.
func (a *Animal) Move() {
	fmt.Fprintln(a.out, "Moving...")
}

// MakeSound implements SoundMaker with a generic sound.
func (a *Animal) MakeSound() {
	fmt.Fprintln(a.out, "Making sound...")
}

// Duck moves, flies, runs and quacks.
type Duck struct {
	Animal
}

// NewDuck returns a duck printing to out.
func NewDuck(out io.Writer) *Duck { return &Duck{Animal{out: out}} }

func (d *Duck) Fly() {
	fmt.Fprintln(d.out, "Duck flying!")
}

func (d *Duck) Run() {
	fmt.Fprintln(d.out, "Duck running!")
}

func (d *Duck) MakeSound() {
	fmt.Fprintln(d.out, "Quack!")
}

// Ostrich runs but does not fly, and has no Fly method.
type Ostrich struct {
	Animal
}

// NewOstrich returns an ostrich printing to out.
func NewOstrich(out io.Writer) *Ostrich { return &Ostrich{Animal{out: out}} }

func (o *Ostrich) Run() {
	fmt.Fprintln(o.out, "Ostrich running fast!")
}

func (o *Ostrich) MakeSound() {
	fmt.Fprintln(o.out, "Boom!")
}

var (
	_ Creature = (*Duck)(nil)
	_ Flyer    = (*Duck)(nil)
	_ Runner   = (*Duck)(nil)
	_ Creature = (*Ostrich)(nil)
	_ Runner   = (*Ostrich)(nil)
)

// BirdManager only asks for the capability it uses.
type BirdManager struct{}

// MakeFly flies bird.
func (BirdManager) MakeFly(bird Flyer) {
	bird.Fly()
}

// MakeRun runs bird.
func (BirdManager) MakeRun(bird Runner) {
	bird.Run()
}

// Demo flies the duck and runs both birds.
func Demo(w io.Writer) error {
	manager := BirdManager{}
	duck := NewDuck(w)
	ostrich := NewOstrich(w)

	manager.MakeFly(duck)
	manager.MakeRun(duck)
	manager.MakeRun(ostrich)

	for _, c := range []Creature{duck, ostrich} {
		c.Move()
		c.MakeSound()
	}
	return nil
}
