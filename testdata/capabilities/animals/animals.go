package animals

type Mover interface {
	Move() string
}

type SoundMaker interface {
	MakeSound() string
}

type Creature interface {
	Mover
	SoundMaker
}

type Flyer interface {
	Fly() string
}

type Runner interface {
	Run() string
}

type Duck struct{}

func (Duck) Move() string      { return "moving" }
func (Duck) MakeSound() string { return "quack" }
func (Duck) Fly() string       { return "flying" }
func (Duck) Run() string       { return "running" }

type Ostrich struct{}

func (*Ostrich) Move() string      { return "moving" }
func (*Ostrich) MakeSound() string { return "boom" }
func (*Ostrich) Run() string       { return "running fast" }

type Rock struct{} // no capabilities
