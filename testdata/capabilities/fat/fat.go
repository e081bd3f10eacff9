package fat

import "errors"

type Worker interface {
	Work() error
	Eat() error
	Sleep() error
}

type Human struct{}

func (Human) Work() error  { return nil }
func (Human) Eat() error   { return nil }
func (Human) Sleep() error { return nil }

type Robot struct{}

func (Robot) Work() error { return nil }

func (Robot) Eat() error {
	return errors.ErrUnsupported
}

func (Robot) Sleep() error {
	return errors.ErrUnsupported
}
