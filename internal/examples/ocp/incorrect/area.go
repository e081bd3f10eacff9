// Package incorrect computes areas by inspecting the concrete shape type,
// so every new shape means editing AreaCalculator.
package incorrect

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrUnsupportedShape is returned for shapes CalculateArea has no case for.
var ErrUnsupportedShape = errors.New("Unsupported shape type")

// Rectangle is plain data; its formula lives in AreaCalculator.
type Rectangle struct {
	Width  float64
	Height float64
}

// Circle is plain data; its formula lives in AreaCalculator.
type Circle struct {
	Radius float64
}

// Triangle was added after AreaCalculator was written.
type Triangle struct {
	Base   float64
	Height float64
}

// AreaCalculator knows the formula of every shape it supports.
type AreaCalculator struct{}

// CalculateArea switches on the concrete type of shape.
func (AreaCalculator) CalculateArea(shape any) (float64, error) {
	switch s := shape.(type) {
	case Rectangle:
		return s.Width * s.Height, nil
	case Circle:
		return math.Pi * s.Radius * s.Radius, nil
	}
	return 0, fmt.Errorf("%T: %w", shape, ErrUnsupportedShape)
}

// Demo computes the rectangle and circle areas and reports the triangle failure.
func Demo(w io.Writer) error {
	calc := AreaCalculator{}

	rectArea, err := calc.CalculateArea(Rectangle{Width: 5, Height: 4})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Rectangle area: %v\n", rectArea)

	circleArea, err := calc.CalculateArea(Circle{Radius: 3})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Circle area: %v\n", circleArea)

	if _, err := calc.CalculateArea(Triangle{Base: 3, Height: 6}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return nil
}
