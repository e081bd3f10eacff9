// Package correct lets each shape compute its own area, so AreaCalculator
// never changes when shapes are added.
package correct

import (
	"fmt"
	"io"
	"math"
)

// Shape is implemented by every variant that knows its own area.
type Shape interface {
	Area() float64
}

// Rectangle is a Shape.
type Rectangle struct {
	Width  float64
	Height float64
}

func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Circle is a Shape.
type Circle struct {
	Radius float64
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Triangle is added without touching AreaCalculator.
type Triangle struct {
	Base   float64
	Height float64
}

func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }

// AreaCalculator sums shapes without knowing their types.
type AreaCalculator struct{}

// Area returns the area of shape.
func (AreaCalculator) Area(shape Shape) float64 {
	return shape.Area()
}

// TotalArea returns the sum of the areas of shapes.
func (AreaCalculator) TotalArea(shapes []Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// Demo prints each area and the total.
func Demo(w io.Writer) error {
	calc := AreaCalculator{}
	shapes := []Shape{
		Rectangle{Width: 5, Height: 4},
		Circle{Radius: 3},
		Triangle{Base: 3, Height: 6},
	}

	for _, s := range shapes {
		fmt.Fprintf(w, "Area: %v\n", calc.Area(s))
	}
	fmt.Fprintf(w, "Total area: %v\n", calc.TotalArea(shapes))
	return nil
}
