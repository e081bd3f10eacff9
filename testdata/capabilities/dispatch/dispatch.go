package dispatch

type Square struct{ Side float64 }

type Sizer interface {
	Size() float64
}

// Describe inspects the dynamic type and should be flagged.
func Describe(v any) float64 {
	switch s := v.(type) {
	case Square:
		return s.Side * s.Side
	}
	return 0
}

// Passthrough takes any but never inspects it.
func Passthrough(v interface{}) interface{} {
	return v
}

// Size goes through a capability.
func Size(s Sizer) float64 {
	return s.Size()
}

// Generic type parameters are not empty-interface parameters.
func Generic[T any](v T) T {
	return v
}
