package form

import (
	"fmt"
	"strings"
)

// Dimensionality represents the spatial dimension of a tensor space
type Dimensionality uint8

const (
	D0 Dimensionality = iota // degenerate case (scalar displacement)
	D1                       // 1D (bars)
	D2                       // 2D (plane problems)
	D3                       // 3D (solids)
)

// Shape lists the extent of each tensor axis. A nil Shape is a scalar.
type Shape []int

// Rank returns the number of tensor axes
func (s Shape) Rank() int { return len(s) }

// Size returns the number of scalar components
func (s Shape) Size() (n int) {
	n = 1
	for _, d := range s {
		n *= d
	}
	return
}

// Equal reports whether both shapes have identical axes
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Append returns a new shape with extra trailing axes
func (s Shape) Append(axes ...int) Shape {
	out := make(Shape, 0, len(s)+len(axes))
	out = append(out, s...)
	return append(out, axes...)
}

func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
