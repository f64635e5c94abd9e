package form

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Value is an evaluated tensor of rank 0, 1 or 2 stored in row-major order
type Value struct {
	Shape Shape
	Data  []float64
}

// Scalar returns a rank-0 value
func Scalar(v float64) Value {
	return Value{Data: []float64{v}}
}

// Vector returns a rank-1 value
func Vector(v ...float64) Value {
	data := make([]float64, len(v))
	copy(data, v)
	return Value{Shape: Shape{len(v)}, Data: data}
}

// Matrix returns a rank-2 value of size r×c from row-major data. A nil data
// slice yields a zero matrix.
func Matrix(r, c int, data []float64) Value {
	if data == nil {
		data = make([]float64, r*c)
	}
	if len(data) != r*c {
		panic(fmt.Sprintf("form: matrix %d×%d needs %d entries, got %d", r, c, r*c, len(data)))
	}
	out := make([]float64, len(data))
	copy(out, data)
	return Value{Shape: Shape{r, c}, Data: out}
}

// FromDense copies a gonum matrix into a rank-2 value
func FromDense(m mat.Matrix) Value {
	r, c := m.Dims()
	v := Matrix(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v.Data[i*c+j] = m.At(i, j)
		}
	}
	return v
}

func zeroValue(s Shape) Value {
	return Value{Shape: s, Data: make([]float64, s.Size())}
}

func identityValue(n int) Value {
	v := zeroValue(Shape{n, n})
	for i := 0; i < n; i++ {
		v.Data[i*n+i] = 1
	}
	return v
}

// Float returns the component of a rank-0 value
func (v Value) Float() float64 {
	if v.Shape.Rank() != 0 {
		panic(fmt.Sprintf("form: Float of non-scalar value with shape %s", v.Shape))
	}
	return v.Data[0]
}

// At returns component (i, j) of a rank-2 value
func (v Value) At(i, j int) float64 {
	return v.Data[i*v.Shape[1]+j]
}

// Dense returns a copy of a rank-2 value as a gonum matrix. Empty tensors have
// no gonum representation and must be handled by the caller.
func (v Value) Dense() *mat.Dense {
	if v.Shape.Rank() != 2 {
		panic(fmt.Sprintf("form: Dense of value with shape %s", v.Shape))
	}
	data := make([]float64, len(v.Data))
	copy(data, v.Data)
	return mat.NewDense(v.Shape[0], v.Shape[1], data)
}

// IsZero reports whether every component is within tol of zero
func (v Value) IsZero(tol float64) bool {
	for _, x := range v.Data {
		if math.Abs(x) > tol {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if v.Shape.Rank() == 0 {
		return fmt.Sprintf("%g", v.Data[0])
	}
	return fmt.Sprintf("%s%v", v.Shape, v.Data)
}

func addValues(a, b Value) Value {
	out := zeroValue(a.Shape)
	floats.AddTo(out.Data, a.Data, b.Data)
	return out
}

func subValues(a, b Value) Value {
	out := zeroValue(a.Shape)
	floats.SubTo(out.Data, a.Data, b.Data)
	return out
}

func scaleValue(s float64, a Value) Value {
	out := zeroValue(a.Shape)
	floats.ScaleTo(out.Data, s, a.Data)
	return out
}

// mulValues handles matrix×matrix and matrix×vector products
func mulValues(a, b Value) Value {
	var (
		n = a.Shape[0]
		k = a.Shape[1]
	)
	if b.Shape.Rank() == 1 {
		out := zeroValue(Shape{n})
		for i := 0; i < n; i++ {
			out.Data[i] = floats.Dot(a.Data[i*k:(i+1)*k], b.Data)
		}
		return out
	}
	m := b.Shape[1]
	if n == 0 || k == 0 || m == 0 {
		return zeroValue(Shape{n, m})
	}
	var c mat.Dense
	c.Mul(a.Dense(), b.Dense())
	return FromDense(&c)
}

func transposeValue(a Value) Value {
	r, c := a.Shape[0], a.Shape[1]
	out := zeroValue(Shape{c, r})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Data[j*r+i] = a.Data[i*c+j]
		}
	}
	return out
}

func traceValue(a Value) (tr float64) {
	n := a.Shape[0]
	for i := 0; i < n; i++ {
		tr += a.Data[i*n+i]
	}
	return
}

func detValue(a Value) float64 {
	if a.Shape[0] == 0 {
		return 1
	}
	return mat.Det(a.Dense())
}

func invValue(a Value) (Value, error) {
	n := a.Shape[0]
	if n == 0 {
		return zeroValue(Shape{0, 0}), nil
	}
	if detValue(a) == 0 {
		return Value{}, ErrSingular
	}
	var inv mat.Dense
	if err := inv.Inverse(a.Dense()); err != nil {
		// A finite condition number still carries a usable inverse
		if _, ok := err.(mat.Condition); !ok {
			return Value{}, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}
	return FromDense(&inv), nil
}

func innerValues(a, b Value) float64 {
	if len(a.Data) == 0 {
		return 0
	}
	return floats.Dot(a.Data, b.Data)
}
