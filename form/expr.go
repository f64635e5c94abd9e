// Package form implements a small symbolic tensor algebra for building
// variational forms. Expressions are immutable trees; nothing is evaluated
// until an external assembler walks them at quadrature points through the
// Point interface.
package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbound indicates a field with no value at the evaluation point
	ErrUnbound = errors.New("form: field is not bound")

	// ErrSingular indicates the inverse of a singular tensor
	ErrSingular = errors.New("form: singular tensor")

	// ErrNoNormal indicates a normal evaluated away from a boundary
	ErrNoNormal = errors.New("form: no normal at interior point")
)

// Expr is a node of a tensor expression tree
type Expr interface {
	Shape() Shape
	Eval(p Point) (Value, error)
	String() string
}

// Point supplies terminal data to Eval at a single evaluation point
type Point interface {
	Value(f *Field) (Value, error)
	Grad(f *Field) (Value, error)
	Normal() (Value, error) // unit outward normal, boundary points only
}

// Field is a named tensor-valued quantity defined over a domain of dimension
// Dim, e.g. a displacement or a test function.
type Field struct {
	name  string
	dim   Dimensionality
	shape Shape
}

// NewField creates a scalar (no shape) or vector field on a domain of
// dimension gdim
func NewField(name string, gdim Dimensionality, shape ...int) *Field {
	if len(shape) > 1 {
		panic(fmt.Sprintf("form: field %q of rank %d; only scalar and vector fields are supported", name, len(shape)))
	}
	return &Field{name: name, dim: gdim, shape: Shape(shape)}
}

func (f *Field) Name() string                { return f.name }
func (f *Field) Dim() Dimensionality         { return f.dim }
func (f *Field) Shape() Shape                { return f.shape }
func (f *Field) String() string              { return f.name }
func (f *Field) Eval(p Point) (Value, error) { return p.Value(f) }

type constant struct {
	v Value
}

// Const returns a scalar constant
func Const(v float64) Expr { return &constant{v: Scalar(v)} }

// Tensor returns a constant tensor
func Tensor(v Value) Expr { return &constant{v: v} }

// Zero returns the zero tensor of the given shape
func Zero(shape ...int) Expr { return &constant{v: zeroValue(Shape(shape))} }

func (c *constant) Shape() Shape              { return c.v.Shape }
func (c *constant) Eval(Point) (Value, error) { return c.v, nil }
func (c *constant) String() string            { return c.v.String() }

type identity struct {
	n int
}

// Identity returns the n×n identity tensor; n may be zero
func Identity(n int) Expr { return &identity{n: n} }

func (id *identity) Shape() Shape              { return Shape{id.n, id.n} }
func (id *identity) Eval(Point) (Value, error) { return identityValue(id.n), nil }
func (id *identity) String() string            { return fmt.Sprintf("I(%d)", id.n) }

type normal struct {
	dim int
}

// Normal returns the unit outward normal of a boundary of dimension gdim
func Normal(gdim Dimensionality) Expr { return &normal{dim: int(gdim)} }

func (n *normal) Shape() Shape   { return Shape{n.dim} }
func (n *normal) String() string { return "n" }
func (n *normal) Eval(p Point) (Value, error) {
	v, err := p.Normal()
	if err != nil {
		return Value{}, err
	}
	if !v.Shape.Equal(n.Shape()) {
		return Value{}, fmt.Errorf("form: normal evaluated with shape %s, expected %s", v.Shape, n.Shape())
	}
	return v, nil
}

type gradient struct {
	f     *Field
	shape Shape
}

func (g *gradient) Shape() Shape { return g.shape }
func (g *gradient) String() string {
	return "grad(" + g.f.name + ")"
}
func (g *gradient) Eval(p Point) (Value, error) {
	v, err := p.Grad(g.f)
	if err != nil {
		return Value{}, err
	}
	if !v.Shape.Equal(g.shape) {
		return Value{}, fmt.Errorf("form: grad(%s) evaluated with shape %s, expected %s",
			g.f.name, v.Shape, g.shape)
	}
	return v, nil
}

// Grad returns the spatial gradient of e. Fields, constants and linear
// combinations of fields with field-free scalar coefficients are supported;
// anything else panics.
func Grad(e Expr) Expr {
	dim := fieldDim(e)
	if dim == 0 {
		panic(fmt.Sprintf("form: grad(%s) has no field with a spatial dimension", e))
	}
	return grad(e, int(dim))
}

func grad(e Expr, dim int) Expr {
	gs := e.Shape().Append(dim)
	if !dependsOnField(e) {
		return &constant{v: zeroValue(gs)}
	}
	switch n := e.(type) {
	case *Field:
		if int(n.dim) != dim {
			panic(fmt.Sprintf("form: grad mixes fields of dimension %d and %d", n.dim, dim))
		}
		return &gradient{f: n, shape: gs}
	case *binary:
		switch n.op {
		case opAdd:
			return Add(grad(n.a, dim), grad(n.b, dim))
		case opSub:
			return Sub(grad(n.a, dim), grad(n.b, dim))
		case opMul:
			if n.a.Shape().Rank() == 0 && !dependsOnField(n.a) {
				return Mul(n.a, grad(n.b, dim))
			}
			if n.b.Shape().Rank() == 0 && !dependsOnField(n.b) {
				return Mul(n.b, grad(n.a, dim))
			}
		case opDiv:
			if !dependsOnField(n.b) {
				return Div(grad(n.a, dim), n.b)
			}
		}
	case *unary:
		if n.op == opNeg {
			return Neg(grad(n.a, dim))
		}
	}
	panic(fmt.Sprintf("form: grad(%s) is not supported", e))
}

// Fields returns the distinct fields referenced by e in first-visit order
func Fields(e Expr) (fields []*Field) {
	seen := make(map[*Field]bool)
	walk(e, func(n Expr) {
		var f *Field
		switch t := n.(type) {
		case *Field:
			f = t
		case *gradient:
			f = t.f
		}
		if f != nil && !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	})
	return
}

func dependsOnField(e Expr) bool {
	return len(Fields(e)) > 0
}

func fieldDim(e Expr) (dim Dimensionality) {
	for _, f := range Fields(e) {
		if f.dim > dim {
			dim = f.dim
		}
	}
	return
}

func walk(e Expr, visit func(Expr)) {
	visit(e)
	switch n := e.(type) {
	case *unary:
		walk(n.a, visit)
	case *binary:
		walk(n.a, visit)
		walk(n.b, visit)
	}
}
