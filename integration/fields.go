// Package integration evaluates forms numerically. It binds the symbolic
// fields of a form to closed-form functions of position and sums integrands
// over quadrature rules, standing in for a finite-element assembler when
// checking residuals.
package integration

import (
	"fmt"

	"github.com/notargets/DGSolid/form"
	"gonum.org/v1/gonum/mat"
)

// FieldFunc gives the value and spatial gradient of a field at a point
type FieldFunc interface {
	Value(x []float64) form.Value
	Grad(x []float64) form.Value
}

// Constant is a spatially uniform field
type Constant struct {
	V form.Value
}

func (c Constant) Value([]float64) form.Value { return c.V }

func (c Constant) Grad(x []float64) form.Value {
	s := c.V.Shape.Append(len(x))
	return form.Value{Shape: s, Data: make([]float64, s.Size())}
}

// Affine is the vector field u(x) = A x + b
type Affine struct {
	A *mat.Dense
	B []float64 // nil means zero
}

// NewAffine builds an affine field from a row-major n×d matrix and an offset
func NewAffine(n, d int, a []float64, b []float64) Affine {
	return Affine{A: mat.NewDense(n, d, a), B: b}
}

func (o Affine) Value(x []float64) form.Value {
	n, _ := o.A.Dims()
	var u mat.VecDense
	u.MulVec(o.A, mat.NewVecDense(len(x), x))
	out := make([]float64, n)
	for i := range out {
		out[i] = u.AtVec(i)
		if o.B != nil {
			out[i] += o.B[i]
		}
	}
	return form.Vector(out...)
}

func (o Affine) Grad([]float64) form.Value { return form.FromDense(o.A) }

// Func is a field given by explicit value and gradient functions
type Func struct {
	V func(x []float64) form.Value
	G func(x []float64) form.Value
}

func (o Func) Value(x []float64) form.Value { return o.V(x) }
func (o Func) Grad(x []float64) form.Value  { return o.G(x) }

// Bindings associate form fields with field functions
type Bindings struct {
	fields map[*form.Field]FieldFunc
}

// NewBindings returns an empty set of bindings
func NewBindings() *Bindings {
	return &Bindings{fields: make(map[*form.Field]FieldFunc)}
}

// Bind sets the function for field f, replacing any earlier binding
func (b *Bindings) Bind(f *form.Field, fn FieldFunc) *Bindings {
	b.fields[f] = fn
	return b
}

// Check reports the first field of e without a binding
func (b *Bindings) Check(e form.Expr) error {
	for _, f := range form.Fields(e) {
		if _, ok := b.fields[f]; !ok {
			return fmt.Errorf("%w: %q", form.ErrUnbound, f.Name())
		}
	}
	return nil
}

// point implements form.Point at one quadrature point
type point struct {
	x      []float64
	normal []float64
	b      *Bindings
}

func (p *point) lookup(f *form.Field) (FieldFunc, error) {
	var (
		fn FieldFunc
		ok bool
	)
	if p.b != nil {
		fn, ok = p.b.fields[f]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", form.ErrUnbound, f.Name())
	}
	return fn, nil
}

func (p *point) Value(f *form.Field) (form.Value, error) {
	fn, err := p.lookup(f)
	if err != nil {
		return form.Value{}, err
	}
	v := fn.Value(p.x)
	if !v.Shape.Equal(f.Shape()) {
		return form.Value{}, fmt.Errorf("integration: field %q bound with shape %s, declared %s",
			f.Name(), v.Shape, f.Shape())
	}
	return v, nil
}

func (p *point) Grad(f *form.Field) (form.Value, error) {
	fn, err := p.lookup(f)
	if err != nil {
		return form.Value{}, err
	}
	return fn.Grad(p.x), nil
}

func (p *point) Normal() (form.Value, error) {
	if p.normal == nil {
		return form.Value{}, form.ErrNoNormal
	}
	return form.Vector(p.normal...), nil
}

// EvalAt evaluates e at position x. Normal is nil away from a boundary.
func EvalAt(e form.Expr, x, normal []float64, b *Bindings) (form.Value, error) {
	return e.Eval(&point{x: x, normal: normal, b: b})
}
