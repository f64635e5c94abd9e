// Package elastic converts an engineering (Young's modulus, Poisson's ratio)
// pair into the moduli used by constitutive formulas. Inputs are scalar
// expressions and nothing is validated: ν = -1 or ν = 0.5 divide by zero and
// the resulting Inf/NaN surfaces only when the expression is evaluated.
package elastic

import "github.com/notargets/DGSolid/form"

// FirstLameParameter returns λ = Eν / ((1+ν)(1-2ν))
func FirstLameParameter(E, nu form.Expr) form.Expr {
	one := form.Const(1)
	return form.Div(
		form.Mul(E, nu),
		form.Mul(form.Add(one, nu), form.Sub(one, form.Mul(form.Const(2), nu))),
	)
}

// SecondLameParameter returns μ = E / (2(1+ν))
func SecondLameParameter(E, nu form.Expr) form.Expr {
	return form.Div(E, form.Mul(form.Const(2), form.Add(form.Const(1), nu)))
}

// BulkModulus returns K = λ + 2μ/3
func BulkModulus(E, nu form.Expr) form.Expr {
	return form.Add(
		FirstLameParameter(E, nu),
		form.Mul(form.Const(2.0/3.0), SecondLameParameter(E, nu)),
	)
}

// ShearModulus returns G = μ
func ShearModulus(E, nu form.Expr) form.Expr {
	return SecondLameParameter(E, nu)
}

// Parameters holds an engineering modulus pair
type Parameters struct {
	E  form.Expr // Young's modulus
	Nu form.Expr // Poisson's ratio
}

// NewParameters wraps numeric E and ν
func NewParameters(E, nu float64) Parameters {
	return Parameters{E: form.Const(E), Nu: form.Const(nu)}
}

func (o Parameters) Lambda() form.Expr { return FirstLameParameter(o.E, o.Nu) }
func (o Parameters) Mu() form.Expr     { return SecondLameParameter(o.E, o.Nu) }
func (o Parameters) Bulk() form.Expr   { return BulkModulus(o.E, o.Nu) }
func (o Parameters) Shear() form.Expr  { return ShearModulus(o.E, o.Nu) }
