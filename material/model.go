// Package material implements constitutive laws for nonlinear solids as
// builders of weak-form residuals.
//
// Every law supplies its own InteriorResidual, the stress-divergence term
// ∫ (F·S) : ∇v dx with S the second Piola-Kirchhoff stress of that law. The
// inertia, damping, body force, traction and penalty boundary terms are
// identical for all laws and come from the embedded Base.
package material

import (
	"github.com/notargets/DGSolid/form"
)

// Residuals are the weak-form contributions shared by every law
type Residuals interface {
	AccelerationResidual(a, v form.Expr, dx form.Measure) form.Form
	MassDampingResidual(du, c, v form.Expr, dx form.Measure) form.Form
	BodyforceResidual(f, v form.Expr, dx form.Measure) form.Form
	TractionBCResidual(h, v form.Expr, ds form.Measure) form.Form
	PenaltyWeakBCResidual(u, v, g, beta form.Expr, ds form.Measure) form.Form
	Density() form.Expr
}

// Model is a constitutive law. InteriorResidual is the only law-specific
// method; the rest is provided by embedding Base.
type Model interface {
	Residuals
	Name() string
	InteriorResidual(u, v form.Expr, dx form.Measure, opts ...Option) (form.Form, error)
}

// Stresser is implemented by laws that expose their second Piola-Kirchhoff
// stress directly
type Stresser interface {
	Stress(u form.Expr, opts ...Option) (form.Expr, error)
}

// Option supplies a per-call input to InteriorResidual or Stress. Laws ignore
// inputs they do not use.
type Option func(*inputs)

type inputs struct {
	S0 form.Expr // reference stress added to S
	JM form.Expr // mesh-motion Jacobian
}

// ReferenceStress adds a pre-existing second Piola-Kirchhoff stress S0
func ReferenceStress(S0 form.Expr) Option {
	return func(in *inputs) { in.S0 = S0 }
}

// MeshJacobian supplies the scalar Jacobian J_M of a mesh-motion map, distinct
// from the Jacobian of the displacement being stiffened
func MeshJacobian(JM form.Expr) Option {
	return func(in *inputs) { in.JM = JM }
}

func collect(opts []Option) (in inputs) {
	for _, opt := range opts {
		if opt != nil {
			opt(&in)
		}
	}
	return
}

// Base holds the density and implements the shared residuals. It does not
// implement Model by itself.
type Base struct {
	Rho form.Expr // density; nil means zero
}

// Density returns ρ
func (o Base) Density() form.Expr {
	if o.Rho == nil {
		return form.Const(0)
	}
	return o.Rho
}

// AccelerationResidual returns ∫ ρ (a·v) dx
func (o Base) AccelerationResidual(a, v form.Expr, dx form.Measure) form.Form {
	return form.Integrate(form.Mul(o.Density(), form.Inner(a, v)), dx)
}

// MassDampingResidual returns ∫ ρ c (u̇·v) dx
func (o Base) MassDampingResidual(du, c, v form.Expr, dx form.Measure) form.Form {
	return form.Integrate(form.Mul(form.Mul(o.Density(), c), form.Inner(du, v)), dx)
}

// BodyforceResidual returns -∫ ρ (f·v) dx
func (o Base) BodyforceResidual(f, v form.Expr, dx form.Measure) form.Form {
	return form.Integrate(form.Neg(form.Mul(o.Density(), form.Inner(f, v))), dx)
}

// TractionBCResidual returns -∫ (v·h) ds
func (o Base) TractionBCResidual(h, v form.Expr, ds form.Measure) form.Form {
	return form.Integrate(form.Neg(form.Inner(v, h)), ds)
}

// PenaltyWeakBCResidual returns -∫ β(u-g)·v ds, enforcing u = g weakly with
// penalty stiffness β
func (o Base) PenaltyWeakBCResidual(u, v, g, beta form.Expr, ds form.Measure) form.Form {
	return form.Integrate(form.Neg(form.Inner(form.Mul(beta, form.Sub(u, g)), v)), ds)
}

// Kinematics holds the basic tensors derived from a displacement field
type Kinematics struct {
	Nsd form.Dimensionality // spatial dimension, D0 for scalar displacement
	I   form.Expr           // identity
	F   form.Expr           // deformation gradient ∇u + I
	J   form.Expr           // det F
	C   form.Expr           // right Cauchy-Green FᵀF
	E   form.Expr           // Green-Lagrange strain ½(C - I)
}

// BasicTensors derives the kinematic tensors of u. The dimension comes from
// the first axis of u; a scalar u has no tensor axes, so F reduces to the
// 0×0 identity. A u that references no field is spatially constant and also
// has F = I.
func BasicTensors(u form.Expr) (k Kinematics) {
	var nsd int
	if s := u.Shape(); s.Rank() > 0 {
		nsd = s[0]
	}
	k.Nsd = form.Dimensionality(nsd)
	k.I = form.Identity(nsd)
	if nsd == 0 || len(form.Fields(u)) == 0 {
		k.F = k.I
	} else {
		k.F = form.Add(form.Grad(u), k.I)
	}
	k.J = form.Det(k.F)
	k.C = form.Mul(form.Transpose(k.F), k.F)
	k.E = form.Mul(form.Const(0.5), form.Sub(k.C, k.I))
	return
}

// piolaResidual returns ∫ (F·S) : ∇v dx. In the 0-D case there is nothing to
// contract, and a v without fields has zero gradient, so the integrand is
// identically zero.
func piolaResidual(k Kinematics, S, v form.Expr, dx form.Measure) form.Form {
	var gradV form.Expr
	if n := int(k.Nsd); n == 0 || len(form.Fields(v)) == 0 {
		gradV = form.Zero(n, n)
	} else {
		gradV = form.Grad(v)
	}
	return form.Integrate(form.Inner(form.Mul(k.F, S), gradV), dx)
}

// svkStress returns K tr(E) I + 2μ(E - tr(E) I/3)
func svkStress(K, mu form.Expr, k Kinematics) form.Expr {
	trE := form.Tr(k.E)
	vol := form.Mul(form.Mul(K, trE), k.I)
	dev := form.Sub(k.E, form.Div(form.Mul(trE, k.I), form.Const(3)))
	return form.Add(vol, form.Mul(form.Mul(form.Const(2), mu), dev))
}
