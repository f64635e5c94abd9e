package material

import (
	"github.com/notargets/DGSolid/elastic"
	"github.com/notargets/DGSolid/form"
)

// StVenantKirchhoff is linear in the Green-Lagrange strain with a
// volumetric/deviatoric split
type StVenantKirchhoff struct {
	Base
	Kappa form.Expr // bulk modulus K
	Mu    form.Expr // shear modulus μ
}

// NeoHookean is the compressible Neo-Hookean law of Wu et al. (2019)
type NeoHookean struct {
	Base
	Kappa form.Expr // bulk modulus K
	Mu    form.Expr // shear modulus μ
}

// JacobianStiffening is a fictitious St. Venant-Kirchhoff solid used to
// regularise mesh motion. Its moduli derive from E = 1, ν = 0.3 scaled by
// J_M^(-PowerJM), so elements that shrink under the mesh map stiffen.
type JacobianStiffening struct {
	Base
	PowerJM form.Expr // stiffening exponent
}

const (
	StVenantKirchhoffName  = "st-venant-kirchhoff"
	NeoHookeanName         = "neo-hookean"
	JacobianStiffeningName = "jacobian-stiffening"
)

func (o *StVenantKirchhoff) Name() string  { return StVenantKirchhoffName }
func (o *NeoHookean) Name() string         { return NeoHookeanName }
func (o *JacobianStiffening) Name() string { return JacobianStiffeningName }

// Stress returns S = K tr(E) I + 2μ(E - tr(E) I/3)
func (o *StVenantKirchhoff) Stress(u form.Expr, opts ...Option) (S form.Expr, err error) {
	if err = checkProps(o.Name(), prop{"kappa", o.Kappa}, prop{"mu", o.Mu}); err != nil {
		return
	}
	return svkStress(o.Kappa, o.Mu, BasicTensors(u)), nil
}

// InteriorResidual returns ∫ (F·S) : ∇v dx
func (o *StVenantKirchhoff) InteriorResidual(u, v form.Expr, dx form.Measure, opts ...Option) (form.Form, error) {
	S, err := o.Stress(u, opts...)
	if err != nil {
		return form.Form{}, err
	}
	return piolaResidual(BasicTensors(u), S, v, dx), nil
}

// Stress returns
//
//	S = μ J^(-2/3) (I - (tr C + 3 - n)/3 C⁻¹) + K/2 (J² - 1) C⁻¹ + S0
//
// where n = tr I and S0 is the optional reference stress (zero if absent)
func (o *NeoHookean) Stress(u form.Expr, opts ...Option) (S form.Expr, err error) {
	if err = checkProps(o.Name(), prop{"kappa", o.Kappa}, prop{"mu", o.Mu}); err != nil {
		return
	}
	var (
		in   = collect(opts)
		k    = BasicTensors(u)
		nsd  = form.Tr(k.I)
		Cinv = form.Inv(k.C)
	)
	// (tr C + (3 - n)) / 3
	a := form.Div(form.Add(form.Tr(k.C), form.Sub(form.Const(3), nsd)), form.Const(3))
	iso := form.Mul(
		form.Mul(o.Mu, form.Pow(k.J, form.Const(-2.0/3.0))),
		form.Sub(k.I, form.Mul(a, Cinv)),
	)
	vol := form.Mul(
		form.Mul(form.Div(o.Kappa, form.Const(2)), form.Sub(form.Pow(k.J, form.Const(2)), form.Const(1))),
		Cinv,
	)
	S0 := in.S0
	if S0 == nil {
		S0 = form.Mul(form.Const(0), k.I)
	}
	return form.Add(form.Add(iso, vol), S0), nil
}

// InteriorResidual returns ∫ (F·(S + S0)) : ∇v dx; pass ReferenceStress to
// set S0
func (o *NeoHookean) InteriorResidual(u, v form.Expr, dx form.Measure, opts ...Option) (form.Form, error) {
	S, err := o.Stress(u, opts...)
	if err != nil {
		return form.Form{}, err
	}
	return piolaResidual(BasicTensors(u), S, v, dx), nil
}

// Moduli returns the fictitious bulk and shear moduli for mesh Jacobian JM
func (o *JacobianStiffening) Moduli(JM form.Expr) (K, mu form.Expr, err error) {
	if err = checkProps(o.Name(), prop{"power_J_M", o.PowerJM}); err != nil {
		return
	}
	var (
		E  = form.Div(form.Const(1), form.Pow(JM, o.PowerJM))
		nu = form.Const(0.3)
	)
	return elastic.BulkModulus(E, nu), elastic.ShearModulus(E, nu), nil
}

// Stress returns the St. Venant-Kirchhoff stress with the fictitious moduli.
// MeshJacobian is required.
func (o *JacobianStiffening) Stress(u form.Expr, opts ...Option) (S form.Expr, err error) {
	in := collect(opts)
	if in.JM == nil {
		return nil, &InputError{Model: o.Name(), Input: "J_M"}
	}
	K, mu, err := o.Moduli(in.JM)
	if err != nil {
		return
	}
	return svkStress(K, mu, BasicTensors(u)), nil
}

// InteriorResidual returns ∫ (F·S) : ∇v dx for the stiffened mesh solid
func (o *JacobianStiffening) InteriorResidual(u, v form.Expr, dx form.Measure, opts ...Option) (form.Form, error) {
	S, err := o.Stress(u, opts...)
	if err != nil {
		return form.Form{}, err
	}
	return piolaResidual(BasicTensors(u), S, v, dx), nil
}

type prop struct {
	name  string
	value form.Expr
}

// checkProps reports the first property without a value
func checkProps(model string, props ...prop) error {
	for _, p := range props {
		if p.value == nil {
			return &PropertyError{Model: model, Property: p.name}
		}
	}
	return nil
}
