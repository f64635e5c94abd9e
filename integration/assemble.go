package integration

import (
	"fmt"

	"github.com/notargets/DGSolid/form"
	"github.com/notargets/DGSolid/quadrature"
)

// Domain supplies the quadrature rule for each measure
type Domain interface {
	Rule(m form.Measure) (quadrature.Rule, error)
}

// Box is the axis-aligned domain [Lo,Hi] integrated with Order Gauss points
// per axis, or Gauss-Lobatto points when Lobatto is set. Its single cell
// subdomain is 0; boundary subdomain 2k is the low face of axis k and 2k+1 the
// high face.
type Box struct {
	Lo, Hi  []float64
	Order   int
	Lobatto bool
}

// UnitBox returns [0,1]^d with order Gauss points per axis
func UnitBox(d form.Dimensionality, order int) Box {
	lo := make([]float64, d)
	hi := make([]float64, d)
	for i := range hi {
		hi[i] = 1
	}
	return Box{Lo: lo, Hi: hi, Order: order}
}

func (b Box) Rule(m form.Measure) (quadrature.Rule, error) {
	d := len(b.Lo)
	switch {
	case d == 0 || len(b.Hi) != d:
		return nil, fmt.Errorf("integration: box corners of length %d and %d", d, len(b.Hi))
	case b.Order < 1:
		return nil, fmt.Errorf("integration: box quadrature order %d, need at least 1", b.Order)
	case b.Lobatto && b.Order < 2:
		return nil, fmt.Errorf("integration: Gauss-Lobatto order %d, need at least 2", b.Order)
	}
	line := quadrature.GaussLegendre
	if b.Lobatto {
		line = quadrature.GaussLobatto
	}
	switch m.Type {
	case form.Cell:
		if m.Subdomain != form.Everywhere && m.Subdomain != 0 {
			return nil, fmt.Errorf("integration: box has no cell subdomain %d", m.Subdomain)
		}
		return quadrature.Box(line, b.Lo, b.Hi, b.Order), nil
	case form.ExteriorFacet:
		if m.Subdomain == form.Everywhere {
			return quadrature.BoxBoundary(line, b.Lo, b.Hi, b.Order), nil
		}
		if m.Subdomain < 0 || m.Subdomain >= 2*d {
			return nil, fmt.Errorf("integration: box has no boundary %d", m.Subdomain)
		}
		return quadrature.BoxFace(line, b.Lo, b.Hi, b.Order, m.Subdomain), nil
	}
	return nil, fmt.Errorf("integration: unsupported measure %s", m)
}

// Assemble returns the value of f: the weighted sum of every integrand over
// the quadrature rule of its measure
func Assemble(f form.Form, dom Domain, b *Bindings) (total float64, err error) {
	for i, it := range f.Integrals {
		var r quadrature.Rule
		if r, err = dom.Rule(it.Measure); err != nil {
			return 0, fmt.Errorf("integral %d over %s: %w", i, it.Measure, err)
		}
		p := &point{b: b}
		for _, q := range r {
			p.x, p.normal = q.X, q.Normal
			var v form.Value
			if v, err = it.Integrand.Eval(p); err != nil {
				return 0, fmt.Errorf("integral %d over %s at x=%v: %w", i, it.Measure, q.X, err)
			}
			total += q.W * v.Float()
		}
	}
	return
}

// AssembleTests evaluates f once per test function, rebinding v each time.
// The result is the residual vector of f against that set of test functions.
func AssembleTests(f form.Form, dom Domain, b *Bindings, v *form.Field, tests []FieldFunc) ([]float64, error) {
	prev, had := b.fields[v]
	defer func() {
		if had {
			b.fields[v] = prev
		} else {
			delete(b.fields, v)
		}
	}()
	R := make([]float64, len(tests))
	for i, fn := range tests {
		b.fields[v] = fn
		r, err := Assemble(f, dom, b)
		if err != nil {
			return nil, fmt.Errorf("test function %d: %w", i, err)
		}
		R[i] = r
	}
	return R, nil
}
