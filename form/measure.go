package form

import (
	"fmt"
	"strings"
)

// MeasureType distinguishes volume integrals from boundary integrals
type MeasureType uint8

const (
	Cell          MeasureType = iota // integral over the domain interior
	ExteriorFacet                    // integral over the domain boundary
)

// Everywhere selects the whole domain or boundary of a measure
const Everywhere = -1

// Measure denotes "integrate over this region" when paired with an integrand.
// Measures are plain values; the zero value is the cell measure over
// subdomain 0, so use Dx or Ds to obtain the unrestricted measures.
type Measure struct {
	Type      MeasureType
	Subdomain int
}

// Dx returns the volume measure over the whole domain
func Dx() Measure { return Measure{Type: Cell, Subdomain: Everywhere} }

// Ds returns the boundary measure over the whole boundary
func Ds() Measure { return Measure{Type: ExteriorFacet, Subdomain: Everywhere} }

// Restrict returns the same measure limited to subdomain or boundary id
func (m Measure) Restrict(id int) Measure {
	m.Subdomain = id
	return m
}

func (m Measure) String() string {
	name := "dx"
	if m.Type == ExteriorFacet {
		name = "ds"
	}
	if m.Subdomain == Everywhere {
		return name
	}
	return fmt.Sprintf("%s(%d)", name, m.Subdomain)
}

// Integral is a scalar integrand paired with its measure
type Integral struct {
	Integrand Expr
	Measure   Measure
}

func (it Integral) String() string {
	return it.Integrand.String() + "*" + it.Measure.String()
}

// Form is an unevaluated sum of integrals
type Form struct {
	Integrals []Integral
}

// Integrate returns the form ∫ e dm; e must be a scalar
func Integrate(e Expr, m Measure) Form {
	if e.Shape().Rank() != 0 {
		panic(fmt.Sprintf("form: can only integrate scalar expressions, got shape %s [%s]", e.Shape(), e))
	}
	return Form{Integrals: []Integral{{Integrand: e, Measure: m}}}
}

// Plus returns the sum of two forms
func (f Form) Plus(o Form) Form {
	out := make([]Integral, 0, len(f.Integrals)+len(o.Integrals))
	out = append(out, f.Integrals...)
	return Form{Integrals: append(out, o.Integrals...)}
}

// Neg returns -f
func (f Form) Neg() Form {
	out := make([]Integral, len(f.Integrals))
	for i, it := range f.Integrals {
		out[i] = Integral{Integrand: Neg(it.Integrand), Measure: it.Measure}
	}
	return Form{Integrals: out}
}

// IsEmpty reports whether f has no integrals
func (f Form) IsEmpty() bool { return len(f.Integrals) == 0 }

func (f Form) String() string {
	if f.IsEmpty() {
		return "0"
	}
	parts := make([]string, len(f.Integrals))
	for i, it := range f.Integrals {
		parts[i] = it.String()
	}
	return strings.Join(parts, " + ")
}

// Sum adds any number of forms
func Sum(forms ...Form) (total Form) {
	for _, f := range forms {
		total = total.Plus(f)
	}
	return
}
