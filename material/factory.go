package material

import (
	"fmt"
	"sort"

	"github.com/notargets/DGSolid/form"
)

// Props maps property names to scalar values or fields, e.g. "kappa", "mu",
// "power_J_M"
type Props map[string]form.Expr

// New allocates the law registered under name. Every property the law needs
// must be present in props.
func New(name string, rho form.Expr, props Props) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not available; options are %v", ErrUnknownModel, name, Names())
	}
	return allocator(Base{Rho: rho}, props)
}

// Names lists the registered laws
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available laws; name => allocator
var allocators = map[string]func(b Base, props Props) (Model, error){
	StVenantKirchhoffName: func(b Base, props Props) (Model, error) {
		o := &StVenantKirchhoff{Base: b, Kappa: props["kappa"], Mu: props["mu"]}
		return checked(o, checkProps(o.Name(), prop{"kappa", o.Kappa}, prop{"mu", o.Mu}))
	},
	NeoHookeanName: func(b Base, props Props) (Model, error) {
		o := &NeoHookean{Base: b, Kappa: props["kappa"], Mu: props["mu"]}
		return checked(o, checkProps(o.Name(), prop{"kappa", o.Kappa}, prop{"mu", o.Mu}))
	},
	JacobianStiffeningName: func(b Base, props Props) (Model, error) {
		o := &JacobianStiffening{Base: b, PowerJM: props["power_J_M"]}
		return checked(o, checkProps(o.Name(), prop{"power_J_M", o.PowerJM}))
	},
}

func checked(m Model, err error) (Model, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
