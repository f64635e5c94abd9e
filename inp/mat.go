// Package inp reads material databases for the material package
package inp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/DGSolid/elastic"
	"github.com/notargets/DGSolid/form"
	"github.com/notargets/DGSolid/material"
	"gopkg.in/yaml.v3"
)

// Prm is a named parameter
type Prm struct {
	N string  `yaml:"n"` // name, e.g. "kappa", "mu", "E", "nu", "power_J_M"
	V float64 `yaml:"v"` // value
}

// Material holds material data
type Material struct {

	// input
	Name  string  `yaml:"name"`  // name of material
	Model string  `yaml:"model"` // name of model; e.g. "neo-hookean"
	Extra string  `yaml:"extra"` // extra information about this material
	Rho   float64 `yaml:"rho"`   // density
	Prms  []Prm   `yaml:"prms"`  // model parameters

	// derived
	Solid material.Model `yaml:"-"` // allocated model
}

// Props converts the parameters into model properties. A Young's modulus
// "E" and Poisson's ratio "nu" supply "kappa" and "mu" when those are absent.
func (o *Material) Props() (props material.Props, err error) {
	props = make(material.Props)
	values := make(map[string]float64)
	for _, p := range o.Prms {
		if _, dup := values[p.N]; dup {
			return nil, fmt.Errorf("inp: material %q: parameter %q given twice", o.Name, p.N)
		}
		values[p.N] = p.V
		props[p.N] = form.Const(p.V)
	}
	E, okE := values["E"]
	nu, okNu := values["nu"]
	if okE && okNu {
		prms := elastic.NewParameters(E, nu)
		if _, ok := props["kappa"]; !ok {
			props["kappa"] = prms.Bulk()
		}
		if _, ok := props["mu"]; !ok {
			props["mu"] = prms.Shear()
		}
	}
	return
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials []*Material `yaml:"materials"` // all materials

	// derived
	Solids map[string]*Material `yaml:"-"` // materials by name
}

// ReadMat reads all materials data from a YAML file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	mdb, err = ParseMat(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return
}

// ParseMat decodes materials and allocates their models
func ParseMat(b []byte) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	if err = yaml.Unmarshal(b, mdb); err != nil {
		return nil, err
	}
	mdb.Solids = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, fmt.Errorf("inp: material with model %q has no name", m.Model)
		}
		if _, dup := mdb.Solids[m.Name]; dup {
			return nil, fmt.Errorf("inp: material %q defined twice", m.Name)
		}
		props, err := m.Props()
		if err != nil {
			return nil, err
		}
		m.Solid, err = material.New(m.Model, form.Const(m.Rho), props)
		if err != nil {
			return nil, fmt.Errorf("inp: material %q: %w", m.Name, err)
		}
		mdb.Solids[m.Name] = m
	}
	return
}

// Get returns the material called name
func (o *MatDb) Get(name string) (*Material, error) {
	m, ok := o.Solids[name]
	if !ok {
		return nil, fmt.Errorf("inp: cannot find material %q", name)
	}
	return m, nil
}
