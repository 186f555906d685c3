package topology

import (
	"fmt"

	"github.com/Truman-Xu/crimm/entity"
)

// ResidueKind classifies what a residue definition describes.
type ResidueKind int

const (
	KindProtein ResidueKind = iota
	KindNucleic
	KindWater
)

func (k ResidueKind) String() string {
	switch k {
	case KindProtein:
		return "protein"
	case KindNucleic:
		return "nucleic"
	case KindWater:
		return "water"
	default:
		return fmt.Sprintf("residuekind(%d)", int(k))
	}
}

// ResidueDef is the template for one residue name: its atoms in
// template order, the charge groups they fall into, and the bonds and
// impropers connecting them.
type ResidueDef struct {
	Name string
	Kind ResidueKind
	Desc string

	// Groups partitions atom names into charge groups, template order.
	Groups [][]string

	Bonds     []Bond
	Impropers []Improper

	order []string
	atoms map[string]*AtomDef
}

// NewResidueDef creates a definition holding the given atoms in order.
func NewResidueDef(name string, kind ResidueKind, atoms []*AtomDef) *ResidueDef {
	def := &ResidueDef{
		Name:  name,
		Kind:  kind,
		atoms: make(map[string]*AtomDef, len(atoms)),
	}
	for _, a := range atoms {
		def.atoms[a.Name] = a
		def.order = append(def.order, a.Name)
	}
	return def
}

// Get returns the atom definition with the given name.
func (d *ResidueDef) Get(name string) (*AtomDef, bool) {
	a, ok := d.atoms[name]
	return a, ok
}

// Has reports whether the template defines an atom with the given name.
func (d *ResidueDef) Has(name string) bool {
	_, ok := d.atoms[name]
	return ok
}

// Len returns the number of defined atoms.
func (d *ResidueDef) Len() int { return len(d.order) }

// AtomNames returns the defined atom names in template order.
func (d *ResidueDef) AtomNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Atoms returns the atom definitions in template order.
func (d *ResidueDef) Atoms() []*AtomDef {
	out := make([]*AtomDef, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.atoms[name])
	}
	return out
}

func (d *ResidueDef) String() string {
	return fmt.Sprintf("<ResidueDef %s>", d.Name)
}

// MissingAtoms returns, in template order, the names of atoms the
// definition expects but res does not hold. With heavyOnly set,
// hydrogens are not reported; unmodelled hydrogens are the norm in
// experimental data and usually not worth flagging.
func MissingAtoms(res *entity.Residue, def *ResidueDef, heavyOnly bool) []string {
	var out []string
	for _, name := range def.order {
		if res.Has(name) {
			continue
		}
		if heavyOnly && def.atoms[name].IsHydrogen() {
			continue
		}
		out = append(out, name)
	}
	return out
}
