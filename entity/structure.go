package entity

import "fmt"

// Structure is the root container of the hierarchy.
type Structure struct {
	id     string
	models []*Model
}

// NewStructure creates an empty structure with the given id.
func NewStructure(id string) *Structure {
	return &Structure{id: id}
}

// ID returns the structure id, typically a four-character entry code.
func (s *Structure) ID() string { return s.id }

// Add appends a model.
func (s *Structure) Add(m *Model) {
	s.models = append(s.models, m)
	m.SetStructure(s)
}

// Models returns the models in file order.
func (s *Structure) Models() []*Model { return s.models }

// Len returns the number of models.
func (s *Structure) Len() int { return len(s.models) }

// UnpackedAtoms returns every atom in the structure, including all
// alternates of disordered slots and all variants of disordered
// residues, in file order.
func (s *Structure) UnpackedAtoms() []*Atom {
	var out []*Atom
	for _, m := range s.models {
		for _, c := range m.Chains() {
			for _, node := range c.ResidueNodes() {
				switch n := node.(type) {
				case *Residue:
					out = append(out, n.UnpackedAtoms()...)
				case *DisorderedResidue:
					for _, variant := range n.Variants() {
						out = append(out, variant.UnpackedAtoms()...)
					}
				}
			}
		}
	}
	return out
}

// ResetAtomSerials renumbers every atom in the structure consecutively
// from 1 in file order, alternates included. Useful after assembling a
// structure from records with gapped or colliding serial numbers.
func (s *Structure) ResetAtomSerials() {
	serial := 1
	for _, a := range s.UnpackedAtoms() {
		a.Serial = serial
		serial++
	}
}

func (s *Structure) String() string {
	return fmt.Sprintf("<Structure %s (%d models)>", s.id, len(s.models))
}
