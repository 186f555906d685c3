package entity

import "fmt"

// Coord is a 3-D coordinate in Angstroms.
type Coord struct {
	X, Y, Z float64
}

func (c Coord) String() string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.X, c.Y, c.Z)
}

// AtomNode is a slot in a residue's atom collection. It has exactly two
// variants: *Atom for an ordered atom and *DisorderedAtom for a group of
// alternates sharing one name. Callers that need the variant type-switch
// on the interface value.
type AtomNode interface {
	// AtomID returns the key the node is stored under within its residue:
	// the trimmed atom name, or the space-padded full spelling after a
	// whitespace-collision rewrite.
	AtomID() string

	// Selected returns the effective atom for the slot: the node itself
	// for a plain atom, the currently selected alternate for a group.
	Selected() *Atom
}

// Atom is a leaf record of the hierarchy: one observed (or template
// placeholder) atom. A nil Coord means the position is absent or
// unknown, as for atoms created from a topology definition before any
// coordinates exist.
type Atom struct {
	// Name is the atom's key within its residue. Usually the trimmed
	// name ("CA"); rewritten to the full spelling when two distinct
	// atoms collide after trimming.
	Name string

	// FullName is the space-padded spelling from the source record,
	// e.g. " CA ".
	FullName string

	Coord     *Coord
	BFactor   float64
	Occupancy float64

	// AltLoc is the alternate-location tag; empty for ordered atoms.
	AltLoc string

	Serial  int
	Element string

	// Charge and Radius are present only for PQR-style records.
	Charge *float64
	Radius *float64

	parent *Residue
}

// AtomID implements AtomNode.
func (a *Atom) AtomID() string { return a.Name }

// Selected implements AtomNode; a plain atom is its own effective atom.
func (a *Atom) Selected() *Atom { return a }

// Residue returns the residue the atom belongs to, or nil if detached.
func (a *Atom) Residue() *Residue { return a.parent }

// SetResidue records the owning residue. The reference is non-owning;
// ownership always runs parent to child.
func (a *Atom) SetResidue(r *Residue) { a.parent = r }

func (a *Atom) String() string {
	return fmt.Sprintf("<Atom %s>", a.Name)
}
