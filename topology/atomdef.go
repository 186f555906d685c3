package topology

import (
	"fmt"

	"github.com/Truman-Xu/crimm/entity"
)

// AtomType describes a force-field atom type shared by many atom
// definitions.
type AtomType struct {
	// Code is the force-field type code, e.g. "CT1".
	Code    string
	Mass    float64
	Element string
	Desc    string
}

func (t *AtomType) String() string {
	return fmt.Sprintf("<AtomType %s>", t.Code)
}

// AtomDef defines one named atom of a residue template: its type, its
// partial charge and its hydrogen-bonding roles.
type AtomDef struct {
	Name   string
	Type   *AtomType
	Charge float64

	Donor    bool
	Acceptor bool
}

func (d *AtomDef) String() string {
	return fmt.Sprintf("<AtomDef name=%s type=%s>", d.Name, d.Type.Code)
}

// NewAtom creates a placeholder atom from the definition. The atom has
// no coordinate; it stands in for an atom the template expects but the
// source data never provided.
func (d *AtomDef) NewAtom(serial int) *entity.Atom {
	return &entity.Atom{
		Name:      d.Name,
		FullName:  d.Name,
		Coord:     nil,
		BFactor:   0,
		Occupancy: 1,
		Serial:    serial,
		Element:   d.Type.Element,
	}
}

// IsHydrogen reports whether the defined atom is a hydrogen.
func (d *AtomDef) IsHydrogen() bool { return d.Type.Element == "H" }
