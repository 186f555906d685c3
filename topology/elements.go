package topology

import "fmt"

// BondKind classifies a bond.
type BondKind int

const (
	BondSingle BondKind = iota
	BondDouble
	BondTriple
	BondAromatic
)

// Order returns the bond order; aromatic bonds count as order 2.
func (k BondKind) Order() int {
	switch k {
	case BondSingle:
		return 1
	case BondDouble, BondAromatic:
		return 2
	case BondTriple:
		return 3
	default:
		return 0
	}
}

func (k BondKind) String() string {
	switch k {
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondAromatic:
		return "aromatic"
	default:
		return fmt.Sprintf("bondkind(%d)", int(k))
	}
}

// Bond is the identity of one bond between two template atoms. Names
// prefixed with "-" or "+" refer to the previous or next residue in the
// chain. Bond is comparable and usable as a map key.
type Bond struct {
	A, B string
	Kind BondKind
}

// NewBond creates a canonically oriented bond: the endpoint that sorts
// lower leads, so the same connection compares equal regardless of the
// order a source listed its atoms in.
func NewBond(a, b string, kind BondKind) Bond {
	if a > b {
		a, b = b, a
	}
	return Bond{A: a, B: b, Kind: kind}
}

func (b Bond) String() string {
	return fmt.Sprintf("Bond(%s, %s, %s)", b.A, b.B, b.Kind)
}

// Improper is the identity of an improper torsion over four template
// atoms. Comparable and usable as a map key.
type Improper [4]string

// NewImproper creates a canonically oriented improper: the tuple is
// reversed when the last atom sorts below the first.
func NewImproper(a, b, c, d string) Improper {
	if a > d {
		a, b, c, d = d, c, b, a
	}
	return Improper{a, b, c, d}
}

func (im Improper) String() string {
	return fmt.Sprintf("Improper(%s, %s, %s, %s)", im[0], im[1], im[2], im[3])
}
