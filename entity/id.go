package entity

import (
	"fmt"
	"strings"
)

// Hetero-flag values used in residue identities. Anything other than the
// blank flag and the reserved water flag is the "H_" prefix followed by
// the residue name, e.g. "H_FUC".
const (
	// HetBlank marks a standard polymer residue.
	HetBlank = ""

	// HetWater marks a water molecule.
	HetWater = "W"

	// hetPrefix leads the flag of every non-water heteroatom group.
	hetPrefix = "H_"
)

// ResID is the composite identity of a residue slot within a chain:
// hetero flag, sequence number and insertion code. Two residues with the
// same ResID in one chain occupy the same slot.
//
// ResID is comparable and can be used as a map key.
type ResID struct {
	HetFlag string
	Seq     int
	ICode   byte
}

// NewResID builds a normalized ResID from raw record fields. The hetero
// flag is rewritten the way source records imply it: blank (or a single
// space) stays blank, the reserved water flag passes through, an already
// qualified "H_..." flag is kept, and any other marker becomes
// "H_" + resName. A blank insertion code (space) normalizes to zero.
func NewResID(hetFlag, resName string, seq int, icode byte) ResID {
	flag := strings.TrimSpace(hetFlag)
	switch {
	case flag == HetBlank:
		// standard residue
	case flag == HetWater:
		// reserved
	case strings.HasPrefix(flag, hetPrefix):
		// already qualified
	default:
		flag = hetPrefix + resName
	}
	if icode == ' ' {
		icode = 0
	}
	return ResID{HetFlag: flag, Seq: seq, ICode: icode}
}

// IsHet reports whether the id belongs to any heteroatom group,
// water included.
func (id ResID) IsHet() bool { return id.HetFlag != HetBlank }

// IsWater reports whether the id belongs to a water molecule.
func (id ResID) IsWater() bool { return id.HetFlag == HetWater }

// Less orders ids by sequence number, then insertion code, then hetero
// flag. The order is total and deterministic for identical input.
func (id ResID) Less(other ResID) bool {
	if id.Seq != other.Seq {
		return id.Seq < other.Seq
	}
	if id.ICode != other.ICode {
		return id.ICode < other.ICode
	}
	return id.HetFlag < other.HetFlag
}

func (id ResID) String() string {
	icode := " "
	if id.ICode != 0 {
		icode = string(id.ICode)
	}
	flag := id.HetFlag
	if flag == HetBlank {
		flag = " "
	}
	return fmt.Sprintf("(%s, %d, %s)", flag, id.Seq, icode)
}
