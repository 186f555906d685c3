package builder

import (
	"fmt"

	"github.com/Truman-Xu/crimm/diag"
	"github.com/Truman-Xu/crimm/entity"
)

// AtomRecord carries one atom declaration from the record stream.
type AtomRecord struct {
	// Name is the trimmed atom name, e.g. "CA".
	Name string

	// FullName is the space-padded spelling from the source, e.g. " CA ".
	FullName string

	// Coord is nil when the position is absent or unknown.
	Coord *entity.Coord

	BFactor   float64
	Occupancy float64

	// AltLoc is the alternate-location tag; empty for ordered atoms.
	AltLoc string

	Serial  int
	Element string

	// Charge and Radius apply to PQR-mode records only.
	Charge *float64
	Radius *float64

	// PQR marks a charge/radius record; BFactor and Occupancy are
	// ignored for these.
	PQR bool
}

// AddAtom admits an atom record into the active residue.
//
// If no residue is active (the residue's construction failed), the
// record is dropped: attaching it anywhere would corrupt a prior node.
//
// Admission first normalizes name collisions: when the key is occupied
// by an atom whose full spelling differs, the incoming atom is re-keyed
// by its own full spelling, so atoms that collide only through padding
// stay distinct. Blank-altloc records insert directly; non-blank ones
// collect into DisorderedAtom groups, creating the group post hoc when a
// blank-tagged first occurrence is discovered to be disordered.
func (b *Builder) AddAtom(rec AtomRecord) error {
	if b.done {
		return ErrFinished
	}
	if b.residue == nil {
		// Construction of this residue already failed; drop the record.
		return nil
	}
	res := b.residue.Selected()
	if res == nil {
		return nil
	}

	key := rec.Name
	if existing, ok := res.Get(key); ok {
		if sel := existing.Selected(); sel != nil && sel.FullName != rec.FullName {
			// Two distinct atoms whose trimmed names collide through
			// padding: the incoming atom keeps its full spelling as key.
			if err := b.warn(diag.Diagnostic{
				Severity: diag.SevWarning,
				Category: diag.CatAtom,
				Code:     diag.CodeAtomRespelled,
				Message: fmt.Sprintf("atom names %q and %q differ only in spaces",
					sel.FullName, rec.FullName),
				Line:     b.line,
				AtomName: key,
			}); err != nil {
				return err
			}
			key = rec.FullName
		}
	}

	atom := &entity.Atom{
		Name:     key,
		FullName: rec.FullName,
		Coord:    rec.Coord,
		AltLoc:   rec.AltLoc,
		Serial:   rec.Serial,
		Element:  rec.Element,
	}
	if rec.PQR {
		atom.Charge = rec.Charge
		atom.Radius = rec.Radius
	} else {
		atom.BFactor = rec.BFactor
		atom.Occupancy = rec.Occupancy
	}
	b.atom = atom

	if rec.AltLoc == "" {
		return b.addOrderedAtom(res, key, atom)
	}
	return b.addDisorderedAtom(res, key, atom)
}

// addOrderedAtom inserts a blank-altloc atom under a free key. An
// occupied key with an identical spelling is a pure duplicate record:
// the first occurrence is kept.
func (b *Builder) addOrderedAtom(res *entity.Residue, key string, atom *entity.Atom) error {
	if res.Has(key) {
		return b.warn(diag.Diagnostic{
			Severity: diag.SevWarning,
			Category: diag.CatAtom,
			Code:     diag.CodeDuplicateAtom,
			Message:  fmt.Sprintf("atom %q defined twice in residue %s %s", key, res.Name(), res.ID()),
			Line:     b.line,
			AtomName: key,
		})
	}
	return res.Add(atom)
}

// addDisorderedAtom routes a non-blank-altloc atom into its group,
// creating the group as needed.
func (b *Builder) addDisorderedAtom(res *entity.Residue, key string, atom *entity.Atom) error {
	existing, ok := res.Get(key)
	if !ok {
		group := entity.NewDisorderedAtom(key)
		if err := group.Add(atom); err != nil {
			return err
		}
		if err := res.Add(group); err != nil {
			return err
		}
		res.FlagDisordered()
		return nil
	}

	switch node := existing.(type) {
	case *entity.DisorderedAtom:
		if err := node.Add(atom); err != nil {
			// Same altloc tag twice under one slot: keep the first.
			return b.warn(diag.Diagnostic{
				Severity: diag.SevWarning,
				Category: diag.CatAtom,
				Code:     diag.CodeDuplicateAltLoc,
				Message: fmt.Sprintf("altloc %q defined twice for atom %q in residue %s %s",
					atom.AltLoc, key, res.Name(), res.ID()),
				Line:     b.line,
				AtomName: key,
			})
		}
		atom.SetResidue(res)
		return nil

	case *entity.Atom:
		// Malformed source: the atom is disordered but its first
		// occurrence carried a blank tag. Form the group post hoc with
		// the existing atom first, preserving file order.
		group := entity.NewDisorderedAtom(key)
		if err := group.Add(node); err != nil {
			return err
		}
		if err := group.Add(atom); err != nil {
			return err
		}
		if err := res.Replace(key, group); err != nil {
			return err
		}
		res.FlagDisordered()
		return b.warn(diag.Diagnostic{
			Severity: diag.SevWarning,
			Category: diag.CatAtom,
			Code:     diag.CodeLateDisorder,
			Message: fmt.Sprintf("disordered atom %q found with blank altloc in residue %s %s",
				key, res.Name(), res.ID()),
			Line:     b.line,
			AtomName: key,
		})

	default:
		return fmt.Errorf("builder: unknown atom node variant %T for %q", existing, key)
	}
}
