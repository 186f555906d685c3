package builder

import (
	"fmt"

	"github.com/Truman-Xu/crimm/diag"
	"github.com/Truman-Xu/crimm/entity"
)

// BeginResidue admits a residue declaration into the current chain.
//
// The fast path inserts a fresh residue under an unused key. A key that
// is already occupied, or a bare sequence number already claimed by a
// heteroatom group under a different flag, routes through disorder
// resolution: the record is either a re-occurrence of a known variant, a
// harmless re-declaration, or true point-mutation disorder that absorbs
// the existing residue into a DisorderedResidue group.
//
// A *ConstructionError return means the declaration was rejected as
// malformed; the chain is unchanged and atom records up to the next
// BeginResidue are dropped.
func (b *Builder) BeginResidue(name, hetFlag string, seq int, icode byte) error {
	if b.done {
		return ErrFinished
	}
	if b.chain == nil {
		return ErrNoChain
	}
	id := entity.NewResID(hetFlag, name, seq, icode)

	if node, ok := b.chain.Get(id); ok {
		return b.resolveDisordered(node, id, name)
	}
	if hets := b.chain.FindHetBySeq(seq); len(hets) > 0 {
		node, _ := b.chain.Get(hets[0])
		return b.resolveDisordered(node, id, name)
	}

	res := entity.NewResidue(id, name, b.segID)
	if err := b.chain.Add(res); err != nil {
		return err
	}
	b.residue = res
	return nil
}

// resolveDisordered applies the disorder-resolution policy to a residue
// declaration whose slot is already occupied by duplicate.
func (b *Builder) resolveDisordered(duplicate entity.ResidueNode, id entity.ResID, name string) error {
	switch dup := duplicate.(type) {
	case *entity.DisorderedResidue:
		if dup.Has(name) {
			// Pure re-occurrence of a known alternate: move the cursor,
			// create nothing.
			if err := dup.Activate(name); err != nil {
				return err
			}
			b.residue = dup
			return nil
		}
		res := entity.NewResidue(id, name, b.segID)
		if err := dup.Add(res); err != nil {
			return err
		}
		res.SetChain(b.chain)
		b.residue = dup
		return nil

	case *entity.Residue:
		if dup.Name() == name {
			// Exact re-declaration: a formatting quirk, not disorder.
			b.residue = dup
			return b.warn(diag.Diagnostic{
				Severity: diag.SevWarning,
				Category: diag.CatResidue,
				Code:     diag.CodeResidueRedefined,
				Message:  fmt.Sprintf("residue %s %s already defined with the same name", name, id),
				Line:     b.line,
				ResID:    &id,
			})
		}

		// True point-mutation disorder. The existing residue may only be
		// absorbed into a group if it is fully disordered; a blank-altloc
		// atom means the group would misrepresent the data.
		if !dup.FullyDisordered() {
			b.residue = nil
			cerr := &ConstructionError{ID: id, ResName: name, Line: b.line}
			b.report.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatResidue,
				Code:     diag.CodeBlankAltLocDuplicate,
				Message:  cerr.Error(),
				Line:     b.line,
				ResID:    &id,
			})
			return cerr
		}

		// Absorb the existing residue and the new variant into a group
		// keyed by the existing residue's identity, in the same chain
		// position. Ownership transfers; nothing is destroyed.
		groupID := dup.ID()
		group := entity.NewDisorderedResidue(groupID)
		if err := group.Add(dup); err != nil {
			return err
		}
		res := entity.NewResidue(id, name, b.segID)
		if err := group.Add(res); err != nil {
			return err
		}
		if err := b.chain.Replace(groupID, group); err != nil {
			return err
		}
		b.residue = group
		return nil

	default:
		return fmt.Errorf("builder: unknown residue node variant %T at %s", duplicate, id)
	}
}
