package entity

import (
	"errors"
	"testing"
)

func TestChainAddGetDetach(t *testing.T) {
	chain := NewChain("A")
	r1 := NewResidue(NewResID("", "MET", 1, 0), "MET", "")
	r2 := NewResidue(NewResID("", "ALA", 2, 0), "ALA", "")
	if err := chain.Add(r1); err != nil {
		t.Fatal(err)
	}
	if err := chain.Add(r2); err != nil {
		t.Fatal(err)
	}
	if err := chain.Add(NewResidue(r1.ID(), "MET", "")); !errors.Is(err, ErrResidueExists) {
		t.Fatalf("duplicate key err = %v, want ErrResidueExists", err)
	}
	if r1.Chain() != chain {
		t.Error("Add did not set the residue's parent chain")
	}

	node, ok := chain.Detach(r1.ID())
	if !ok || node != ResidueNode(r1) {
		t.Fatal("Detach did not return the stored node")
	}
	if chain.Has(r1.ID()) || chain.Len() != 1 {
		t.Fatal("Detach left the slot behind")
	}
}

func TestChainFindHetBySeq(t *testing.T) {
	chain := NewChain("B")
	chain.Add(NewResidue(NewResID("", "ALA", 10, 0), "ALA", ""))
	chain.Add(NewResidue(NewResID("H", "FUC", 10, 0), "FUC", ""))
	chain.Add(NewResidue(NewResID("H", "NAG", 10, 'A'), "NAG", ""))
	chain.Add(NewResidue(NewResID("W", "HOH", 10, 0), "HOH", ""))
	chain.Add(NewResidue(NewResID("H", "FUC", 11, 0), "FUC", ""))

	ids := chain.FindHetBySeq(10)
	if len(ids) != 3 {
		t.Fatalf("FindHetBySeq returned %d ids, want 3", len(ids))
	}
	// Chain order, the standard residue excluded.
	want := []ResID{{"H_FUC", 10, 0}, {"H_NAG", 10, 'A'}, {"W", 10, 0}}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("ids[%d] = %v, want %v", i, id, want[i])
		}
	}
	if got := chain.FindHetBySeq(99); got != nil {
		t.Errorf("absent seq returned %v", got)
	}
}

func TestChainFinishResetsUnpinnedGroups(t *testing.T) {
	chain := NewChain("C")
	id := NewResID("", "SER", 5, 0)
	group := NewDisorderedResidue(id)
	ser := NewResidue(id, "SER", "")
	// The mutation variant carries a distinct identity even though it
	// shares the group's slot.
	ala := NewResidue(NewResID("H", "ALA", 5, 0), "ALA", "")
	group.Add(ser)
	group.Add(ala)
	chain.Add(group)

	if group.Selected() != ala {
		t.Fatal("latest variant should be active before Finish")
	}
	chain.Finish()
	if group.Selected() != ser {
		t.Fatal("Finish did not reset to the slot's original occupant")
	}

	// A pinned selection survives the finishing pass.
	group.Select("ALA")
	chain.Finish()
	if group.Selected() != ala {
		t.Fatal("Finish displaced a pinned selection")
	}
}

func TestChainReplacePreservesOrder(t *testing.T) {
	chain := NewChain("D")
	first := NewResidue(NewResID("", "GLY", 1, 0), "GLY", "")
	second := NewResidue(NewResID("", "SER", 2, 0), "SER", "")
	third := NewResidue(NewResID("", "LEU", 3, 0), "LEU", "")
	chain.Add(first)
	chain.Add(second)
	chain.Add(third)

	group := NewDisorderedResidue(second.ID())
	group.Add(second)
	group.Add(NewResidue(second.ID(), "ALA", ""))
	if err := chain.Replace(second.ID(), group); err != nil {
		t.Fatal(err)
	}

	nodes := chain.ResidueNodes()
	if len(nodes) != 3 || nodes[1].ID() != second.ID() {
		t.Fatalf("slot moved on replace: %v", nodes)
	}
	if _, ok := nodes[1].(*DisorderedResidue); !ok {
		t.Fatal("slot does not hold the group after replace")
	}
	if len(chain.DisorderedResidues()) != 1 {
		t.Fatal("group not reported by DisorderedResidues")
	}
}

func TestStructureUnpackedAtomsAndSerials(t *testing.T) {
	st := NewStructure("1abc")
	model := NewModel(0)
	st.Add(model)
	chain := NewChain("A")
	model.Add(chain)

	res := NewResidue(NewResID("", "SER", 1, 0), "SER", "")
	res.Add(newTestAtom("N", "", 1.0))
	group := NewDisorderedAtom("OG")
	group.Add(newTestAtom("OG", "A", 0.5))
	group.Add(newTestAtom("OG", "B", 0.5))
	res.Add(group)
	chain.Add(res)

	id := NewResID("", "GLY", 2, 0)
	rgroup := NewDisorderedResidue(id)
	gly := NewResidue(id, "GLY", "")
	gly.Add(newTestAtom("N", "A", 0.5))
	ala := NewResidue(id, "ALA", "")
	ala.Add(newTestAtom("N", "B", 0.5))
	rgroup.Add(gly)
	rgroup.Add(ala)
	chain.Add(rgroup)

	atoms := st.UnpackedAtoms()
	if len(atoms) != 5 {
		t.Fatalf("unpacked atoms = %d, want 5", len(atoms))
	}

	st.ResetAtomSerials()
	for i, a := range atoms {
		if a.Serial != i+1 {
			t.Fatalf("atom %d has serial %d after renumber", i, a.Serial)
		}
	}
}
