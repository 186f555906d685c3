package entity

import (
	"errors"
	"testing"
)

func TestResidueAddAndAccessors(t *testing.T) {
	res := NewResidue(NewResID("", "ALA", 1, 0), "ALA", "A001")
	n := newTestAtom("N", "", 1.0)
	ca := newTestAtom("CA", "", 1.0)
	if err := res.Add(n); err != nil {
		t.Fatal(err)
	}
	if err := res.Add(ca); err != nil {
		t.Fatal(err)
	}

	if err := res.Add(newTestAtom("CA", "", 1.0)); !errors.Is(err, ErrAtomExists) {
		t.Fatalf("duplicate key err = %v, want ErrAtomExists", err)
	}

	if res.Len() != 2 {
		t.Fatalf("Len = %d, want 2", res.Len())
	}
	atoms := res.Atoms()
	if atoms[0].Name != "N" || atoms[1].Name != "CA" {
		t.Fatalf("atoms out of insertion order: %v", atoms)
	}
	if n.Residue() != res {
		t.Error("Add did not set the atom's parent residue")
	}
	if res.SegID() != "A001" {
		t.Errorf("SegID = %q, want A001", res.SegID())
	}
}

func TestResidueReplacePreservesOrder(t *testing.T) {
	res := NewResidue(NewResID("", "SER", 2, 0), "SER", "")
	res.Add(newTestAtom("N", "", 1.0))
	og := newTestAtom("OG", "A", 0.5)
	res.Add(og)
	res.Add(newTestAtom("C", "", 1.0))

	group := NewDisorderedAtom("OG")
	group.Add(og)
	group.Add(newTestAtom("OG", "B", 0.5))
	if err := res.Replace("OG", group); err != nil {
		t.Fatal(err)
	}

	nodes := res.AtomNodes()
	if len(nodes) != 3 || nodes[1].AtomID() != "OG" {
		t.Fatalf("slot moved on replace: %v", nodes)
	}
	if _, ok := nodes[1].(*DisorderedAtom); !ok {
		t.Fatal("slot does not hold the group after replace")
	}

	bad := NewDisorderedAtom("CB")
	if err := res.Replace("OG", bad); err == nil {
		t.Fatal("replace with mismatched key should fail")
	}
}

func TestResidueUnpackedAtoms(t *testing.T) {
	res := NewResidue(NewResID("", "SER", 3, 0), "SER", "")
	res.Add(newTestAtom("N", "", 1.0))
	group := NewDisorderedAtom("OG")
	group.Add(newTestAtom("OG", "A", 0.6))
	group.Add(newTestAtom("OG", "B", 0.4))
	res.Add(group)
	res.FlagDisordered()

	if got := len(res.Atoms()); got != 2 {
		t.Fatalf("effective atoms = %d, want 2", got)
	}
	unpacked := res.UnpackedAtoms()
	if len(unpacked) != 3 {
		t.Fatalf("unpacked atoms = %d, want 3", len(unpacked))
	}
	if !res.Disordered() {
		t.Error("residue not flagged disordered")
	}
	if res.FullyDisordered() {
		t.Error("residue with a blank-altloc atom reported fully disordered")
	}
}

func TestResidueFullyDisordered(t *testing.T) {
	res := NewResidue(NewResID("", "CYS", 4, 0), "CYS", "")
	group := NewDisorderedAtom("SG")
	group.Add(newTestAtom("SG", "A", 0.5))
	group.Add(newTestAtom("SG", "B", 0.5))
	res.Add(group)
	res.FlagDisordered()

	if !res.FullyDisordered() {
		t.Error("residue whose atoms all carry altloc tags should be fully disordered")
	}
}

func TestDisorderedResidueSelection(t *testing.T) {
	id := NewResID("", "GLY", 10, 0)
	group := NewDisorderedResidue(id)
	gly := NewResidue(id, "GLY", "")
	ala := NewResidue(id, "ALA", "")

	if err := group.Add(gly); err != nil {
		t.Fatal(err)
	}
	if err := group.Add(ala); err != nil {
		t.Fatal(err)
	}
	// The latest variant is active while records stream in.
	if group.Selected() != ala {
		t.Fatal("latest added variant is not active")
	}

	if err := group.Add(NewResidue(id, "ALA", "")); !errors.Is(err, ErrDuplicateVariant) {
		t.Fatalf("duplicate variant err = %v, want ErrDuplicateVariant", err)
	}

	if err := group.Activate("GLY"); err != nil {
		t.Fatal(err)
	}
	if group.Selected() != gly {
		t.Fatal("Activate did not move the selection")
	}
	if group.Pinned() {
		t.Error("Activate must not pin")
	}

	if err := group.Select("ALA"); err != nil {
		t.Fatal(err)
	}
	if err := group.Activate("GLY"); err != nil {
		t.Fatal(err)
	}
	if group.Selected() != ala {
		t.Fatal("Activate displaced a pinned selection")
	}

	if err := group.Select("TRP"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("unknown variant err = %v, want ErrUnknownVariant", err)
	}
}
