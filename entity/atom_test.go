package entity

import (
	"errors"
	"testing"
)

func newTestAtom(name, altloc string, occ float64) *Atom {
	return &Atom{
		Name:      name,
		FullName:  " " + name + " ",
		Coord:     &Coord{1, 2, 3},
		Occupancy: occ,
		AltLoc:    altloc,
	}
}

func TestDisorderedAtomSelectsHighestOccupancy(t *testing.T) {
	group := NewDisorderedAtom("CA")
	if err := group.Add(newTestAtom("CA", "A", 0.4)); err != nil {
		t.Fatal(err)
	}
	if got := group.Selected().AltLoc; got != "A" {
		t.Fatalf("after first add, selected = %q, want A", got)
	}

	if err := group.Add(newTestAtom("CA", "B", 0.6)); err != nil {
		t.Fatal(err)
	}
	if got := group.Selected().AltLoc; got != "B" {
		t.Fatalf("after higher occupancy add, selected = %q, want B", got)
	}

	// Ties keep the earlier arrival.
	if err := group.Add(newTestAtom("CA", "C", 0.6)); err != nil {
		t.Fatal(err)
	}
	if got := group.Selected().AltLoc; got != "B" {
		t.Fatalf("after tied add, selected = %q, want B", got)
	}
}

func TestDisorderedAtomDuplicateAltLoc(t *testing.T) {
	group := NewDisorderedAtom("CB")
	if err := group.Add(newTestAtom("CB", "A", 0.5)); err != nil {
		t.Fatal(err)
	}
	err := group.Add(newTestAtom("CB", "A", 0.5))
	if !errors.Is(err, ErrDuplicateAltLoc) {
		t.Fatalf("duplicate altloc err = %v, want ErrDuplicateAltLoc", err)
	}
	if group.Len() != 1 {
		t.Fatalf("group has %d alternates after rejected add, want 1", group.Len())
	}
}

func TestDisorderedAtomSelectPins(t *testing.T) {
	group := NewDisorderedAtom("CG")
	group.Add(newTestAtom("CG", "A", 0.3))
	if err := group.Select("A"); err != nil {
		t.Fatal(err)
	}
	// A later alternate with higher occupancy must not displace a pinned
	// selection.
	group.Add(newTestAtom("CG", "B", 0.7))
	if got := group.Selected().AltLoc; got != "A" {
		t.Fatalf("pinned selection moved to %q", got)
	}

	if err := group.Select("Z"); !errors.Is(err, ErrUnknownAltLoc) {
		t.Fatalf("unknown altloc err = %v, want ErrUnknownAltLoc", err)
	}
}

func TestDisorderedAtomAlternatesOrder(t *testing.T) {
	group := NewDisorderedAtom("OG")
	group.Add(newTestAtom("OG", "B", 0.5))
	group.Add(newTestAtom("OG", "A", 0.5))
	alts := group.Alternates()
	if len(alts) != 2 || alts[0].AltLoc != "B" || alts[1].AltLoc != "A" {
		t.Fatalf("alternates not in insertion order: %v", alts)
	}
}
