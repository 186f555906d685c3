package entity

import "testing"

func TestNewResIDNormalization(t *testing.T) {
	tests := []struct {
		name    string
		hetFlag string
		resName string
		seq     int
		icode   byte
		want    ResID
	}{
		{"blank", "", "ALA", 10, 0, ResID{"", 10, 0}},
		{"space flag", " ", "ALA", 10, 0, ResID{"", 10, 0}},
		{"water", "W", "HOH", 201, 0, ResID{"W", 201, 0}},
		{"bare het marker", "H", "FUC", 5, 0, ResID{"H_FUC", 5, 0}},
		{"qualified het flag", "H_FUC", "FUC", 5, 0, ResID{"H_FUC", 5, 0}},
		{"other marker", "X", "LIG", 7, 0, ResID{"H_LIG", 7, 0}},
		{"blank icode", "", "GLY", 3, ' ', ResID{"", 3, 0}},
		{"real icode", "", "GLY", 3, 'A', ResID{"", 3, 'A'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewResID(tc.hetFlag, tc.resName, tc.seq, tc.icode)
			if got != tc.want {
				t.Errorf("NewResID(%q, %q, %d, %q) = %v, want %v",
					tc.hetFlag, tc.resName, tc.seq, tc.icode, got, tc.want)
			}
		})
	}
}

func TestResIDPredicates(t *testing.T) {
	std := NewResID("", "ALA", 1, 0)
	wat := NewResID("W", "HOH", 2, 0)
	het := NewResID("H", "FUC", 3, 0)

	if std.IsHet() {
		t.Error("standard residue should not be het")
	}
	if !wat.IsHet() || !wat.IsWater() {
		t.Error("water should be het and water")
	}
	if !het.IsHet() || het.IsWater() {
		t.Error("het group should be het and not water")
	}
}

func TestResIDLess(t *testing.T) {
	a := ResID{"", 1, 0}
	b := ResID{"", 2, 0}
	c := ResID{"", 2, 'A'}
	d := ResID{"H_FUC", 2, 'A'}

	if !a.Less(b) || b.Less(a) {
		t.Error("ordering by sequence number failed")
	}
	if !b.Less(c) {
		t.Error("ordering by insertion code failed")
	}
	if !c.Less(d) {
		t.Error("ordering by hetero flag failed")
	}
}
