package topology

// CHARMM c36 atom types used by the built-in definitions.
var (
	typeNH1 = &AtomType{Code: "NH1", Mass: 14.007, Element: "N", Desc: "peptide nitrogen"}
	typeH   = &AtomType{Code: "H", Mass: 1.008, Element: "H", Desc: "polar hydrogen"}
	typeCT1 = &AtomType{Code: "CT1", Mass: 12.011, Element: "C", Desc: "aliphatic sp3 carbon, one hydrogen"}
	typeCT2 = &AtomType{Code: "CT2", Mass: 12.011, Element: "C", Desc: "aliphatic sp3 carbon, two hydrogens"}
	typeCT3 = &AtomType{Code: "CT3", Mass: 12.011, Element: "C", Desc: "aliphatic sp3 carbon, three hydrogens"}
	typeHB1 = &AtomType{Code: "HB1", Mass: 1.008, Element: "H", Desc: "backbone hydrogen"}
	typeHB2 = &AtomType{Code: "HB2", Mass: 1.008, Element: "H", Desc: "backbone hydrogen"}
	typeHA  = &AtomType{Code: "HA", Mass: 1.008, Element: "H", Desc: "nonpolar hydrogen"}
	typeC   = &AtomType{Code: "C", Mass: 12.011, Element: "C", Desc: "carbonyl carbon"}
	typeO   = &AtomType{Code: "O", Mass: 15.999, Element: "O", Desc: "carbonyl oxygen"}
	typeOT  = &AtomType{Code: "OT", Mass: 15.9994, Element: "O", Desc: "TIP3P water oxygen"}
	typeHT  = &AtomType{Code: "HT", Mass: 1.008, Element: "H", Desc: "TIP3P water hydrogen"}
)

func atomDef(name string, typ *AtomType, charge float64) *AtomDef {
	return &AtomDef{Name: name, Type: typ, Charge: charge}
}

func alanine() *ResidueDef {
	def := NewResidueDef("ALA", KindProtein, []*AtomDef{
		atomDef("N", typeNH1, -0.47),
		atomDef("HN", typeH, 0.31),
		atomDef("CA", typeCT1, 0.07),
		atomDef("HA", typeHB1, 0.09),
		atomDef("CB", typeCT3, -0.27),
		atomDef("HB1", typeHA, 0.09),
		atomDef("HB2", typeHA, 0.09),
		atomDef("HB3", typeHA, 0.09),
		atomDef("C", typeC, 0.51),
		atomDef("O", typeO, -0.51),
	})
	def.Desc = "alanine"
	def.Groups = [][]string{
		{"N", "HN", "CA", "HA"},
		{"CB", "HB1", "HB2", "HB3"},
		{"C", "O"},
	}
	def.Bonds = []Bond{
		NewBond("CA", "CB", BondSingle),
		NewBond("N", "HN", BondSingle),
		NewBond("N", "CA", BondSingle),
		NewBond("CA", "C", BondSingle),
		NewBond("C", "+N", BondSingle),
		NewBond("CA", "HA", BondSingle),
		NewBond("CB", "HB1", BondSingle),
		NewBond("CB", "HB2", BondSingle),
		NewBond("CB", "HB3", BondSingle),
		NewBond("O", "C", BondDouble),
	}
	def.Impropers = []Improper{
		NewImproper("N", "-C", "CA", "HN"),
		NewImproper("C", "CA", "+N", "O"),
	}
	markDonor(def, "HN", "N")
	markAcceptor(def, "O")
	return def
}

func glycine() *ResidueDef {
	def := NewResidueDef("GLY", KindProtein, []*AtomDef{
		atomDef("N", typeNH1, -0.47),
		atomDef("HN", typeH, 0.31),
		atomDef("CA", typeCT2, -0.02),
		atomDef("HA1", typeHB2, 0.09),
		atomDef("HA2", typeHB2, 0.09),
		atomDef("C", typeC, 0.51),
		atomDef("O", typeO, -0.51),
	})
	def.Desc = "glycine"
	def.Groups = [][]string{
		{"N", "HN", "CA", "HA1", "HA2"},
		{"C", "O"},
	}
	def.Bonds = []Bond{
		NewBond("N", "HN", BondSingle),
		NewBond("N", "CA", BondSingle),
		NewBond("CA", "C", BondSingle),
		NewBond("C", "+N", BondSingle),
		NewBond("CA", "HA1", BondSingle),
		NewBond("CA", "HA2", BondSingle),
		NewBond("O", "C", BondDouble),
	}
	def.Impropers = []Improper{
		NewImproper("N", "-C", "CA", "HN"),
		NewImproper("C", "CA", "+N", "O"),
	}
	markDonor(def, "HN", "N")
	markAcceptor(def, "O")
	return def
}

func tip3() *ResidueDef {
	def := NewResidueDef("TIP3", KindWater, []*AtomDef{
		atomDef("OH2", typeOT, -0.834),
		atomDef("H1", typeHT, 0.417),
		atomDef("H2", typeHT, 0.417),
	})
	def.Desc = "TIP3P water model"
	def.Groups = [][]string{{"OH2", "H1", "H2"}}
	def.Bonds = []Bond{
		NewBond("OH2", "H1", BondSingle),
		NewBond("OH2", "H2", BondSingle),
	}
	markDonor(def, "H1", "OH2")
	markDonor(def, "H2", "OH2")
	markAcceptor(def, "OH2")
	return def
}

func markDonor(def *ResidueDef, hydrogen, heavy string) {
	if a, ok := def.Get(hydrogen); ok {
		a.Donor = true
	}
	if a, ok := def.Get(heavy); ok {
		a.Donor = true
	}
}

func markAcceptor(def *ResidueDef, name string) {
	if a, ok := def.Get(name); ok {
		a.Acceptor = true
	}
}

var builtin = map[string]*ResidueDef{}

// aliases maps residue names seen in structure records onto the
// definition that covers them. Waters arrive as HOH or WAT.
var aliases = map[string]string{
	"HOH": "TIP3",
	"WAT": "TIP3",
}

func init() {
	for _, def := range []*ResidueDef{alanine(), glycine(), tip3()} {
		builtin[def.Name] = def
	}
}

// Lookup returns the built-in definition for the given residue name,
// following aliases such as HOH for the water model.
func Lookup(resname string) (*ResidueDef, bool) {
	if canonical, ok := aliases[resname]; ok {
		resname = canonical
	}
	def, ok := builtin[resname]
	return def, ok
}
