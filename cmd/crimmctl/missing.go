package main

import (
	"github.com/spf13/cobra"

	"github.com/Truman-Xu/crimm/topology"
)

var missingWithH bool

func init() {
	cmd := &cobra.Command{
		Use:   "missing <record-file>",
		Short: "Report atoms missing against built-in residue templates",
		Long: `Replays a record file and compares every residue against the built-in
CHARMM c36 template of the same name. Residues without a template are
skipped. By default only heavy atoms are reported; unmodelled hydrogens
are expected in experimental data.

Example:
  crimmctl missing 1abc.rec
  crimmctl missing --hydrogens 1abc.rec`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMissing(args[0])
		},
	}
	cmd.Flags().BoolVar(&missingWithH, "hydrogens", false, "Report missing hydrogens too")
	rootCmd.AddCommand(cmd)
}

type missingInfo struct {
	Chain   string   `json:"chain"`
	Residue string   `json:"residue"`
	Seq     int      `json:"seq"`
	Atoms   []string `json:"atoms"`
}

func runMissing(path string) error {
	st, err := structureFromFile(path)
	if err != nil {
		return err
	}

	var report []missingInfo
	skipped := 0
	for _, m := range st.Models() {
		for _, c := range m.Chains() {
			for _, res := range c.Residues() {
				def, ok := topology.Lookup(res.Name())
				if !ok {
					skipped++
					continue
				}
				missing := topology.MissingAtoms(res, def, !missingWithH)
				if len(missing) == 0 {
					continue
				}
				report = append(report, missingInfo{
					Chain:   c.ID(),
					Residue: res.Name(),
					Seq:     res.ID().Seq,
					Atoms:   missing,
				})
			}
		}
	}

	if jsonOut {
		return printJSON(report)
	}

	if len(report) == 0 {
		printInfo("No missing atoms found.\n")
	}
	for _, mi := range report {
		printInfo("Chain %s %s %d: missing %v\n", mi.Chain, mi.Residue, mi.Seq, mi.Atoms)
	}
	if skipped > 0 {
		printInfo("(%d residues without a template were skipped)\n", skipped)
	}
	return nil
}
