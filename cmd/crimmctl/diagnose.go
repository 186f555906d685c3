package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	diagFormat     string
	diagOutputFile string
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <record-file>",
	Short: "Replay a record file and report every construction defect",
	Long: `Replays a record file and prints the full construction report:
discontinuous chains, re-declared residues, whitespace-collision atom
names, late-discovered disorder, duplicate records and rejected
residues, each with the source line that triggered it.`,
	Example: `  # Replay and show text report
  crimmctl diagnose 1abc.rec

  # Output JSON for programmatic analysis
  crimmctl diagnose --format json 1abc.rec

  # Save report to file
  crimmctl diagnose --output report.txt 1abc.rec`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagnoseCmd.Flags().StringVarP(&diagFormat, "format", "f", "text",
		"Output format: text, json")
	diagnoseCmd.Flags().StringVarP(&diagOutputFile, "output", "o", "",
		"Write report to file instead of stdout")

	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	b, err := buildFromFile(args[0])
	if err != nil {
		return err
	}
	rep := b.Report()

	var out string
	switch diagFormat {
	case "json":
		out, err = rep.FormatJSON()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out += "\n"
	case "text":
		out = rep.FormatText()
	default:
		return fmt.Errorf("unknown format %q", diagFormat)
	}

	if diagOutputFile != "" {
		if err := os.WriteFile(diagOutputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		printInfo("Report written to %s\n", diagOutputFile)
		return nil
	}
	fmt.Print(out)

	if rep.HasErrors() {
		os.Exit(1)
	}
	return nil
}
