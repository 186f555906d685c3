package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Truman-Xu/crimm/builder"
	"github.com/Truman-Xu/crimm/entity"
	"github.com/Truman-Xu/crimm/stream"
)

var (
	// Global flags
	quiet   bool
	jsonOut bool
	latin1  bool
	strict  bool
)

var rootCmd = &cobra.Command{
	Use:   "crimmctl",
	Short: "Inspect macromolecular structures from event-record files",
	Long: `crimmctl replays construction event-record files into structure
hierarchies and reports on the result: chain and residue counts, recorded
disorder, construction diagnostics, and atoms missing against residue
templates. Gzip-compressed record files are read transparently.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&latin1, "latin1", false, "Decode record files as ISO 8859-1")
	rootCmd.PersistentFlags().
		BoolVar(&strict, "strict", false, "Treat recoverable construction defects as errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// buildFromFile replays the record file at path and returns the builder
// holding the finished structure and its report.
func buildFromFile(path string) (*builder.Builder, error) {
	f, err := stream.Open(path, &stream.Options{Latin1: latin1})
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	b := builder.New(&builder.Options{Strict: strict})
	if err := stream.Replay(f, b); err != nil {
		return nil, fmt.Errorf("replay failed: %w", err)
	}
	return b, nil
}

// structureFromFile is buildFromFile for commands that only need the
// hierarchy.
func structureFromFile(path string) (*entity.Structure, error) {
	b, err := buildFromFile(path)
	if err != nil {
		return nil, err
	}
	st, err := b.Structure()
	if err != nil {
		return nil, fmt.Errorf("record file did not finish the structure: %w", err)
	}
	return st, nil
}
