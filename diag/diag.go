// Package diag collects construction diagnostics into an accumulating
// report instead of a global warning sink, so callers can inspect every
// recoverable issue found while assembling a structure and decide their
// own policy (ignore, log, or treat as fatal).
package diag

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Truman-Xu/crimm/entity"
)

// Severity classifies how serious a diagnostic is.
type Severity int

const (
	// SevInfo is informational: unusual but valid input.
	SevInfo Severity = iota

	// SevWarning is a recoverable defect; construction continued.
	SevWarning

	// SevError is a fatal construction error; part of the input was
	// rejected and data was dropped.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Category classifies which level of the hierarchy an issue belongs to.
type Category int

const (
	CatChain Category = iota
	CatResidue
	CatAtom
	CatStream
)

func (c Category) String() string {
	switch c {
	case CatChain:
		return "chain"
	case CatResidue:
		return "residue"
	case CatAtom:
		return "atom"
	case CatStream:
		return "stream"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalJSON encodes the category as its lowercase name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Code identifies the exact condition behind a diagnostic.
type Code string

const (
	// CodeDiscontinuousChain: a chain id was reopened after other
	// chains appeared; records were appended to the existing chain.
	CodeDiscontinuousChain Code = "discontinuous-chain"

	// CodeResidueRedefined: a residue was re-declared with the same
	// name at an occupied key; the existing node was reused.
	CodeResidueRedefined Code = "residue-redefined"

	// CodeAtomRespelled: two atom names differ only in whitespace
	// padding; the later one was re-keyed by its full spelling.
	CodeAtomRespelled Code = "atom-name-respelled"

	// CodeDuplicateAtom: an atom arrived twice with an identical
	// spelling and blank altloc; the first occurrence was kept.
	CodeDuplicateAtom Code = "duplicate-atom"

	// CodeLateDisorder: a disordered atom appeared after a blank-altloc
	// occurrence was already inserted; a group was formed post hoc.
	CodeLateDisorder Code = "late-disorder"

	// CodeBlankAltLocDuplicate: a duplicate residue with a different
	// name could not form a group because the existing residue holds
	// blank-altloc atoms; the residue's construction was aborted.
	CodeBlankAltLocDuplicate Code = "blank-altloc-duplicate"

	// CodeDuplicateAltLoc: an alternate arrived twice with the same
	// altloc tag under one atom slot; the first occurrence was kept.
	CodeDuplicateAltLoc Code = "duplicate-altloc"

	// CodeBadRecord: a stream record could not be decoded.
	CodeBadRecord Code = "bad-record"
)

// Diagnostic is a single recorded issue.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`

	// Line is the source line the triggering record came from, when the
	// feeding collaborator supplied one; zero otherwise.
	Line int `json:"line,omitempty"`

	// ResID identifies the residue slot involved, when applicable.
	ResID *entity.ResID `json:"res_id,omitempty"`

	// AtomName identifies the atom slot involved, when applicable.
	AtomName string `json:"atom_name,omitempty"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s/%s: %s", d.Severity, d.Category, d.Code, d.Message)
	if d.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", d.Line)
	}
	return b.String()
}

// Summary holds per-severity counts for a report.
type Summary struct {
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Report accumulates diagnostics during one construction session.
// It is not safe for concurrent use; each builder owns its own report.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     Summary      `json:"summary"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a diagnostic and updates the summary counts.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevInfo:
		r.Summary.Info++
	case SevWarning:
		r.Summary.Warnings++
	case SevError:
		r.Summary.Errors++
	}
}

// HasWarnings reports whether any warnings were recorded.
func (r *Report) HasWarnings() bool { return r.Summary.Warnings > 0 }

// HasErrors reports whether any errors were recorded.
func (r *Report) HasErrors() bool { return r.Summary.Errors > 0 }

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int { return len(r.Diagnostics) }

// BySeverity returns the diagnostics recorded at the given severity,
// in record order.
func (r *Report) BySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// FormatJSON returns the report as indented JSON.
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable report.
func (r *Report) FormatText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Construction report: %d errors, %d warnings, %d info\n",
		r.Summary.Errors, r.Summary.Warnings, r.Summary.Info)
	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}
	for _, d := range r.Diagnostics {
		b.WriteString("  " + d.String() + "\n")
	}
	return b.String()
}
