package diag

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Truman-Xu/crimm/entity"
)

func TestReportCounts(t *testing.T) {
	r := NewReport()
	require.Equal(t, 0, r.Len())
	require.False(t, r.HasWarnings())
	require.False(t, r.HasErrors())

	r.Add(Diagnostic{Severity: SevWarning, Category: CatChain, Code: CodeDiscontinuousChain, Message: "chain A is discontinuous"})
	r.Add(Diagnostic{Severity: SevWarning, Category: CatAtom, Code: CodeDuplicateAtom, Message: "atom CA defined twice"})
	r.Add(Diagnostic{Severity: SevError, Category: CatResidue, Code: CodeBlankAltLocDuplicate, Message: "blank altlocs in duplicate residue"})

	require.Equal(t, 3, r.Len())
	require.Equal(t, 2, r.Summary.Warnings)
	require.Equal(t, 1, r.Summary.Errors)
	require.True(t, r.HasWarnings())
	require.True(t, r.HasErrors())

	warnings := r.BySeverity(SevWarning)
	require.Len(t, warnings, 2)
	require.Equal(t, CodeDiscontinuousChain, warnings[0].Code)
	require.Empty(t, r.BySeverity(SevInfo))
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SevWarning,
		Category: CatAtom,
		Code:     CodeAtomRespelled,
		Message:  `atom names " CA." and ".CA " differ only in spaces`,
		Line:     120,
	}
	s := d.String()
	require.Contains(t, s, "[warning]")
	require.Contains(t, s, "atom/atom-name-respelled")
	require.Contains(t, s, "(line 120)")

	// No line suffix when the feeder supplied none.
	d.Line = 0
	require.NotContains(t, d.String(), "line")
}

func TestReportFormatJSON(t *testing.T) {
	r := NewReport()
	id := entity.NewResID("", "SER", 5, 0)
	r.Add(Diagnostic{
		Severity: SevError,
		Category: CatResidue,
		Code:     CodeBlankAltLocDuplicate,
		Message:  "blank altlocs in duplicate residue SER",
		Line:     33,
		ResID:    &id,
	})

	out, err := r.FormatJSON()
	require.NoError(t, err)

	var decoded struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Category string `json:"category"`
			Code     string `json:"code"`
			Line     int    `json:"line"`
		} `json:"diagnostics"`
		Summary Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Diagnostics, 1)
	require.Equal(t, "error", decoded.Diagnostics[0].Severity)
	require.Equal(t, "residue", decoded.Diagnostics[0].Category)
	require.Equal(t, "blank-altloc-duplicate", decoded.Diagnostics[0].Code)
	require.Equal(t, 33, decoded.Diagnostics[0].Line)
	require.Equal(t, 1, decoded.Summary.Errors)
}

func TestReportFormatText(t *testing.T) {
	r := NewReport()
	require.Contains(t, r.FormatText(), "No issues found")

	r.Add(Diagnostic{Severity: SevWarning, Category: CatChain, Code: CodeDiscontinuousChain, Message: `chain "A" is discontinuous`})
	text := r.FormatText()
	require.True(t, strings.HasPrefix(text, "Construction report: 0 errors, 1 warnings"))
	require.Contains(t, text, "discontinuous-chain")
}
