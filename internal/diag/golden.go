package diag

import (
	"fmt"
	"sort"
	"strings"

	"balparse/internal/source"
)

// FormatGolden renders one line per diagnostic:
//
//	SYN2002 missing-token a.bal:3:9 expected=[;]
//
// Lines are sorted by position so golden files stay stable.
func FormatGolden(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Primary, sorted[j].Primary
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return sorted[i].Code < sorted[j].Code
	})

	lines := make([]string, 0, len(sorted))
	for _, d := range sorted {
		start, _ := fs.Resolve(d.Primary)
		line := fmt.Sprintf("%s %s %s:%d:%d", d.Code.ID(), d.Kind, fs.DisplayPath(d.Primary.File), start.Line, start.Col)
		if len(d.Expected) > 0 {
			names := make([]string, len(d.Expected))
			for i, k := range d.Expected {
				names[i] = k.String()
			}
			line += " expected=[" + strings.Join(names, " ") + "]"
		}
		if d.Message != "" {
			line += " " + strings.ReplaceAll(d.Message, "\n", " ")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
