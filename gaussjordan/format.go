// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtCell      = "%.3f"
	_fmtSeparator = "|"
	_cellPadding  = 2
)

// FormatMatrix renders rows as a fixed-width table.
//   - Every entry is formatted with ".3f" and right-justified to the widest
//     entry plus two spaces.
//   - A "|" token precedes the last column when there is more than one column.
//   - Tokens are joined by one space; each row ends with "\n".
//
// Complexity: O(R·C).
func FormatMatrix(rows [][]float64) string {
	width := 0
	for _, row := range rows {
		for _, v := range row {
			if n := len(fmt.Sprintf(_fmtCell, v)); n > width {
				width = n
			}
		}
	}
	width += _cellPadding

	var b strings.Builder
	tokens := make([]string, 0, 8)
	for _, row := range rows {
		tokens = tokens[:0]
		for j, v := range row {
			if j == len(row)-1 && len(row) > 1 {
				tokens = append(tokens, _fmtSeparator)
			}
			tokens = append(tokens, fmt.Sprintf("%*s", width, fmt.Sprintf(_fmtCell, v)))
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatReport renders the classification message and solution lines.
//
//	Inconsistent:  two lines naming the offending 0 = k row.
//	Identities:    one line.
//	Unique:        header, then "name = value" per variable.
//	Infinite:      header, free-variable list, blank line, then one line per
//	               basic variable ("x = 2.000 -1.000y").
func FormatReport(r *Result) string {
	var b strings.Builder
	switch r.Classification {
	case Inconsistent:
		b.WriteString("The system is INCONSISTENT (no solution).\n")
		if r.Conflict != nil {
			fmt.Fprintf(&b, "(found a row of the form [ 0 ... 0 | k ] with k = %.3f ≠ 0)\n", r.Conflict.RHS)
		}
	case IdentitiesOnly:
		b.WriteString("The system is consistent (e.g. 0 = 0) and has no variables.\n")
	case UniqueSolution:
		b.WriteString("The system has a UNIQUE SOLUTION:\n")
		for _, s := range r.Solutions {
			b.WriteString(s.String())
			b.WriteByte('\n')
		}
	case InfiniteSolutions:
		b.WriteString("The system has INFINITELY MANY SOLUTIONS.\n")
		fmt.Fprintf(&b, "Free variables: %s\n\n", strings.Join(r.Free, ", "))
		for _, s := range r.Solutions {
			if s.Kind == Free {
				continue
			}
			b.WriteString(s.String())
			b.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&b, "Unclassified system (%s).\n", r.Classification)
	}

	return b.String()
}
