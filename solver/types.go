// SPDX-License-Identifier: MIT

package solver

import (
	"strings"

	"github.com/katalvlaran/linsys/gaussjordan"
)

// Report is the outcome of one solve pass.
//
// Matrix is the assembled augmented matrix before reduction; the embedded
// Result carries the RREF, classification and solutions.
type Report struct {
	Equations []string    `json:"equations"`
	Matrix    [][]float64 `json:"matrix"`
	gaussjordan.Result
}

// Text renders the reduced matrix followed by the classification message,
// the layout printed by the command-line front end.
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString("Reduced row echelon form:\n")
	b.WriteString(gaussjordan.FormatMatrix(r.RREF))
	b.WriteByte('\n')
	b.WriteString(gaussjordan.FormatReport(&r.Result))

	return b.String()
}
