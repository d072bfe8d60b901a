// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"strings"
)

// Classification is the solution-set shape of a reduced system.
type Classification int

const (
	// Inconsistent: some row reads 0 = k with k ≠ 0.
	Inconsistent Classification = iota + 1
	// UniqueSolution: every variable is a pivot variable.
	UniqueSolution
	// InfiniteSolutions: at least one free variable.
	InfiniteSolutions
	// IdentitiesOnly: no variables and every row reads 0 = 0.
	IdentitiesOnly
)

var classificationLabels = map[Classification]string{
	Inconsistent:      "inconsistent",
	UniqueSolution:    "unique",
	InfiniteSolutions: "infinite",
	IdentitiesOnly:    "identities",
}

// String returns the stable lower-case label.
func (c Classification) String() string {
	if s, ok := classificationLabels[c]; ok {
		return s
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// MarshalText encodes the label (used by encoding/json).
func (c Classification) MarshalText() ([]byte, error) {
	if _, ok := classificationLabels[c]; !ok {
		return nil, gjErrorf("MarshalText", ErrUnknownClassification)
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a label produced by MarshalText.
func (c *Classification) UnmarshalText(b []byte) error {
	for k, v := range classificationLabels {
		if v == string(b) {
			*c = k
			return nil
		}
	}
	return gjErrorf("UnmarshalText", fmt.Errorf("%q: %w", b, ErrUnknownClassification))
}

// SolutionKind tells how a variable's value is expressed.
type SolutionKind string

const (
	// Constant: the variable has a single value.
	Constant SolutionKind = "constant"
	// Expression: a basic variable written in terms of free variables.
	Expression SolutionKind = "expression"
	// Free: the variable is unconstrained.
	Free SolutionKind = "free"
)

// FreeTerm is coeff·variable in an expressed solution.
// Coeff already carries the sign flip from moving the term across "=".
type FreeTerm struct {
	Variable string  `json:"variable"`
	Coeff    float64 `json:"coeff"`
}

// Solution describes one variable of the system.
type Solution struct {
	Variable string       `json:"variable"`
	Kind     SolutionKind `json:"kind"`
	Value    float64      `json:"value"`           // constant part; 0 for Free
	Terms    []FreeTerm   `json:"terms,omitempty"` // Expression only
}

// String renders "x = 2.000", "x = 2.000 -1.000y" or "y is free".
func (s Solution) String() string {
	if s.Kind == Free {
		return s.Variable + " is free"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %.3f", s.Variable, s.Value)
	for _, t := range s.Terms {
		fmt.Fprintf(&b, " %+.3f%s", t.Coeff, t.Variable)
	}

	return b.String()
}

// Conflict locates the row that makes a system inconsistent.
type Conflict struct {
	Row int     `json:"row"`
	RHS float64 `json:"rhs"`
}

// Result is the outcome of reducing and classifying one system.
//
//   - RREF is the reduced matrix after cleanup, one slice per equation.
//   - Pivots lists pivot columns in increasing order; Rank == len(Pivots).
//   - Solutions has one entry per variable in column order (empty for
//     Inconsistent and IdentitiesOnly).
type Result struct {
	Classification Classification `json:"classification"`
	Variables      []string       `json:"variables"`
	RREF           [][]float64    `json:"rref"`
	Rank           int            `json:"rank"`
	Pivots         []int          `json:"pivot_columns"`
	Free           []string       `json:"free_variables,omitempty"`
	Solutions      []Solution     `json:"solutions,omitempty"`
	Conflict       *Conflict      `json:"conflict,omitempty"`
}

// Solution returns the entry for name.
func (r *Result) Solution(name string) (Solution, bool) {
	for _, s := range r.Solutions {
		if s.Variable == name {
			return s, true
		}
	}
	return Solution{}, false
}

// Pivot is one clean basis column of an RREF and the row holding its 1.
type Pivot struct {
	Row int
	Col int
}

// Step describes one pivot operation performed by Reduce.
type Step struct {
	Row   int     // pivot row after the swap
	Col   int     // pivot column
	From  int     // row the pivot was found in (== Row when no swap happened)
	Pivot float64 // pivot value before scaling
}
