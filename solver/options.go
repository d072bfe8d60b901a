// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/linsys/gaussjordan"

// Option configures the reduction step of a solve pass.
type Option = gaussjordan.Option

// Re-exported option constructors; see gaussjordan for semantics.
var (
	WithEpsilon       = gaussjordan.WithEpsilon
	WithPrecision     = gaussjordan.WithPrecision
	WithPivotStrategy = gaussjordan.WithPivotStrategy
	WithOnPivot       = gaussjordan.WithOnPivot
)
