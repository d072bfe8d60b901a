// SPDX-License-Identifier: MIT

// Package gaussjordan: numeric policy and pivot strategy.
//
// Defaults mirror the matrix package: eps = 1e-9, 9 decimal places,
// partial pivoting. With* constructors panic only on nonsensical values.
package gaussjordan

import (
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// PivotStrategy selects how Reduce picks the pivot row within a column.
type PivotStrategy int

const (
	// PartialPivot picks the row with the largest |entry| (numerically robust).
	PartialPivot PivotStrategy = iota
	// FirstNonZero picks the first row whose |entry| ≥ eps.
	FirstNonZero
)

// String returns "partial" or "first".
func (p PivotStrategy) String() string {
	if p == FirstNonZero {
		return "first"
	}
	return "partial"
}

// ParsePivotStrategy maps "partial" / "first" to a strategy.
func ParsePivotStrategy(s string) (PivotStrategy, bool) {
	switch s {
	case "partial", "":
		return PartialPivot, true
	case "first":
		return FirstNonZero, true
	default:
		return PartialPivot, false
	}
}

const (
	panicEpsilonInvalid   = "gaussjordan: WithEpsilon: eps must be finite, positive"
	panicPrecisionInvalid = "gaussjordan: WithPrecision: places must be non-negative"
	panicStrategyInvalid  = "gaussjordan: WithPivotStrategy: unknown strategy"
)

// Option configures Reduce and Classify.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	Epsilon   float64
	Precision int
	Strategy  PivotStrategy
	OnPivot   func(Step) // optional hook, called once per pivot in order
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:   matrix.DefaultEpsilon,
		Precision: matrix.DefaultPrecision,
		Strategy:  PartialPivot,
	}
}

// WithEpsilon sets the zero tolerance. Panics unless 0 < eps < +Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithPrecision sets the number of decimal places kept after reduction.
func WithPrecision(places int) Option {
	if places < 0 {
		panic(panicPrecisionInvalid)
	}
	return func(o *Options) { o.Precision = places }
}

// WithPivotStrategy selects the pivot rule.
func WithPivotStrategy(s PivotStrategy) Option {
	if s != PartialPivot && s != FirstNonZero {
		panic(panicStrategyInvalid)
	}
	return func(o *Options) { o.Strategy = s }
}

// WithOnPivot installs a hook observing every pivot step.
func WithOnPivot(fn func(Step)) Option {
	return func(o *Options) { o.OnPivot = fn }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
