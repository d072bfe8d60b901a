// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults and functional options.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: With* constructors panic only on nonsensical values
//     (programmer error), never on data.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude below which an entry is treated as zero.
	DefaultEpsilon = 1e-9

	// DefaultPrecision is the number of decimal places kept by Round.
	DefaultPrecision = 9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: places must be non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved numeric policy for cleanup kernels (Snap, Cleanup).
type Options struct {
	eps       float64 // >= 0
	precision int     // >= 0 decimal places
}

// WithEpsilon sets the snap-to-zero tolerance.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets the number of decimal places kept by Cleanup.
// Panics when places is negative.
func WithPrecision(places int) Option {
	if places < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = places }
}

// NewOptions resolves opts over the package defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, precision: DefaultPrecision}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Precision returns the resolved number of decimal places.
func (o Options) Precision() int { return o.precision }
