// SPDX-License-Identifier: MIT

// Package cli parses command configuration and drives the linsolve
// front end: one-shot solves and the interactive session.
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/linsys/gaussjordan"
	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds linsolve configuration. Environment values are read first;
// flags override them.
type Config struct {
	Epsilon   float64 `env:"LINSOLVE_EPSILON"   envDefault:"1e-9"`
	Precision int     `env:"LINSOLVE_PRECISION" envDefault:"9"`
	Pivot     string  `env:"LINSOLVE_PIVOT"     envDefault:"partial"`
	Format    string  `env:"LINSOLVE_FORMAT"    envDefault:"text"`
	Verbose   bool    `env:"LINSOLVE_VERBOSE"   envDefault:"false"`

	File        string   // -f; "-" or empty reads stdin when no equations are given
	Interactive bool     // -i
	Equations   []string // positional arguments
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "zero tolerance used by elimination")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places kept after reduction")
	fs.StringVar(&cfg.Pivot, "pivot", cfg.Pivot, "pivot strategy: partial or first")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log each solve pass to stderr")
	fs.StringVar(&cfg.File, "f", "", "read equations from file, one per line")
	fs.BoolVar(&cfg.Interactive, "i", false, "interactive session")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Equations = fs.Args()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !(c.Epsilon > 0) || c.Epsilon >= 1 {
		return fmt.Errorf("epsilon %g: %w", c.Epsilon, ErrInvalidConfig)
	}
	if c.Precision < 0 || c.Precision > 15 {
		return fmt.Errorf("precision %d: %w", c.Precision, ErrInvalidConfig)
	}
	if _, ok := gaussjordan.ParsePivotStrategy(c.Pivot); !ok {
		return fmt.Errorf("pivot %q: %w", c.Pivot, ErrInvalidConfig)
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	return nil
}

// SolverOptions converts the numeric policy into solver options.
// Call only on a Config returned by ParseConfig.
func (c Config) SolverOptions() []solver.Option {
	strategy, _ := gaussjordan.ParsePivotStrategy(c.Pivot)
	opts := []solver.Option{solver.WithPivotStrategy(strategy)}
	if c.Epsilon != matrix.DefaultEpsilon {
		opts = append(opts, solver.WithEpsilon(c.Epsilon))
	}
	if c.Precision != matrix.DefaultPrecision {
		opts = append(opts, solver.WithPrecision(c.Precision))
	}
	return opts
}
