// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/linsys/solver"
)

// Run performs one solve pass, or an interactive session when cfg.Interactive
// is set. Equations come from cfg.Equations, then cfg.File, then stdin.
// logger receives verbose diagnostics; pass nil to discard them.
func Run(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if logger == nil || !cfg.Verbose {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Interactive {
		return Interactive(ctx, cfg, stdin, stdout, logger)
	}

	eqs, err := collectEquations(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Printf("read %d equations", len(eqs))

	rep, err := solver.Solve(eqs, cfg.SolverOptions()...)
	if err != nil {
		return err
	}
	logger.Printf("solved: %d variables, rank %d, %s", len(rep.Variables), rep.Rank, rep.Classification)

	return writeReport(stdout, cfg.Format, rep)
}

func collectEquations(cfg Config, stdin io.Reader) ([]string, error) {
	if len(cfg.Equations) > 0 {
		return cfg.Equations, nil
	}
	if cfg.File != "" && cfg.File != "-" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("open equations: %w", err)
		}
		defer f.Close()
		return ReadEquations(f)
	}
	return ReadEquations(stdin)
}

// ReadEquations returns the non-blank lines of r, trimmed. Lines starting
// with '#' are comments.
func ReadEquations(r io.Reader) ([]string, error) {
	var eqs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eqs = append(eqs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read equations: %w", err)
	}
	return eqs, nil
}

func writeReport(w io.Writer, format string, rep *solver.Report) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	_, err := io.WriteString(w, rep.Text())
	return err
}
