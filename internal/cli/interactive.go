// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/solver"
)

const (
	prompt   = "> "
	helpText = `Commands:
  add <equation>   add an equation (a line containing '=' is added as is)
  list             show the equations entered so far
  remove <n>       remove equation number n
  clear            remove every equation
  solve            solve the current system
  help             show this text
  quit             leave
`
)

// Interactive reads commands from in until "quit", EOF or ctx is done.
// Equations are validated on entry; a rejected equation is reported and not
// stored. Only I/O failures end the session with an error.
func Interactive(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sess := solver.NewSession(cfg.SolverOptions()...)
	sc := bufio.NewScanner(in)

	fmt.Fprint(out, "Enter equations like '2x + y = 5'. Type 'help' for commands.\n")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, helpText)
		case "add":
			addEquation(out, sess, arg)
		case "list":
			listEquations(out, sess)
		case "remove":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "error: remove needs an equation number, got %q\n", arg)
				continue
			}
			eq, err := sess.Remove(n - 1)
			if err != nil {
				fmt.Fprintf(out, "error: no equation %d\n", n)
				continue
			}
			fmt.Fprintf(out, "removed: %s\n", eq)
		case "clear":
			sess.Clear()
			fmt.Fprint(out, "cleared\n")
		case "solve":
			rep, err := sess.Solve()
			if err != nil {
				if errors.Is(err, solver.ErrNoEquations) {
					fmt.Fprint(out, "no equations entered\n")
				} else {
					fmt.Fprintf(out, "error: %v\n", err)
				}
				continue
			}
			logger.Printf("solved %d equations: %s", sess.Len(), rep.Classification)
			if err := writeReport(out, cfg.Format, rep); err != nil {
				return err
			}
		default:
			if strings.Contains(line, "=") {
				addEquation(out, sess, line)
				continue
			}
			fmt.Fprintf(out, "unknown command %q; type 'help'\n", cmd)
		}
	}
}

func addEquation(out io.Writer, sess *solver.Session, eq string) {
	if err := sess.Add(eq); err != nil {
		var eqErr *solver.EquationError
		if errors.As(err, &eqErr) {
			err = eqErr.Err
		}
		fmt.Fprintf(out, "rejected: %v\n", err)
		return
	}
	fmt.Fprintf(out, "added #%d\n", sess.Len())
}

func listEquations(out io.Writer, sess *solver.Session) {
	eqs := sess.Equations()
	if len(eqs) == 0 {
		fmt.Fprint(out, "(no equations)\n")
		return
	}
	for i, eq := range eqs {
		fmt.Fprintf(out, "%d: %s\n", i+1, eq)
	}
}
