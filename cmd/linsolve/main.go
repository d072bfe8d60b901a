// Command linsolve solves systems of linear equations by Gauss-Jordan
// elimination.
//
//	linsolve "2x + y = 5" "x - y = 1"
//	linsolve -f system.txt -format json
//	linsolve -i
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/linsys/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[linsolve] ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stdin, os.Stdout, log.Default()); err != nil {
		log.Fatalf("%v", err)
	}
}
