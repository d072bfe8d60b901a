// Command linsolve-mcp serves the solve_linear_system MCP tool on stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/linsys/internal/cli"
	"github.com/katalvlaran/linsys/internal/mcptool"
)

var version = "dev"

// main starts the MCP server on stdio.
func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[linsolve-mcp] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcptool.NewServer(version, cfg.SolverOptions()...)
	if cfg.Verbose {
		log.Printf("serving %s on stdio (pivot=%s, epsilon=%g)", mcptool.ToolName, cfg.Pivot, cfg.Epsilon)
	}
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
