// SPDX-License-Identifier: MIT

// Package mcptool exposes the solver as the MCP tool "solve_linear_system".
package mcptool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/linsys/gaussjordan"
	"github.com/katalvlaran/linsys/solver"
)

// ToolName is the registered MCP tool name.
const ToolName = "solve_linear_system"

// SolveInput is the tool input.
type SolveInput struct {
	Equations []string `json:"equations" jsonschema:"linear equations such as '2x + y = 5', one per entry"`
	Pivot     string   `json:"pivot,omitempty" jsonschema:"pivot strategy: partial (default) or first"`
}

// TermOutput is one free-variable term of an expressed solution.
type TermOutput struct {
	Variable string  `json:"variable" jsonschema:"free variable name"`
	Coeff    float64 `json:"coeff" jsonschema:"coefficient of the free variable"`
}

// SolutionOutput describes one variable.
type SolutionOutput struct {
	Variable string       `json:"variable" jsonschema:"variable name"`
	Kind     string       `json:"kind" jsonschema:"constant, expression or free"`
	Value    float64      `json:"value" jsonschema:"constant part of the value"`
	Terms    []TermOutput `json:"terms,omitempty" jsonschema:"free-variable terms added to value"`
	Text     string       `json:"text" jsonschema:"rendered solution line"`
}

// SolveResult is the tool output.
type SolveResult struct {
	Classification string           `json:"classification" jsonschema:"inconsistent, unique, infinite or identities"`
	Variables      []string         `json:"variables" jsonschema:"variable names in column order"`
	Rank           int              `json:"rank" jsonschema:"number of pivot columns"`
	Free           []string         `json:"free_variables,omitempty" jsonschema:"free variable names"`
	Solutions      []SolutionOutput `json:"solutions,omitempty" jsonschema:"per-variable solutions"`
	RREF           [][]float64      `json:"rref" jsonschema:"reduced row echelon form, one row per equation"`
	Text           string           `json:"text" jsonschema:"human-readable report"`
}

// SolveTool defines the MCP tool schema.
func SolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolName,
		Description: "Solves a system of linear equations by Gauss-Jordan elimination and classifies the solution set",
	}
}

// SolveHandler solves the submitted system. defaults apply before any
// per-call pivot choice.
func SolveHandler(defaults ...solver.Option) mcp.ToolHandlerFor[SolveInput, SolveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveResult, error) {
		if err := ctx.Err(); err != nil {
			return nil, SolveResult{}, err
		}
		opts := append([]solver.Option{}, defaults...)
		if input.Pivot != "" {
			strategy, ok := gaussjordan.ParsePivotStrategy(input.Pivot)
			if !ok {
				return nil, SolveResult{}, fmt.Errorf("unknown pivot strategy %q", input.Pivot)
			}
			opts = append(opts, solver.WithPivotStrategy(strategy))
		}

		rep, err := solver.Solve(input.Equations, opts...)
		if err != nil {
			return nil, SolveResult{}, fmt.Errorf("solve: %w", err)
		}

		return nil, toResult(rep), nil
	}
}

// Register adds the solver tool to server.
func Register(server *mcp.Server, defaults ...solver.Option) {
	mcp.AddTool(server, SolveTool(), SolveHandler(defaults...))
}

// NewServer returns an MCP server with the solver tool registered.
func NewServer(version string, defaults ...solver.Option) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "linsolve", Version: version}, nil)
	Register(server, defaults...)
	return server
}

func toResult(rep *solver.Report) SolveResult {
	out := SolveResult{
		Classification: rep.Classification.String(),
		Variables:      rep.Variables,
		Rank:           rep.Rank,
		Free:           rep.Free,
		RREF:           rep.RREF,
		Text:           rep.Text(),
	}
	for _, s := range rep.Solutions {
		so := SolutionOutput{
			Variable: s.Variable,
			Kind:     string(s.Kind),
			Value:    s.Value,
			Text:     s.String(),
		}
		for _, t := range s.Terms {
			so.Terms = append(so.Terms, TermOutput{Variable: t.Variable, Coeff: t.Coeff})
		}
		out.Solutions = append(out.Solutions, so)
	}
	return out
}
