// Package linsys solves systems of linear equations written as plain text,
// from parsing through Gauss-Jordan elimination to a classified answer.
//
// What is linsys?
//
//	A small, deterministic toolkit that brings together:
//		• Equation parsing: "2x + 3y - z = 7" into sparse rows and a variable registry
//		• Matrix primitives: an owned augmented buffer with checked row operations
//		• Reduction: reduced row echelon form with partial (or first-non-zero) pivoting
//		• Classification: inconsistent, unique, infinitely many, or identities only
//		• Front ends: the linsolve CLI and the linsolve-mcp tool server
//
// Under the hood, everything is organized under these packages:
//
//	equation/    tokenizer, Parse/Validate, Registry, Assemble into [A | b]
//	matrix/      Dense buffer, SwapRows/ScaleRow/AddScaledRow, Snap/Round cleanup
//	gaussjordan/ Reduce, PivotColumns, Classify, text rendering
//	solver/      one-shot Solve and the editable Session
//	cmd/         linsolve (CLI, interactive mode) and linsolve-mcp (stdio MCP)
//
// Quick example:
//
//	2x + y = 5          [ 2  1 | 5 ]        [ 1  0 | 2 ]
//	 x - y = 1    →     [ 1 -1 | 1 ]   →    [ 0  1 | 1 ]    →   x = 2, y = 1
//
//	go get github.com/katalvlaran/linsys
package linsys
