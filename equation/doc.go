// Package equation turns free-form linear equations such as "2x + 3y = 5"
// into sparse coefficient rows over a shared variable ordering.
//
// Overview:
//
//   - Registry assigns each variable name a stable column index in
//     first-seen order. One Registry is owned by one solve pass and threaded
//     explicitly through every Parse call of that pass; there is no
//     package-level state.
//   - Parse reads one equation. The left side is a sum of terms (optional
//     sign, optional numeric coefficient, optional identifier); the right side
//     must be a single numeric literal. Constants on the left are moved to the
//     right, repeated variables are summed.
//   - Assemble pads a batch of rows to the final variable count and returns
//     the augmented matrix [A | b] as a *matrix.Dense.
//
// Grammar (whitespace is stripped before scanning):
//
//	equation   = left "=" number
//	left       = term { sign { sign } term } [ sign { sign } ]
//	term       = [ sign { sign } ] ( number [ identifier ] | identifier )
//	number     = digits [ "." [ digits ] ] | "." digits
//	identifier = ( letter | "_" ) { letter | digit | "_" }
//
// Consecutive signs multiply ("x+-y" is x - y, "x--y" is x + y). Trailing
// signs are ignored. Names are case-sensitive exact tokens.
//
// Errors:
//
//	Every failure is a *ParseError whose Unwrap returns one of
//	ErrMalformedEquation, ErrInvalidConstant, ErrUnrecognizedToken or
//	ErrEmptyEquation.
package equation
