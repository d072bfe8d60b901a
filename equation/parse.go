// SPDX-License-Identifier: MIT

package equation

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads one equation against reg and returns its sparse row.
//
// Stages:
//  1. Strip whitespace; reject blank input (ErrEmptyEquation).
//  2. Split on "="; exactly one is required and the left side must be
//     non-empty (ErrMalformedEquation).
//  3. Parse the right side as a single literal (ErrInvalidConstant).
//  4. Scan the left side into terms. Variable terms accumulate into their
//     column, constant terms into a running left constant. Characters that
//     form no term are collected and reported (ErrUnrecognizedToken).
//  5. Register new names in first-seen order and return
//     Row{RHS: right - leftConstant, Width: reg.Len()}.
//
// reg is only mutated on success.
//
// Complexity: O(len(text)).
func Parse(text string, reg *Registry) (Row, error) {
	eq := stripSpace(text)
	if eq == "" {
		return Row{}, parseErrorf(text, ErrEmptyEquation, "")
	}
	if n := strings.Count(eq, "="); n != 1 {
		return Row{}, parseErrorf(text, ErrMalformedEquation, strconv.Itoa(n)+" '=' signs")
	}
	left, right, _ := strings.Cut(eq, "=")
	if left == "" {
		return Row{}, parseErrorf(text, ErrMalformedEquation, "empty left side")
	}

	rhs, ok := parseLiteral(right)
	if !ok {
		return Row{}, parseErrorf(text, ErrInvalidConstant, right)
	}

	terms, constant, err := scanLeft(text, left)
	if err != nil {
		return Row{}, err
	}

	// Commit names only now that the whole equation is known to be valid.
	byCol := make(map[int]float64, len(terms))
	for _, t := range terms {
		byCol[reg.Intern(t.name)] += t.coeff
	}
	row := Row{
		Terms: make([]Term, 0, len(byCol)),
		RHS:   rhs - constant,
		Width: reg.Len(),
	}
	for col, c := range byCol {
		row.Terms = append(row.Terms, Term{Column: col, Coeff: c})
	}
	sort.Slice(row.Terms, func(i, j int) bool { return row.Terms[i].Column < row.Terms[j].Column })

	return row, nil
}

// Validate reports whether text parses against a scratch copy of reg.
// reg itself is never modified. A nil reg validates against an empty registry.
func Validate(text string, reg *Registry) error {
	if reg == nil {
		reg = NewRegistry()
	}
	_, err := Parse(text, reg.Clone())

	return err
}

// rawTerm is a scanned variable term before column assignment.
type rawTerm struct {
	name  string
	coeff float64
}

// scanLeft tokenizes the left side. It returns variable terms in source
// order and the summed constant terms.
func scanLeft(eq, left string) ([]rawTerm, float64, error) {
	var (
		terms      []rawTerm
		constant   float64
		unknown    strings.Builder
		pos        int
		first      = true
		n          = len(left)
		sign       float64
		signed     bool
		lit, ident string
	)
	for pos < n {
		// Signs: any run, multiplied together.
		sign, signed = 1, false
		for pos < n && (left[pos] == '+' || left[pos] == '-') {
			if left[pos] == '-' {
				sign = -sign
			}
			signed = true
			pos++
		}
		if pos == n {
			break // trailing signs carry no term
		}
		start := pos
		lit, pos = scanNumber(left, pos)
		ident, pos = scanIdent(left, pos)
		if lit == "" && ident == "" {
			// Not the start of a term: record and skip one rune.
			r, size := decodeRune(left, pos)
			if r == '.' {
				pos += size // a lone decimal point is tolerated
				continue
			}
			unknown.WriteString(left[pos : pos+size])
			pos += size
			continue
		}
		if !signed && !first {
			// Two terms juxtaposed without an operator, e.g. "2.3.4" or "2x*3y".
			detail := left[start:]
			if unknown.Len() > 0 {
				detail = unknown.String()
			}
			return nil, 0, parseErrorf(eq, ErrUnrecognizedToken, detail)
		}
		first = false

		coeff := 1.0
		if lit != "" {
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, 0, parseErrorf(eq, ErrUnrecognizedToken, lit)
			}
			coeff = v
		}
		coeff *= sign
		if ident == "" {
			constant += coeff
			continue
		}
		terms = append(terms, rawTerm{name: ident, coeff: coeff})
	}
	if unknown.Len() > 0 {
		return nil, 0, parseErrorf(eq, ErrUnrecognizedToken, unknown.String())
	}

	return terms, constant, nil
}

// scanNumber consumes digits [ "." digits ] | "." digits starting at pos.
// It returns "" and pos unchanged when no number starts there.
func scanNumber(s string, pos int) (string, int) {
	start := pos
	digits := 0
	for pos < len(s) && isDigit(s[pos]) {
		pos++
		digits++
	}
	if pos < len(s) && s[pos] == '.' {
		frac := pos + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
			digits++
		}
		if digits > 0 {
			pos = frac
		}
	}
	if digits == 0 {
		return "", start
	}

	return s[start:pos], pos
}

// scanIdent consumes ( letter | "_" ) { letter | digit | "_" } starting at pos.
func scanIdent(s string, pos int) (string, int) {
	start := pos
	r, size := decodeRune(s, pos)
	if size == 0 || !(unicode.IsLetter(r) || r == '_') {
		return "", start
	}
	pos += size
	for pos < len(s) {
		r, size = decodeRune(s, pos)
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			break
		}
		pos += size
	}

	return s[start:pos], pos
}

// parseLiteral accepts [sign] number, where number follows scanNumber.
func parseLiteral(s string) (float64, bool) {
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	lit, end := scanNumber(body, 0)
	if lit == "" || end != len(body) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// decodeRune is utf8.DecodeRuneInString at an offset; size is 0 at end of input.
func decodeRune(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}
