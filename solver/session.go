// SPDX-License-Identifier: MIT

package solver

import (
	"strings"
	"sync"

	"github.com/katalvlaran/linsys/equation"
)

// Session accumulates equations for repeated solve passes.
// All methods are safe for concurrent use.
type Session struct {
	mu   sync.RWMutex
	eqs  []string
	opts []Option
}

// NewSession returns an empty session; opts apply to every Solve.
func NewSession(opts ...Option) *Session {
	return &Session{opts: opts}
}

// Add validates text and appends it (trimmed) on success.
// A rejected equation is returned as *EquationError and leaves the session
// unchanged.
func (s *Session) Add(text string) error {
	trimmed := strings.TrimSpace(text)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := equation.Validate(trimmed, nil); err != nil {
		return &EquationError{Index: len(s.eqs), Equation: text, Err: err}
	}
	s.eqs = append(s.eqs, trimmed)

	return nil
}

// Remove deletes and returns the equation at index i (0-based).
func (s *Session) Remove(i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.eqs) {
		return "", ErrIndexOutOfRange
	}
	eq := s.eqs[i]
	s.eqs = append(s.eqs[:i], s.eqs[i+1:]...)

	return eq, nil
}

// Clear drops every equation.
func (s *Session) Clear() {
	s.mu.Lock()
	s.eqs = nil
	s.mu.Unlock()
}

// Len returns the number of stored equations.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.eqs)
}

// Equations returns a copy of the stored equations in insertion order.
func (s *Session) Equations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.eqs...)
}

// Solve runs a fresh pass over the current equations. The session is not
// modified.
func (s *Session) Solve() (*Report, error) {
	return Solve(s.Equations(), s.opts...)
}
