// SPDX-License-Identifier: MIT

package equation

// Registry maps variable names to column indices.
//
// Invariants:
//   - indices are contiguous, starting at 0, in first-seen order;
//   - an index, once assigned, is never reused or reassigned.
//
// A Registry is not safe for concurrent mutation. Each solve pass owns one.
type Registry struct {
	index map[string]int
	names []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Len returns the number of registered variables.
func (r *Registry) Len() int { return len(r.names) }

// Lookup returns the column of name and whether it is registered.
func (r *Registry) Lookup(name string) (int, bool) {
	col, ok := r.index[name]
	return col, ok
}

// Intern returns the column of name, allocating the next index if unseen.
func (r *Registry) Intern(name string) int {
	if col, ok := r.index[name]; ok {
		return col
	}
	col := len(r.names)
	r.index[name] = col
	r.names = append(r.names, name)

	return col
}

// Name returns the variable registered at col, or "" when col is out of range.
func (r *Registry) Name(col int) string {
	if col < 0 || col >= len(r.names) {
		return ""
	}
	return r.names[col]
}

// Names returns a copy of the names in column order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Clone returns an independent copy. Parsing against a clone leaves the
// original untouched, which is how Validate performs a dry run.
func (r *Registry) Clone() *Registry {
	cp := &Registry{
		index: make(map[string]int, len(r.index)),
		names: make([]string, len(r.names)),
	}
	copy(cp.names, r.names)
	for k, v := range r.index {
		cp.index[k] = v
	}

	return cp
}
