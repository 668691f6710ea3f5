package runtime

import "sort"

// Environment stores runtime bindings for one evaluation. ghl scope is
// whole-program flat, so a single environment serves an entire program and
// redefining a name rebinds it.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or rebinds a name in place. Last writer wins.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order (useful for determinism in
// tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
