package typechecker

// Environment is the compile-time symbol table: declared name to declared
// type. ghl has a single flat scope, so there is no parent chain.
type Environment struct {
	symbols map[string]Type
}

// NewEnvironment creates an empty symbol table.
func NewEnvironment() *Environment {
	return &Environment{symbols: make(map[string]Type)}
}

// Define binds a name to a type, replacing any earlier binding.
func (e *Environment) Define(name string, typ Type) {
	e.symbols[name] = typ
}

// Lookup reports the type bound to name, if any.
func (e *Environment) Lookup(name string) (Type, bool) {
	typ, ok := e.symbols[name]
	return typ, ok
}
