package ir

// GlobalObjectProperty represents one named property of the implicit
// global object, e.g. a var declared at top level outside any CJS
// module wrapper. Its name is the module's uniqued LiteralString for
// that identifier, not a bare Identifier, matching every other literal
// value in the graph. Declared starts as the value passed to the first
// AddGlobalProperty call for the name (false: the property was only
// referenced, e.g. by a bare identifier lookup) and can only move to
// true (the property was actually declared by a var/function
// statement) — see MarkDeclared.
type GlobalObjectProperty struct {
	valueBase
	parent   *Module
	name     *LiteralString
	declared bool
}

func newGlobalObjectProperty(m *Module, name *LiteralString, declared bool) *GlobalObjectProperty {
	p := &GlobalObjectProperty{parent: m, name: name, declared: declared}
	p.valueBase = newValueBase(p, GlobalObjectPropertyKind)
	return p
}

func (p *GlobalObjectProperty) Name() *LiteralString { return p.name }
func (p *GlobalObjectProperty) Declared() bool        { return p.declared }

// MarkDeclared moves Declared from false to true. It is a no-op if
// already true; the flag never moves the other way.
func (p *GlobalObjectProperty) MarkDeclared() { p.declared = true }
