package ir

// VariableScope is a lexical scope capturing a set of Variables closed
// over by nested functions. A function's own scope is VariableScopeKind;
// a reference to an enclosing function's scope, reached by walking out
// through intervening functions, is an ExternalScope.
type VariableScope struct {
	valueBase
	parent    *Function
	outer     *VariableScope
	variables []*Variable
}

// NewVariableScope creates the scope owned by f itself. outer is the
// enclosing function's own scope, or nil at the top level.
func NewVariableScope(f *Function, outer *VariableScope) *VariableScope {
	s := &VariableScope{parent: f, outer: outer}
	s.valueBase = newValueBase(s, VariableScopeKind)
	return s
}

func (s *VariableScope) Parent() *Function    { return s.parent }
func (s *VariableScope) Outer() *VariableScope { return s.outer }
func (s *VariableScope) Variables() []*Variable { return s.variables }

// IsGlobalScope reports whether s is the global function's own
// function scope. Checking Outer() == nil is not equivalent: any
// top-level function constructed without an enclosing scope would
// also pass that test, not just the module's designated global
// function.
func (s *VariableScope) IsGlobalScope() bool {
	return s.parent.IsGlobal() && s.parent.Scope() == s
}

func (s *VariableScope) addVariable(v *Variable) {
	s.variables = append(s.variables, v)
}

// ExternalScope represents another function's VariableScope as seen
// from a nested function some number of lexical levels in. depth is
// strictly negative by convention — the numbering scheme encodes
// lexical nesting as negative depth, with more negative values
// further from the referencing function — mirroring the original
// compiler's own assertion; this package does not itself interpret
// the magnitude beyond requiring the sign.
type ExternalScope struct {
	VariableScope
	depth int
}

// NewExternalScope creates a reference, at lexical depth, to the
// function-owning scope of a function this one does not itself own,
// and appends it to f's own external-scope list. depth >= 0 is a
// programmer error: an external scope only exists to name an ancestor
// via a negative depth, never the function's own scope.
func NewExternalScope(f *Function, depth int, outer *VariableScope) *ExternalScope {
	if depth >= 0 {
		panic("ir: ExternalScope depth must be negative")
	}
	s := &ExternalScope{depth: depth}
	s.VariableScope = VariableScope{parent: f, outer: outer}
	s.valueBase = newValueBase(s, ExternalScopeKind)
	f.AddExternalScope(s)
	return s
}

func (s *ExternalScope) Depth() int { return s.depth }
