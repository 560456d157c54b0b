package ir

import "ircore/internal/ident"

// Parameter is a formal parameter of a Function. The implicit "this"
// binding is also represented as a Parameter, but lives on
// Function.thisParameter rather than in the ordinary parameter list —
// see NewParameter.
type Parameter struct {
	valueBase
	parent *Function
	name   ident.Identifier
}

// NewParameter creates a parameter named name belonging to f. The name
// "this" is special-cased right here, not left to the caller to
// branch on: a parameter named "this" becomes f's implicit
// this-binding (Function.ThisParameter) instead of being appended to
// the ordinary parameter list, so every caller can construct formal
// parameters uniformly regardless of which one happens to be "this".
// It is a programmer error for a function to declare more than one
// this-parameter.
func NewParameter(f *Function, name ident.Identifier) *Parameter {
	p := &Parameter{parent: f, name: name}
	p.valueBase = newValueBase(p, ParameterKind)
	if name.Str() == "this" {
		if f.thisParameter != nil {
			panic("ir: function already has a this-parameter")
		}
		f.thisParameter = p
	} else {
		f.parameters = append(f.parameters, p)
	}
	return p
}

func (p *Parameter) Parent() *Function      { return p.parent }
func (p *Parameter) Name() ident.Identifier { return p.name }

// IsThisParameter reports whether p is its function's implicit
// this-binding rather than an ordinary formal parameter.
func (p *Parameter) IsThisParameter() bool { return p == p.parent.thisParameter }

// IndexInParamList returns p's position within its function's ordinary
// parameter list, or -1 if p is the this-parameter (which has no
// position in that list).
func (p *Parameter) IndexInParamList() int {
	for i, x := range p.parent.parameters {
		if x == p {
			return i
		}
	}
	return -1
}
