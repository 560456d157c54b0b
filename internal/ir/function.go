package ir

import (
	"ircore/internal/ident"
	"ircore/internal/irtrace"
)

// FunctionDefinitionKind classifies the syntactic form a function was
// declared in — plain function, arrow, method, constructor, generator,
// async — information the core stores opaquely and a later pass (not
// this package) acts on, e.g. to decide whether "this" binds lexically.
type FunctionDefinitionKind uint8

const (
	DefinitionKindNormal FunctionDefinitionKind = iota
	DefinitionKindES6Arrow
	DefinitionKindES6Method
	DefinitionKindES6Constructor
	DefinitionKindES6Getter
	DefinitionKindES6Setter
	DefinitionKindGenerator
	DefinitionKindGeneratorInner
	DefinitionKindAsync
)

// SourceRange is the opaque source-text range a Function spans. The
// core never interprets its contents, only stores it verbatim for a
// collaborator (the front end, the printer) to make sense of.
type SourceRange struct {
	Start int
	End   int
}

// Function is a JavaScript function: a list of BasicBlocks, formal
// Parameters plus an optional this-binding, and the VariableScope it
// introduces for its own locals. It also names the ExternalScopes it
// needs to reach enclosing functions' captured Variables.
type Function struct {
	valueBase
	parent         *Module
	originalName   ident.Identifier
	internalName   string
	definitionKind FunctionDefinitionKind
	isStrict       bool
	isGlobal       bool
	sourceRange    SourceRange
	parameters     []*Parameter
	thisParameter  *Parameter
	ownScope       *VariableScope
	externalScopes []*ExternalScope
	basicBlocks    []*BasicBlock
	nextBlockID    int
}

// NewFunction creates a Function owned by m, named originalName, and
// derives its unique internal name immediately (see names.go). The
// function's own VariableScope is created at the same time, nested
// under outerScope (nil for a top-level function). insertBefore, if
// non-nil, places the new function immediately before it in m's
// function list instead of at the end — it must belong to m itself.
func NewFunction(
	m *Module,
	originalName ident.Identifier,
	definitionKind FunctionDefinitionKind,
	strictMode bool,
	sourceRange SourceRange,
	insertBefore *Function,
	outerScope *VariableScope,
) *Function {
	f := &Function{
		parent:         m,
		originalName:   originalName,
		definitionKind: definitionKind,
		isStrict:       strictMode,
		sourceRange:    sourceRange,
	}
	f.valueBase = newValueBase(f, FunctionKind)
	f.internalName = m.deriveUniqueInternalName(originalName.Str())
	f.ownScope = NewVariableScope(f, outerScope)
	m.insertFunction(f, insertBefore)
	m.tracer.Emit(irtrace.Event{Kind: irtrace.KindPoint, Name: "function.new", Detail: f.internalName})
	return f
}

// NewGlobalFunction creates the one Function a Module designates as
// its global code — the function whose own scope is the global scope
// (see VariableScope.IsGlobalScope). A module must have at most one;
// calling this twice on the same module is a programmer error.
func NewGlobalFunction(m *Module, originalName ident.Identifier, strictMode bool, sourceRange SourceRange) *Function {
	if m.globalFunction != nil {
		panic("ir: module already has a global function")
	}
	f := NewFunction(m, originalName, DefinitionKindNormal, strictMode, sourceRange, nil, nil)
	f.isGlobal = true
	m.globalFunction = f
	return f
}

func (f *Function) Parent() *Module                      { return f.parent }
func (f *Function) OriginalName() ident.Identifier        { return f.originalName }
func (f *Function) InternalName() string                  { return f.internalName }
func (f *Function) DefinitionKind() FunctionDefinitionKind { return f.definitionKind }
func (f *Function) IsStrict() bool                        { return f.isStrict }
func (f *Function) SetStrict(strict bool)                 { f.isStrict = strict }
func (f *Function) IsGlobal() bool                        { return f.isGlobal }
func (f *Function) SourceRange() SourceRange               { return f.sourceRange }
func (f *Function) SetSourceRange(r SourceRange)           { f.sourceRange = r }
func (f *Function) Parameters() []*Parameter               { return f.parameters }
func (f *Function) ThisParameter() *Parameter              { return f.thisParameter }
func (f *Function) Scope() *VariableScope                  { return f.ownScope }
func (f *Function) ExternalScopes() []*ExternalScope        { return f.externalScopes }
func (f *Function) BasicBlocks() []*BasicBlock              { return f.basicBlocks }

// AddExternalScope registers an ExternalScope this function uses to
// reach an ancestor function's captured variables.
func (f *Function) AddExternalScope(s *ExternalScope) {
	f.externalScopes = append(f.externalScopes, s)
}

func (f *Function) removeBasicBlock(bb *BasicBlock) {
	for i, x := range f.basicBlocks {
		if x == bb {
			f.basicBlocks = append(f.basicBlocks[:i], f.basicBlocks[i+1:]...)
			return
		}
	}
}

// EraseFromParent erases every block the function owns — each block's
// own EraseFromParent nulls out any branch still targeting it first, so
// blocks with a non-trivial CFG between them erase cleanly in any
// order — then removes the function itself from its module. The
// function must not still be referenced by any CreateFunctionInst.
func (f *Function) EraseFromParent() {
	if f.HasUsers() {
		panic("ir: erasing a function that is still referenced by a CreateFunctionInst")
	}
	for len(f.basicBlocks) > 0 {
		f.basicBlocks[len(f.basicBlocks)-1].EraseFromParent()
	}
	m := f.parent
	for i, x := range m.functions {
		if x == f {
			m.functions = append(m.functions[:i], m.functions[i+1:]...)
			break
		}
	}
	if m.globalFunction == f {
		m.globalFunction = nil
	}
	m.tracer.Emit(irtrace.Event{Kind: irtrace.KindPoint, Name: "function.erase", Detail: f.internalName})
	f.parent = nil
}
