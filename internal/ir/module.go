package ir

import (
	"math"

	"ircore/internal/ident"
	"ircore/internal/irtrace"
)

// Module is the top-level container: it owns every Function, uniques
// every literal, tracks the implicit global object's declared
// properties, and records the CommonJS segment/module graph used for
// reachability queries (see cjs.go).
type Module struct {
	valueBase
	idents *ident.Context
	tracer irtrace.Tracer

	functions      []*Function
	globalFunction *Function

	literalNumbers map[uint64]*LiteralNumber
	literalStrings map[ident.Identifier]*LiteralString
	literalBools   [2]*LiteralBool

	globalProps    map[ident.Identifier]*GlobalObjectProperty
	globalPropList []*GlobalObjectProperty

	internalNameCounts map[string]int

	cjsModules    map[ident.Identifier]*CJSModule
	cjsModuleList []*CJSModule
	cjsUseGraph   map[*Function][]*Function // lazily populated from use-def edges, see cjs.go
}

// NewModule creates an empty module backed by the given identifier
// context. Every Function, Variable, and literal string created under
// this module interns its names through idents. Tracing is off
// (irtrace.Nop) until SetTracer is called.
func NewModule(idents *ident.Context) *Module {
	m := &Module{
		idents:             idents,
		tracer:             irtrace.Nop,
		literalNumbers:     make(map[uint64]*LiteralNumber),
		literalStrings:     make(map[ident.Identifier]*LiteralString),
		globalProps:        make(map[ident.Identifier]*GlobalObjectProperty),
		internalNameCounts: make(map[string]int),
		cjsModules:         make(map[ident.Identifier]*CJSModule),
	}
	m.valueBase = newValueBase(m, ModuleKind)
	return m
}

func (m *Module) Idents() *ident.Context     { return m.idents }
func (m *Module) Functions() []*Function     { return m.functions }
func (m *Module) GlobalFunction() *Function  { return m.globalFunction }

// insertFunction appends f to m's function list, or splices it in
// immediately before insertBefore when non-nil. insertBefore must
// belong to m itself — inserting relative to a function from a
// different module is a programmer error.
func (m *Module) insertFunction(f *Function, insertBefore *Function) {
	if insertBefore == nil {
		m.functions = append(m.functions, f)
		return
	}
	if insertBefore.parent != m {
		panic("ir: insertBefore function belongs to a different module")
	}
	for i, x := range m.functions {
		if x == insertBefore {
			m.functions = append(m.functions[:i:i], append([]*Function{f}, m.functions[i:]...)...)
			return
		}
	}
	panic("ir: insertBefore function not found in its module")
}

// SetTracer installs t as the module's mutation tracer. NewFunction and
// Function.EraseFromParent emit irtrace.Event points through t, and
// Destroy emits a begin/end span; other mutations emit nothing.
func (m *Module) SetTracer(t irtrace.Tracer) {
	if t == nil {
		t = irtrace.Nop
	}
	m.tracer = t
}

// GetLiteralNumber returns the unique LiteralNumber for v, creating it
// on first request. The uniquing key is v's raw IEEE-754 bit pattern,
// not v itself — Go's float equality treats +0.0 and -0.0 as equal and
// never treats a NaN as equal to itself, either of which would be
// wrong here: +0.0 and -0.0 are bit-distinct and must unique to two
// different literals, while two NaNs sharing the same payload must
// unique to the same one.
func (m *Module) GetLiteralNumber(v float64) *LiteralNumber {
	bits := math.Float64bits(v)
	if lit, ok := m.literalNumbers[bits]; ok {
		return lit
	}
	lit := newLiteralNumber(m, v)
	m.literalNumbers[bits] = lit
	return lit
}

// GetLiteralString returns the unique LiteralString for the interned
// identifier v.
func (m *Module) GetLiteralString(v ident.Identifier) *LiteralString {
	if lit, ok := m.literalStrings[v]; ok {
		return lit
	}
	lit := newLiteralString(m, v)
	m.literalStrings[v] = lit
	return lit
}

// GetLiteralBool returns the unique LiteralBool for v.
func (m *Module) GetLiteralBool(v bool) *LiteralBool {
	idx := 0
	if v {
		idx = 1
	}
	if m.literalBools[idx] == nil {
		m.literalBools[idx] = newLiteralBool(m, v)
	}
	return m.literalBools[idx]
}

// FindGlobalProperty returns the existing GlobalObjectProperty named
// name, or nil if none has been added yet.
func (m *Module) FindGlobalProperty(name ident.Identifier) *GlobalObjectProperty {
	return m.globalProps[name]
}

// AddGlobalProperty returns the GlobalObjectProperty named name,
// creating it if absent. declared is ORed into the property's Declared
// flag on every call, including repeats against an existing property.
func (m *Module) AddGlobalProperty(name ident.Identifier, declared bool) *GlobalObjectProperty {
	if p, ok := m.globalProps[name]; ok {
		if declared {
			p.MarkDeclared()
		}
		return p
	}
	p := newGlobalObjectProperty(m, m.GetLiteralString(name), declared)
	m.globalProps[name] = p
	m.globalPropList = append(m.globalPropList, p)
	return p
}

// EraseGlobalProperty removes p from the module. p must have no users.
func (m *Module) EraseGlobalProperty(p *GlobalObjectProperty) {
	if p.HasUsers() {
		panic("ir: erasing a global property that is still referenced")
	}
	destroy(p)
}

// GlobalProperties returns every global property in declaration order.
func (m *Module) GlobalProperties() []*GlobalObjectProperty { return m.globalPropList }

// Destroy tears the whole module down at once. It first unlinks every
// instruction's operands (which in turn empties every value's
// use-list, including cross-function references like a
// CreateFunctionInst pointing at another function) — collecting the
// owned literals and global properties into a pointer list before
// touching anything, since destroy below mutates the very maps being
// iterated. Unlike Function.EraseFromParent or GlobalObjectProperty
// removal, Destroy does not check HasUsers anywhere along the way — it
// is tearing down the entire graph in one pass, not removing one node
// from a graph that continues to exist.
func (m *Module) Destroy() {
	m.tracer.Emit(irtrace.Event{Kind: irtrace.KindSpanBegin, Name: "module.destroy"})
	defer m.tracer.Emit(irtrace.Event{Kind: irtrace.KindSpanEnd, Name: "module.destroy"})

	for _, f := range m.functions {
		for _, bb := range f.basicBlocks {
			for _, inst := range bb.instructions {
				inst.clearOperandsInPlace()
			}
		}
	}

	owned := make([]Value, 0, len(m.literalNumbers)+len(m.literalStrings)+len(m.globalPropList))
	for _, p := range m.globalPropList {
		owned = append(owned, p)
	}
	for _, lit := range m.literalNumbers {
		owned = append(owned, lit)
	}
	for _, lit := range m.literalStrings {
		owned = append(owned, lit)
	}
	for _, v := range owned {
		destroy(v)
	}

	m.functions = nil
	m.globalPropList = nil
	m.globalProps = nil
	m.literalBools = [2]*LiteralBool{}
}
