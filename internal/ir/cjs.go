package ir

import "ircore/internal/ident"

// SegmentRange names a contiguous, inclusive range of positions into
// the module's CJS module list — range.First and range.Last are
// indices into registration order (the order AddCJSModule was called
// in), not the CJSModule.Segment value stashed on each record. A
// bundler that happens to assign segment IDs equal to registration
// order will see the two coincide; one that doesn't will not.
type SegmentRange struct {
	First int
	Last  int
}

// CJSModule is one CommonJS module record: its body Function plus the
// segment it was assigned to. There is no separate requires list —
// which modules a module reaches is derived from the IR's own use-def
// edges (see populateCJSModuleUseGraph): a module requires whatever
// functions its body creates closures over.
type CJSModule struct {
	name     ident.Identifier
	segment  int
	function *Function
}

func (c *CJSModule) Name() ident.Identifier { return c.name }
func (c *CJSModule) Segment() int           { return c.segment }
func (c *CJSModule) Function() *Function    { return c.function }

// AddCJSModule registers a CommonJS module record named name, wrapping
// fn, assigned to segment.
func (m *Module) AddCJSModule(name ident.Identifier, fn *Function, segment int) *CJSModule {
	if _, ok := m.cjsModules[name]; ok {
		panic("ir: duplicate CommonJS module name")
	}
	c := &CJSModule{name: name, segment: segment, function: fn}
	m.cjsModules[name] = c
	m.cjsModuleList = append(m.cjsModuleList, c)
	m.cjsUseGraph = nil // any addition invalidates the cached graph
	return c
}

// FindCJSModule looks up a previously added module record by name.
func (m *Module) FindCJSModule(name ident.Identifier) *CJSModule {
	return m.cjsModules[name]
}

// CJSModules returns every module record in registration order.
func (m *Module) CJSModules() []*CJSModule { return m.cjsModuleList }

// populateCJSModuleUseGraph builds the forward adjacency map directly
// from the IR's use-def edges: for every function f, for every user u
// of f, the function that contains u is recorded as reaching f. A
// CreateFunctionInst whose operand 0 is f is the typical case — the
// containing function creates a closure over f, which is what a
// require() call compiles down to — but any instruction referencing f
// counts, matching how the rest of the use-def graph works. The result
// is cached until the next AddCJSModule invalidates it; nothing else
// in this package can add or remove operand edges between functions
// without going through the regular operand protocol, which has no
// hook into this cache, so New*/EraseFromParent calls made after a
// query will stay invisible until the next AddCJSModule.
func (m *Module) populateCJSModuleUseGraph() map[*Function][]*Function {
	if m.cjsUseGraph != nil {
		return m.cjsUseGraph
	}
	graph := make(map[*Function][]*Function, len(m.functions))
	for _, f := range m.functions {
		for _, u := range f.Users() {
			bb := u.Parent()
			if bb == nil {
				continue
			}
			parent := bb.Parent()
			if parent == nil || parent == f {
				continue
			}
			graph[parent] = append(graph[parent], f)
		}
	}
	m.cjsUseGraph = graph
	return graph
}

// GetFunctionsInSegment returns every Function reachable, via the
// use-def edges populateCJSModuleUseGraph derives, from a CJS module
// record at a position in [r.First, r.Last] of the registration-order
// module list — starting the worklist from every such module's wrapper
// function and following those edges outward, including functions
// outside the range that get pulled in transitively. Indices outside
// [0, len(cjsModuleList)) are skipped rather than seeding anything. The
// returned slice has no duplicates, but is not sorted in any particular
// order.
func (m *Module) GetFunctionsInSegment(r SegmentRange) []*Function {
	graph := m.populateCJSModuleUseGraph()

	visited := make(map[*Function]bool)
	var worklist []*Function
	for i := r.First; i <= r.Last; i++ {
		if i < 0 || i >= len(m.cjsModuleList) {
			continue
		}
		worklist = append(worklist, m.cjsModuleList[i].function)
	}

	var fns []*Function
	for len(worklist) > 0 {
		f := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if visited[f] {
			continue
		}
		visited[f] = true
		fns = append(fns, f)
		worklist = append(worklist, graph[f]...)
	}
	return fns
}
