// Package ircfg loads the TOML manifest that maps CommonJS module
// names to bundler segment IDs, the input a driver uses to populate an
// ir.Module's CJS module records before querying segment
// reachability.
package ircfg

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"fortio.org/safecast"

	"ircore/internal/ident"
	"ircore/internal/ir"
)

// Manifest is the decoded shape of a segment manifest file:
//
//	[[module]]
//	name = "a"
//	segment = 0
//	requires = ["b"]
//
//	[[module]]
//	name = "b"
//	segment = 1
type Manifest struct {
	Module []ModuleEntry `toml:"module"`
}

// ModuleEntry is one [[module]] table: a CJS module's name, the
// segment the bundler assigned it, and the names of the modules it
// requires.
type ModuleEntry struct {
	Name     string   `toml:"name"`
	Segment  int64    `toml:"segment"`
	Requires []string `toml:"requires"`
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("ircfg: parsing manifest: %w", err)
	}
	return &m, nil
}

// SegmentInt narrows a manifest's int64 segment ID to the plain int
// ir.SegmentRange and CJSModule use, panicking rather than silently
// truncating if the manifest names a segment ID outside int's range
// on this platform.
func (e ModuleEntry) SegmentInt() int {
	n, err := safecast.Conv[int](e.Segment)
	if err != nil {
		panic(fmt.Errorf("ircfg: segment id for module %q: %w", e.Name, err))
	}
	return n
}

// PopulateCJSModules registers one ir.CJSModule per manifest entry,
// given a lookup from module name to the ir.Function already built for
// it, then materializes each manifest "requires" edge as an actual
// CreateFunctionInst in the requiring module's body: a compiled
// require() call is exactly a closure created over the required
// module's function, and ir.GetFunctionsInSegment derives its
// reachability graph from that use-def edge rather than from a
// separately authored list. Call this once a driver has built every
// function named in the manifest; it returns an error naming any
// manifest entry whose function or required module isn't found.
func PopulateCJSModules(m *ir.Module, idents *ident.Context, manifest *Manifest, functions map[string]*ir.Function) error {
	byName := make(map[string]*ir.CJSModule, len(manifest.Module))
	for _, e := range manifest.Module {
		fn, ok := functions[e.Name]
		if !ok {
			return fmt.Errorf("ircfg: no function provided for module %q", e.Name)
		}
		byName[e.Name] = m.AddCJSModule(idents.GetIdentifier(e.Name), fn, e.SegmentInt())
	}

	blocks := make(map[string]*ir.BasicBlock, len(manifest.Module))
	for _, e := range manifest.Module {
		from := byName[e.Name]
		for _, reqName := range e.Requires {
			to, ok := byName[reqName]
			if !ok {
				return fmt.Errorf("ircfg: module %q requires unknown module %q", e.Name, reqName)
			}
			bb, ok := blocks[e.Name]
			if !ok {
				bb = ir.NewBasicBlock(from.Function())
				blocks[e.Name] = bb
			}
			create := ir.NewCreateFunctionInst(to.Function(), from.Function().Scope())
			bb.PushInstruction(&create.Instruction)
		}
	}
	return nil
}
