package ircfg

import (
	"os"
	"path/filepath"
	"testing"

	"ircore/internal/ident"
	"ircore/internal/ir"
)

func TestLoadAndPopulate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segments.toml")
	content := `
[[module]]
name = "a"
segment = 0
requires = ["b"]

[[module]]
name = "b"
segment = 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	manifest, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(manifest.Module) != 2 {
		t.Fatalf("got %d modules, want 2", len(manifest.Module))
	}

	idents := ident.NewContext()
	m := ir.NewModule(idents)
	fa := ir.NewFunction(m, idents.GetIdentifier("a"), ir.DefinitionKindNormal, false, ir.SourceRange{}, nil, nil)
	fb := ir.NewFunction(m, idents.GetIdentifier("b"), ir.DefinitionKindNormal, false, ir.SourceRange{}, nil, nil)

	if err := PopulateCJSModules(m, idents, manifest, map[string]*ir.Function{"a": fa, "b": fb}); err != nil {
		t.Fatalf("PopulateCJSModules: %v", err)
	}

	fns := m.GetFunctionsInSegment(ir.SegmentRange{First: 0, Last: 0})
	if len(fns) != 2 {
		t.Fatalf("got %d reachable functions, want 2", len(fns))
	}
}
