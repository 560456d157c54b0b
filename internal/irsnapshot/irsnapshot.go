// Package irsnapshot encodes a point-in-time, read-only snapshot of an
// ir.Module for debugging — diffing two snapshots, or attaching one to
// a bug report. It is deliberately one-way: nothing in this package
// reconstructs a live *ir.Module from a snapshot, since rebuilding a
// use-def graph from a flattened encoding is a different (and much
// harder) problem than the one this package solves.
package irsnapshot

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"ircore/internal/ir"
)

// Module is the flattened, encodable shape of an ir.Module.
type Module struct {
	Functions []Function `msgpack:"functions"`
}

// Function is the flattened shape of an ir.Function.
type Function struct {
	InternalName string `msgpack:"internal_name"`
	IsStrict     bool   `msgpack:"is_strict"`
	NumParams    int    `msgpack:"num_params"`
	Blocks       []Block `msgpack:"blocks"`
}

// Block is the flattened shape of an ir.BasicBlock.
type Block struct {
	Label        string   `msgpack:"label"`
	Instructions []string `msgpack:"instructions"`
}

// Snapshot flattens m into an encodable Module value.
func Snapshot(m *ir.Module) *Module {
	out := &Module{}
	for _, f := range m.Functions() {
		sf := Function{
			InternalName: f.InternalName(),
			IsStrict:     f.IsStrict(),
			NumParams:    len(f.Parameters()),
		}
		for _, bb := range f.BasicBlocks() {
			sb := Block{Label: bb.DumpLabel()}
			for _, inst := range bb.Instructions() {
				sb.Instructions = append(sb.Instructions, inst.Kind().String())
			}
			sf.Blocks = append(sf.Blocks, sb)
		}
		out.Functions = append(out.Functions, sf)
	}
	return out
}

// Encode snapshots m and marshals it to msgpack bytes.
func Encode(m *ir.Module) ([]byte, error) {
	data, err := msgpack.Marshal(Snapshot(m))
	if err != nil {
		return nil, fmt.Errorf("irsnapshot: encoding: %w", err)
	}
	return data, nil
}

// Decode unmarshals previously encoded snapshot bytes back into a
// Module value for inspection or diffing. It never produces a live
// *ir.Module.
func Decode(data []byte) (*Module, error) {
	var m Module
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("irsnapshot: decoding: %w", err)
	}
	return &m, nil
}
