// Package irtrace provides a minimal tracing subsystem for observing
// mutations of the IR core without paying for it when disabled.
//
// The IR core itself (internal/ir) never logs on its own — it is a
// synchronous, single-threaded data structure library. Passes built on
// top of it may still want visibility into graph-mutating operations
// when debugging a misbehaving pass. An ir.Module emits events through
// the Tracer installed with Module.SetTracer: a Point when a function
// is created or erased, and a span around Module.Destroy. With no
// Tracer installed (the default), Nop absorbs the event at the cost of
// one interface call. WithTracer/FromContext carry a Tracer through a
// context.Context for callers that want to pass one along that way.
//
// # Usage
//
//	ctx := irtrace.WithTracer(context.Background(), irtrace.NewStreamTracer(os.Stderr, irtrace.LevelDetail))
//	t := irtrace.FromContext(ctx)
//	t.Emit(irtrace.Event{Kind: irtrace.KindPoint, Name: "setOperand"})
package irtrace
