// Package ident provides the identifier-interning collaborator consumed
// by the IR core. The core never compares identifier text directly; it
// only ever compares Identifier handles by identity, so every
// Identifier obtained from the same Context for the same text string
// compares equal.
//
// This package sits outside the IR core's scope (the core only
// consumes an Identifier handle), but it
// has to exist for the core to compile and for tests to construct
// values. It is deliberately small.
package ident

import (
	"golang.org/x/text/unicode/norm"
)

// Identifier is an opaque, interned handle to a piece of identifier or
// string text. Two Identifiers obtained from the same Context compare
// equal (by the underlying id) iff they were interned from text that
// normalizes to the same NFC form.
type Identifier struct {
	ctx *Context
	id  uint32
}

// IsValid reports whether id refers to an interned string.
func (id Identifier) IsValid() bool {
	return id.ctx != nil
}

// Str returns the text behind this identifier.
func (id Identifier) Str() string {
	if id.ctx == nil {
		return ""
	}
	return id.ctx.byID[id.id]
}

// Equals reports identity equality against another Identifier from the
// same Context. Identifiers from different Contexts are never equal.
func (id Identifier) Equals(other Identifier) bool {
	return id.ctx == other.ctx && id.id == other.id
}

// Context is the ambient string interner. A Module and everything it
// owns reaches a shared Context via its owner chain.
type Context struct {
	byID  []string
	index map[string]uint32
}

// NewContext creates an empty interning context.
func NewContext() *Context {
	return &Context{
		byID:  []string{""},
		index: map[string]uint32{"": 0},
	}
}

// GetIdentifier interns s (after NFC normalization) and returns its
// handle. Interning the same normalized text twice returns an
// Identifier that compares Equals to the first.
func (c *Context) GetIdentifier(s string) Identifier {
	normalized := norm.NFC.String(s)
	if id, ok := c.index[normalized]; ok {
		return Identifier{ctx: c, id: id}
	}
	id := uint32(len(c.byID))
	c.byID = append(c.byID, normalized)
	c.index[normalized] = id
	return Identifier{ctx: c, id: id}
}
