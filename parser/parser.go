// Package parser implements a parser combinator engine: an Arena that owns
// parser nodes, primitives that inspect the input directly, and
// combinators that compose child parsers into larger ones. Every node,
// primitive or combinator, is immutable once built and is re-entrant: the
// same node may appear at several places in a grammar graph and may be
// invoked concurrently on distinct inputs.
package parser

import (
	"github.com/ava12/llparser"
)

// parseFunc is the shape every parser node reduces to. It reads only the
// input and whatever state the constructing factory closed over; it never
// mutates the input and never retries on failure, that is the job of
// Alternative further up the tree.
type parseFunc func(text string, start int) ParseResult

// Parser is an opaque, immutable parser node. Instances are only produced
// by Arena methods and package-level combinator functions, never
// constructed directly, which keeps every node registered with the arena
// that owns it.
type Parser struct {
	parse parseFunc
}

// Parse runs p against text starting at offset 0.
func (p *Parser) Parse(text string) ParseResult {
	return p.parse(text, 0)
}

// ParseFrom runs p against text starting at the given offset.
func (p *Parser) ParseFrom(text string, start int) ParseResult {
	return p.parse(text, start)
}

// Arena owns every parser node built through it. Nodes are handed out as
// non-owning *Parser references; the graph they form may not span more
// than one Arena. Arena.allocate is not safe for concurrent use, but once
// construction is finished the resulting graph may be parsed from multiple
// goroutines concurrently, since no node is ever mutated after it is
// built.
type Arena struct {
	nodes []*Parser
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// allocate registers fn as a new parser node owned by a and returns a
// handle to it.
func (a *Arena) allocate(fn parseFunc) *Parser {
	p := &Parser{parse: fn}
	a.nodes = append(a.nodes, p)
	return p
}

// Dispose releases every node owned by a. Since the runtime already
// garbage-collects unreachable nodes, this exists to make the arena's
// bulk-release lifecycle explicit and to let a grammar graph be dropped in
// one step once it is no longer needed.
func (a *Arena) Dispose() {
	a.nodes = nil
}

// Size returns the number of nodes currently owned by a.
func (a *Arena) Size() int {
	return len(a.nodes)
}

func constructionError(code int, format string, args ...interface{}) *llparser.Error {
	return llparser.FormatError(code, format, args...)
}
