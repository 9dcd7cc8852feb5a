package parser

import (
	"math"

	"github.com/ava12/llparser"
)

// Unbounded is the max value passed to Times to mean "no upper bound",
// used by AtLeast.
const Unbounded = math.MaxInt

// Sequence runs its children left to right, each starting where the
// previous one left off. If every child succeeds, the result is a Success
// whose Value is the []interface{} of the children's values, in order. On
// the first failing child, that failure is returned unchanged, carrying
// whatever furthest offset was reached.
func Sequence(a *Arena, parsers ...*Parser) *Parser {
	children := copyChildren(parsers)

	return a.allocate(func(text string, start int) ParseResult {
		result := Succeed(start, make([]interface{}, 0, len(children)))
		for _, p := range children {
			result.merge(p.parse(text, result.Index))
			if !result.IsSuccess() {
				return result
			}
		}
		return result
	})
}

// Alternative runs each child in turn, starting from the same offset,
// until one succeeds; that success is returned immediately without trying
// the remaining children. If every child fails, the result is a Failure
// whose Index is the maximum of the children's failure indexes and whose
// Expectations is the concatenation, in declaration order, of every
// child's expectations whose failure index equals that maximum.
func Alternative(a *Arena, parsers ...*Parser) *Parser {
	children := copyChildren(parsers)

	return a.allocate(func(text string, start int) ParseResult {
		result := Fail(start, "")
		for _, p := range children {
			result.merge(p.parse(text, start))
			if result.IsSuccess() {
				return result
			}
		}
		return result
	})
}

func copyChildren(parsers []*Parser) []*Parser {
	if len(parsers) == 0 {
		panic(constructionError(llparser.ErrNoChildren, "combinator requires at least one child parser"))
	}
	children := make([]*Parser, len(parsers))
	for i, p := range parsers {
		if p == nil {
			panic(constructionError(llparser.ErrNilChild, "combinator given a nil child parser at index %d", i))
		}
		children[i] = p
	}
	return children
}

// Map runs p; on success it replaces the value with f(value) and passes
// the failure through unchanged otherwise. f is assumed pure with respect
// to parse state, though it may close over caller-supplied context.
func (p *Parser) Map(a *Arena, f func(interface{}) interface{}) *Parser {
	return a.allocate(func(text string, start int) ParseResult {
		result := p.parse(text, start)
		if !result.IsSuccess() {
			return result
		}
		return Succeed(result.Index, f(result.Value))
	})
}

// Then runs p followed by other and keeps other's value.
func (p *Parser) Then(a *Arena, other *Parser) *Parser {
	return Sequence(a, p, other).Map(a, func(v interface{}) interface{} {
		return v.([]interface{})[1]
	})
}

// Skip runs p followed by other and keeps p's value, discarding other's.
func (p *Parser) Skip(a *Arena, other *Parser) *Parser {
	return Sequence(a, p, other).Map(a, func(v interface{}) interface{} {
		return v.([]interface{})[0]
	})
}

// OrElse is sugar for Alternative(a, p, other).
func (p *Parser) OrElse(a *Arena, other *Parser) *Parser {
	return Alternative(a, p, other)
}

// Times greedily matches p up to max times, accumulating each success into
// a []interface{}. If fewer than min matches are found, the failure that
// stopped matching is returned as-is; otherwise matching stops as soon as
// p fails or max repetitions are reached, and the accumulated list is
// returned as a Success at the offset reached before the failing attempt.
func (p *Parser) Times(a *Arena, min, max int) *Parser {
	return a.allocate(func(text string, start int) ParseResult {
		result := Succeed(start, make([]interface{}, 0, min))
		for i := 0; i < max; i++ {
			next := p.parse(text, result.Index)
			if !next.IsSuccess() {
				if i < min {
					return next
				}
				break
			}
			result.merge(next)
		}
		return result
	})
}

// TimesExact is Times(a, n, n).
func (p *Parser) TimesExact(a *Arena, n int) *Parser {
	return p.Times(a, n, n)
}

// AtMost is Times(a, 0, n).
func (p *Parser) AtMost(a *Arena, n int) *Parser {
	return p.Times(a, 0, n)
}

// AtLeast is Times(a, n, Unbounded).
func (p *Parser) AtLeast(a *Arena, n int) *Parser {
	return p.Times(a, n, Unbounded)
}

// Many is Times(a, 0, Unbounded), with one extra guard: if p succeeds
// without advancing the offset, Many stops and returns a structural
// Failure (no expectations) at that offset instead of looping forever.
// This is what separates a combinator engine that tolerates a
// zero-width inner parser from one that hangs on it.
func (p *Parser) Many(a *Arena) *Parser {
	return a.allocate(func(text string, start int) ParseResult {
		result := Succeed(start, make([]interface{}, 0))
		for {
			next := p.parse(text, result.Index)
			if !next.IsSuccess() {
				break
			}
			if next.Index == result.Index {
				return Fail(next.Index, "")
			}
			result.merge(next)
		}
		return result
	})
}
