/*
Package llparser is a parser combinator library.

A grammar is built by wiring small recognizers (literal, regex) together
with combinators (sequence, alternative, map, repetition) into a tree of
parser nodes. Every node, primitive or combinator, implements the same
contract: given an input string and a start offset it returns a
ParseResult, so arbitrarily deep composition is just composition of
values of one type.

Subpackages:
  - parser: the ParseResult algebra, the Arena that owns parser nodes,
    the parser primitives, and the combinators built on top of them.
  - source: byte-offset to line/column translation, used when reporting
    a ParseResult's failure position to a human.
  - examples/arithmetic: a small arithmetic-expression grammar built with
    the library, used as an end-to-end demonstration.

Typical usage is:

 1. Create an Arena.
 2. Build primitive parsers from it (Literal, Regex, EOF, ...).
 3. Compose them with combinators (Sequence, Alternative, Map, ...).
 4. For recursive grammars, create a Ref, pass arena.Lazy(ref) wherever
    the recursive occurrence belongs, then call ref.Set once the
    recursive parser has been built.
 5. Call root.Parse(text) and inspect the returned ParseResult.
*/
package llparser

import (
	"fmt"
)

// Error classes, each good for up to 99 error codes.
const (
	ConstructionErrors = 1 // raised while building a parser graph
)

// Error is the error type raised for programmer mistakes made while
// building a parser graph: an invalid regular expression, a combinator
// given no children, or a lazy reference dereferenced before it was
// assigned. Parse-time failures are never reported this way, they are
// always values carried in a parser.ParseResult.
type Error struct {
	Code    int
	Message string
}

// NewError creates a new Error.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates an Error, formatting msg with params via fmt.Sprintf
// if any params are given.
func FormatError(code int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}

const (
	// ErrInvalidPattern indicates a regex primitive was given a pattern the
	// regular expression engine could not compile.
	ErrInvalidPattern = ConstructionErrors + iota

	// ErrNoChildren indicates sequence or alternative was called without
	// children.
	ErrNoChildren

	// ErrNilChild indicates a combinator was given a nil child parser.
	ErrNilChild

	// ErrLazyUnassigned indicates a lazy parser was invoked before its
	// Ref was assigned a target parser.
	ErrLazyUnassigned
)
