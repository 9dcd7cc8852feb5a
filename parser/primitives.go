package parser

import (
	"regexp"

	"github.com/ava12/llparser"
)

// literalConfig and regexConfig are filled in by LiteralOption/RegexOption
// values; the functional-options shape stands in for the default template
// arguments the case_sensitive flag uses in the reference implementation.
type literalConfig struct {
	foldCase bool
}

type regexConfig struct {
	group    int
	foldCase bool
}

// LiteralOption configures Arena.Literal.
type LiteralOption func(*literalConfig)

// RegexOption configures Arena.Regex.
type RegexOption func(*regexConfig)

// FoldCase makes Literal match using ASCII case-insensitive comparison
// (RegexFoldCase is the Regex counterpart). The value captured in the
// ParseResult always preserves the input's original case.
func FoldCase() LiteralOption {
	return func(c *literalConfig) { c.foldCase = true }
}

// Group selects which regex capture group (0 = whole match) becomes the
// ParseResult's value.
func Group(n int) RegexOption {
	return func(c *regexConfig) { c.group = n }
}

// RegexFoldCase makes Regex compile its pattern with the (?i) flag, so it
// matches case-insensitively; RE2 folds Unicode case as well as ASCII.
func RegexFoldCase() RegexOption {
	return func(c *regexConfig) { c.foldCase = true }
}

// Literal matches s exactly at the current position, consuming len(s)
// bytes. The parsed value is the matched substring of the input (which, in
// FoldCase mode, may differ in case from s itself).
func (a *Arena) Literal(s string, opts ...LiteralOption) *Parser {
	cfg := literalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return a.allocate(func(text string, start int) ParseResult {
		end := start + len(s)
		if end > len(text) {
			return Fail(start, s)
		}

		candidate := text[start:end]
		matched := candidate == s
		if !matched && cfg.foldCase {
			matched = asciiEqualFold(candidate, s)
		}
		if !matched {
			return Fail(start, s)
		}

		return Succeed(end, candidate)
	})
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Regex compiles pattern once, anchored so it must match starting exactly
// at the current position (not scanned forward). On a match it advances by
// the length of the whole match and its value is the text of the selected
// capture group (group 0, the whole match, unless Group(n) is given).
// An invalid pattern is a construction-time error, reported by panicking
// with an *llparser.Error.
func (a *Arena) Regex(pattern string, opts ...RegexOption) *Parser {
	cfg := regexConfig{group: 0}
	for _, opt := range opts {
		opt(&cfg)
	}

	flags := ""
	if cfg.foldCase {
		flags = "(?i)"
	}

	re, err := regexp.Compile(flags + `\A(?:` + pattern + `)`)
	if err != nil {
		panic(constructionError(llparser.ErrInvalidPattern, "invalid regular expression %q: %s", pattern, err))
	}

	return a.allocate(func(text string, start int) ParseResult {
		loc := re.FindStringSubmatchIndex(text[start:])
		if loc == nil {
			return Fail(start, pattern)
		}

		g := cfg.group
		if g*2+1 >= len(loc) || loc[g*2] < 0 {
			return Fail(start, pattern)
		}

		matchEnd := start + loc[1]
		value := text[start+loc[g*2] : start+loc[g*2+1]]
		return Succeed(matchEnd, value)
	})
}

// EOF succeeds with a nil value iff start is at the end of the input.
func (a *Arena) EOF() *Parser {
	return a.allocate(func(text string, start int) ParseResult {
		if start < len(text) {
			return Fail(start, "EOF")
		}
		return Succeed(start, nil)
	})
}

// Whitespace matches one or more whitespace characters.
func (a *Arena) Whitespace() *Parser {
	return a.Regex(`\s+`)
}

// OptionalWhitespace matches zero or more whitespace characters; it always
// succeeds.
func (a *Arena) OptionalWhitespace() *Parser {
	return a.Regex(`\s*`)
}

// Ref is a single-assignment holder for a parser that has not been built
// yet. It is the mechanism recursive grammars use to refer to themselves
// without forming an ownership cycle: arena.Lazy(ref) may be embedded in a
// parser tree before the recursive occurrence exists, and ref.Set patches
// in the real parser once it does.
type Ref struct {
	target *Parser
}

// Set assigns the parser ref's lazy occurrences delegate to. It must be
// called exactly once, after the recursive parser has been fully built and
// before any parse invocation reaches a lazy node built from ref.
func (r *Ref) Set(p *Parser) {
	r.target = p
}

// Lazy returns a parser that, on every invocation, dereferences ref and
// delegates to whatever parser it holds. This is the sole supported way to
// build recursive or mutually-recursive grammars. Invoking a lazy parser
// before ref.Set has been called is a construction error and panics with
// an *llparser.Error, rather than failing silently or dereferencing a nil
// pointer.
func (a *Arena) Lazy(ref *Ref) *Parser {
	return a.allocate(func(text string, start int) ParseResult {
		if ref.target == nil {
			panic(constructionError(llparser.ErrLazyUnassigned, "lazy parser dereferenced before its Ref was assigned"))
		}
		return ref.target.parse(text, start)
	})
}
