package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceSucceeds(t *testing.T) {
	a := NewArena()
	p := Sequence(a, a.Literal(`"`), a.Regex(`\w+`), a.Literal(`"`))

	result := p.Parse(`"123456"`)
	require.True(t, result.IsSuccess())
	assert.Equal(t, 8, result.Index)
	assert.Equal(t, []interface{}{`"`, "123456", `"`}, result.Value)
}

func TestSequenceFailsAtFurthestOffset(t *testing.T) {
	a := NewArena()
	p := Sequence(a, a.Literal(`"`), a.Regex(`\w+`), a.Literal(`"`))

	result := p.Parse(`"123456`)
	require.False(t, result.IsSuccess())
	assert.Equal(t, 7, result.Index)
	assert.Equal(t, []string{`"`}, result.Expectations)
}

func TestSequenceSingleChildEquivalentToChild(t *testing.T) {
	a := NewArena()
	inner := a.Literal("x")
	p := Sequence(a, inner)

	result := p.Parse("x")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, []interface{}{"x"}, result.Value)
}

func TestAlternativePrefersLeftmostSuccess(t *testing.T) {
	a := NewArena()
	calls := 0
	tracked := a.Literal("a").Map(a, func(v interface{}) interface{} {
		calls++
		return v
	})
	unreached := a.Literal("never-tried-if-left-succeeds")
	p := Alternative(a, tracked, unreached)

	result := p.Parse("a")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, 1, calls)
}

func TestAlternativeFurthestFailureUnionsExpectations(t *testing.T) {
	a := NewArena()
	p := Alternative(a, a.Literal(`"`), a.Regex(`\w+`))

	result := p.Parse("!!!")
	require.False(t, result.IsSuccess())
	assert.Equal(t, 0, result.Index)
	assert.Equal(t, []string{`"`, `\w+`}, result.Expectations)
}

func TestAlternativeKeepsOnlyFurthestAmongDifferingOffsets(t *testing.T) {
	a := NewArena()
	shallow := a.Literal("xy")
	deep := Sequence(a, a.Literal("a"), a.Literal("b"), a.Literal("c"))
	p := Alternative(a, shallow, deep)

	result := p.Parse("ab!")
	require.False(t, result.IsSuccess())
	assert.Equal(t, 2, result.Index)
	assert.Equal(t, []string{"c"}, result.Expectations)
}

func TestAlternativeSingleChildEquivalentToChild(t *testing.T) {
	a := NewArena()
	inner := a.Literal("x")
	p := Alternative(a, inner)

	result := p.Parse("y")
	assert.False(t, result.IsSuccess())
	assert.Equal(t, []string{"x"}, result.Expectations)
}

func TestMapTransformsValue(t *testing.T) {
	a := NewArena()
	digits := a.Regex(`\d+`).Map(a, func(v interface{}) interface{} {
		return len(v.(string))
	})

	result := digits.Parse("12345")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, 5, result.Value)
}

func TestMapPassesThroughFailure(t *testing.T) {
	a := NewArena()
	digits := a.Regex(`\d+`).Map(a, func(v interface{}) interface{} {
		t.Fatal("mapper should not run on failure")
		return nil
	})

	result := digits.Parse("abc")
	assert.False(t, result.IsSuccess())
}

func TestThenKeepsSecondValue(t *testing.T) {
	a := NewArena()
	p := a.Literal("(").Then(a, a.Regex(`\d+`))

	result := p.Parse("(42")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, "42", result.Value)
}

func TestSkipKeepsFirstValue(t *testing.T) {
	a := NewArena()
	p := a.Regex(`\d+`).Skip(a, a.OptionalWhitespace())

	result := p.Parse("42   ")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, "42", result.Value)
	assert.Equal(t, 5, result.Index)
}

func TestOrElseIsSugarForAlternative(t *testing.T) {
	a := NewArena()
	p := a.Literal("a").OrElse(a, a.Literal("b"))

	assert.True(t, p.Parse("a").IsSuccess())
	assert.True(t, p.Parse("b").IsSuccess())
	assert.False(t, p.Parse("c").IsSuccess())
}

func TestTimesExactEqualsTimesNN(t *testing.T) {
	a := NewArena()
	digit := a.Regex(`\d`)

	exact := digit.TimesExact(a, 3)
	nn := digit.Times(a, 3, 3)

	for _, input := range []string{"123", "12", "1234"} {
		assert.Equal(t, nn.Parse(input), exact.Parse(input))
	}
}

func TestTimesRequiresMinimum(t *testing.T) {
	a := NewArena()
	digit := a.Regex(`\d`)
	p := digit.Times(a, 3, 5)

	result := p.Parse("12")
	require.False(t, result.IsSuccess())
	assert.Equal(t, 2, result.Index)
}

func TestTimesStopsAtMaximum(t *testing.T) {
	a := NewArena()
	digit := a.Regex(`\d`)
	p := digit.Times(a, 0, 3)

	result := p.Parse("123456")
	require.True(t, result.IsSuccess())
	assert.Equal(t, 3, result.Index)
	assert.Equal(t, []interface{}{"1", "2", "3"}, result.Value)
}

func TestAtMostIsTimesZeroToN(t *testing.T) {
	a := NewArena()
	digit := a.Regex(`\d`)
	assert.Equal(t, digit.Times(a, 0, 2).Parse("123"), digit.AtMost(a, 2).Parse("123"))
}

func TestAtLeastIsUnbounded(t *testing.T) {
	a := NewArena()
	digit := a.Regex(`\d`)
	p := digit.AtLeast(a, 2)

	result := p.Parse("123456789")
	assert.True(t, result.IsSuccess())
	assert.Equal(t, 9, result.Index)

	result = p.Parse("1")
	assert.False(t, result.IsSuccess())
}

func TestManyCollectsUntilFailure(t *testing.T) {
	a := NewArena()
	word := a.Regex(`\w+`).Skip(a, a.OptionalWhitespace())
	p := word.Many(a)

	result := p.Parse("repeat repeat repeat -")
	require.True(t, result.IsSuccess())
	assert.Equal(t, 21, result.Index)
	assert.Equal(t, []interface{}{"repeat", "repeat", "repeat"}, result.Value)
}

func TestManyGuardsAgainstZeroWidthSuccess(t *testing.T) {
	a := NewArena()
	zeroWidth := a.Regex(`\d*`)
	p := zeroWidth.Many(a)

	result := p.Parse("abc")
	require.False(t, result.IsSuccess())
	assert.Empty(t, result.Expectations)
}

func TestCombinatorPanicsOnNoChildren(t *testing.T) {
	a := NewArena()
	assert.Panics(t, func() {
		Sequence(a)
	})
	assert.Panics(t, func() {
		Alternative(a)
	})
}

func TestCombinatorPanicsOnNilChild(t *testing.T) {
	a := NewArena()
	assert.Panics(t, func() {
		Sequence(a, a.Literal("x"), nil)
	})
}
