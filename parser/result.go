package parser

// Status is the outcome of a single parser invocation.
type Status int

const (
	// Success means the parser matched at the given start offset.
	Success Status = iota

	// Failure means the parser refused to match at the given start offset.
	Failure
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}

// ParseResult is the value every parser node returns. On Success, Index is
// the offset just past the consumed input and Value holds the parsed
// artifact. On Failure, Index is the furthest offset reached by any branch
// of the grammar that was tried, and Expectations lists, in declaration
// order, what would have been accepted there.
type ParseResult struct {
	Status       Status
	Index        int
	Value        interface{}
	Expectations []string
}

// Succeed builds a successful result.
func Succeed(index int, value interface{}) ParseResult {
	return ParseResult{Status: Success, Index: index, Value: value}
}

// Fail builds a failed result expecting a single token at index. An empty
// expectation produces a structural failure with no expectations, used by
// many's infinite-loop guard.
func Fail(index int, expectation string) ParseResult {
	if expectation == "" {
		return ParseResult{Status: Failure, Index: index}
	}
	return ParseResult{Status: Failure, Index: index, Expectations: []string{expectation}}
}

// IsSuccess reports whether r represents a successful parse.
func (r ParseResult) IsSuccess() bool {
	return r.Status == Success
}

// Values returns r.Value cast to the slice produced by Sequence, Times, and
// Many. It panics if r does not hold such a value; callers that know the
// shape of their own grammar use it instead of repeating the cast.
func (r ParseResult) Values() []interface{} {
	return r.Value.([]interface{})
}

// merge folds other into r using the furthest-failure algebra:
//
//   - both Success: r advances to other's index and other's value is
//     appended to r's (which must hold a []interface{} being accumulated).
//   - both Failure: the failure with the greater index wins; expectations
//     at equal indexes are unioned; a nearer failure contributes nothing.
//   - differing status: other replaces r outright.
func (r *ParseResult) merge(other ParseResult) {
	if r.Status != other.Status {
		*r = other
		return
	}

	if r.Status == Success {
		r.Index = other.Index
		r.Value = append(r.Value.([]interface{}), other.Value)
		return
	}

	if other.Index > r.Index {
		r.Index = other.Index
		r.Expectations = other.Expectations
	} else if other.Index == r.Index {
		r.Expectations = append(r.Expectations, other.Expectations...)
	}
	// other.Index < r.Index: other is discarded, it adds no information.
}
