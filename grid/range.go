// Package grid holds the canonical range model shared by the parser and
// the slicer: one Range per axis, its normalization against a concrete
// sequence length, and the membership test.
package grid

import (
	"fmt"
	"strconv"
)

// Axis is one of the three selection dimensions
type Axis int

const (
	Line Axis = iota
	Field
	Character
)

// Axes lists every axis in resolution order
var Axes = [...]Axis{Line, Field, Character}

func (a Axis) String() string {
	switch a {
	case Line:
		return "line"
	case Field:
		return "field"
	case Character:
		return "character"
	default:
		return "unknown"
	}
}

// Range is a resolved selection on one axis.
// When Unbounded is true the range extends to the end of the sequence and To is ignored.
// Any negative From or To counts back from the end once a length is known.
type Range struct {
	From      int
	To        int
	Unbounded bool
	Step      int
	Exclude   bool
}

// DefaultRange selects every element in order
func DefaultRange() Range {
	return Range{From: 0, Unbounded: true, Step: 1}
}

// Pin selects exactly one index
func Pin(index int) Range {
	return Range{From: index, To: index, Step: 1}
}

// IsDefault reports whether r selects everything in natural order
func (r Range) IsDefault() bool {
	return r == DefaultRange()
}

// NeedsLength reports whether r can only be evaluated once the total length is
// known: a negative From, a negative bounded To or a reverse step.
func (r Range) NeedsLength() bool {
	return r.From < 0 || (!r.Unbounded && r.To < 0) || r.Step < 0
}

// Reversed reports whether the sequence is walked from its end
func (r Range) Reversed() bool {
	return r.Step < 0
}

// Normalize resolves r against a sequence of length n. The result has
// non-negative bounds. For a reverse step the bounds are reflected so that they
// apply to the reversed sequence, and the result is always bounded.
func (r Range) Normalize(n int) Range {
	from := r.From
	if from < 0 {
		from = max(n+from, 0)
	}

	to := r.To
	if !r.Unbounded && to < 0 {
		to = max(n+to, 0)
	}

	if r.Step > 0 {
		return Range{From: from, To: to, Unbounded: r.Unbounded, Step: r.Step, Exclude: r.Exclude}
	}

	if r.Unbounded {
		to = n - 1
	}

	return Range{
		From:    n - to - 1,
		To:      n - from - 1,
		Step:    r.Step,
		Exclude: r.Exclude,
	}
}

// Matches is the plain membership test, ignoring Exclude.
// r must be normalized.
func (r Range) Matches(i int) bool {
	return r.Step != 0 &&
		i >= r.From &&
		(r.Unbounded || i <= r.To) &&
		(r.From-i)%r.Step == 0
}

// Contains reports whether position i is selected. Exclude inverts the plain
// membership test. r must be normalized.
func (r Range) Contains(i int) bool {
	return r.Matches(i) != r.Exclude
}

// Exhausted reports whether no position at or after i can be selected.
// r must be normalized.
func (r Range) Exhausted(i int) bool {
	return !r.Exclude && !r.Unbounded && i > r.To
}

func (r Range) String() string {
	to := "*"
	if !r.Unbounded {
		to = strconv.Itoa(r.To)
	}

	s := fmt.Sprintf("[%d:%s:%d]", r.From, to, r.Step)
	if r.Exclude {
		s = "!" + s
	}

	return s
}
