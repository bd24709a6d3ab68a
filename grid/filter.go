package grid

import "fmt"

// Filter combines the resolved ranges of all three axes.
// It is built once from an expression and never mutated.
type Filter struct {
	Line      Range
	Field     Range
	Character Range
}

// DefaultFilter selects every line, field and character unchanged
func DefaultFilter() Filter {
	return Filter{
		Line:      DefaultRange(),
		Field:     DefaultRange(),
		Character: DefaultRange(),
	}
}

// Range returns the range for the given axis
func (f Filter) Range(axis Axis) Range {
	switch axis {
	case Line:
		return f.Line
	case Field:
		return f.Field
	default:
		return f.Character
	}
}

// WithRange returns a copy of f with the range for axis replaced
func (f Filter) WithRange(axis Axis, r Range) Filter {
	switch axis {
	case Line:
		f.Line = r
	case Field:
		f.Field = r
	default:
		f.Character = r
	}

	return f
}

func (f Filter) String() string {
	return fmt.Sprintf("line%s field%s character%s", f.Line, f.Field, f.Character)
}

// Select applies a range to items of any kind: it normalizes r against
// len(items), walks items in the direction of the step and keeps the items
// whose walk position is contained in the range.
func Select[T any](r Range, items []T) []T {
	n := len(items)
	nr := r.Normalize(n)

	result := make([]T, 0, n)
	for pos := range n {
		if !nr.Contains(pos) {
			continue
		}
		if nr.Reversed() {
			result = append(result, items[n-1-pos])
		} else {
			result = append(result, items[pos])
		}
	}

	return result
}
