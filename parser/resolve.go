package parser

import (
	"fmt"

	"github.com/shibukawa/gridslice/grid"
)

// Resolve turns the parsed endpoints into one canonical range per axis.
// Axes are checked in line, field, character order and the first error wins.
func (s *Slice) Resolve() (grid.Filter, error) {
	filter := grid.DefaultFilter()

	for _, axis := range grid.Axes {
		r, err := resolveRange(axis, s.From.Get(axis), s.To.Get(axis), s.Step.Get(axis))
		if err != nil {
			return grid.Filter{}, err
		}
		filter = filter.WithRange(axis, r)
	}

	return filter, nil
}

func resolveRange(axis grid.Axis, from, to, step *Endpoint) (grid.Range, error) {
	r := grid.DefaultRange()
	fromSet := false
	toSet := false

	if from != nil {
		r.From = from.Value
		fromSet = true
		if from.Pinned {
			r.To = from.Value
			r.Unbounded = false
			toSet = true
		}
		r.Exclude = r.Exclude || from.Exclude
	}

	if to != nil {
		if to.Pinned {
			if fromSet || toSet {
				return grid.Range{}, ambiguous(axis, to, from)
			}
			r.From = to.Value
		} else if toSet {
			return grid.Range{}, ambiguous(axis, to, from)
		}
		r.To = to.Value
		r.Unbounded = false
		r.Exclude = r.Exclude || to.Exclude
	}

	if step != nil {
		if step.Pinned {
			return grid.Range{}, fmt.Errorf("%w at %s: step %s cannot be %q", ErrInvalidStep, step.Pos, axis, prefixes[axis][1])
		}
		if step.Value == 0 {
			return grid.Range{}, fmt.Errorf("%w at %s: %s step cannot be zero", ErrInvalidStep, step.Pos, axis)
		}
		r.Step = step.Value
		r.Exclude = r.Exclude || step.Exclude
	}

	return r, nil
}

func ambiguous(axis grid.Axis, to, from *Endpoint) error {
	p := prefixes[axis]
	return fmt.Errorf("%w at %s: %q was used in conjunction with %q (%s and %s) for the same %s range",
		ErrAmbiguousRange, to.Pos, p[1], p[0], from, to, axis)
}
