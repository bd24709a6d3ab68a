// Package slicer applies a resolved grid.Filter to line-oriented text.
//
// Lines are split into whitespace-delimited fields and fields into
// characters. The line range is evaluated once, field ranges once per line
// and character ranges once per field, so negative indices and reverse
// steps on fields and characters work without any buffering. Only a line
// range that counts from the end or walks backwards makes the slicer read
// the whole input before emitting the first record.
package slicer

import (
	"io"
	"iter"

	"github.com/shibukawa/gridslice/grid"
)

// Options are options for the slicer
type Options struct {
	// Graphemes treats grapheme clusters instead of code points as characters
	Graphemes bool
	// Compose converts fields to Unicode NFC before characters are counted
	Compose bool
}

// Slicer produces filtered records from an input, one pull at a time.
// It is not safe for concurrent use and cannot be restarted.
type Slicer struct {
	filter   grid.Filter
	lines    grid.Range
	source   lineSource
	chars    characterMode
	buffered bool
	numLine  int
	done     bool
}

// New creates a Slicer reading from r. When the line range needs the total
// line count, New reads all of r before returning.
func New(filter grid.Filter, r io.Reader, options ...Options) *Slicer {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	source, lines := newLineSource(filter.Line, r)
	_, buffered := source.(*savedLines)

	s := &Slicer{
		filter:   filter,
		lines:    lines,
		source:   source,
		chars:    runeCharacters,
		buffered: buffered,
	}
	if opts.Graphemes {
		s.chars = graphemeCharacters
	}
	if opts.Compose {
		s.chars = composed(s.chars)
	}

	return s
}

// Buffered reports whether the input was collected up front
func (s *Slicer) Buffered() bool {
	return s.buffered
}

// Next returns the next retained record. It returns false once the input is
// exhausted, a read error occurred or no later line can be selected.
func (s *Slicer) Next() (Record, bool) {
	for !s.done {
		if !s.buffered && s.lines.Exhausted(s.numLine) {
			s.done = true
			break
		}

		fields, ok := s.source.next()
		if !ok {
			s.done = true
			break
		}

		current := s.numLine
		s.numLine++

		if s.lines.Contains(current) {
			return filterFields(s.filter, s.chars, fields), true
		}
	}

	return nil, false
}

// Records iterates over the remaining records
func (s *Slicer) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for {
			record, ok := s.Next()
			if !ok || !yield(record) {
				return
			}
		}
	}
}

// Err returns the read error that ended the input, if any.
// Reaching the end of input is not an error.
func (s *Slicer) Err() error {
	return s.source.err()
}

// Slice is a convenience that collects every record from r
func Slice(filter grid.Filter, r io.Reader, options ...Options) ([]Record, error) {
	s := New(filter, r, options...)

	var records []Record
	for record := range s.Records() {
		records = append(records, record)
	}

	return records, s.Err()
}
