package slicer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shibukawa/gridslice/grid"
)

// Sentinel errors
var (
	ErrRead = errors.New("failed to read input")
)

// lineSource produces the next raw line already split into fields
type lineSource interface {
	next() ([]string, bool)
	err() error
}

// splitLines reads lines of any length from r. A final line without a
// trailing newline is still returned. A read error ends the sequence and the
// partial line read so far is dropped.
type splitLines struct {
	reader  *bufio.Reader
	readErr error
	done    bool
}

func newSplitLines(r io.Reader) *splitLines {
	return &splitLines{reader: bufio.NewReader(r)}
}

func (s *splitLines) next() ([]string, bool) {
	if s.done {
		return nil, false
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.readErr = fmt.Errorf("%w: %w", ErrRead, err)
			return nil, false
		}
		if line == "" {
			return nil, false
		}
	}

	return strings.Fields(line), true
}

func (s *splitLines) err() error {
	return s.readErr
}

// savedLines replays lines collected up front
type savedLines struct {
	lines   [][]string
	index   int
	readErr error
}

func (s *savedLines) next() ([]string, bool) {
	if s.index >= len(s.lines) {
		return nil, false
	}

	line := s.lines[s.index]
	s.index++

	return line, true
}

func (s *savedLines) err() error {
	return s.readErr
}

// newLineSource picks the input strategy once. A line range that needs the
// total count collects every line, normalizes against it and reverses the
// collection for a reverse step. Otherwise lines are streamed and the raw
// range is already in normalized form.
func newLineSource(lines grid.Range, r io.Reader) (lineSource, grid.Range) {
	stream := newSplitLines(r)
	if !lines.NeedsLength() {
		return stream, lines
	}

	saved := &savedLines{}
	for {
		fields, ok := stream.next()
		if !ok {
			break
		}
		saved.lines = append(saved.lines, fields)
	}
	saved.readErr = stream.err()

	normalized := lines.Normalize(len(saved.lines))
	if normalized.Reversed() {
		slices.Reverse(saved.lines)
	}

	return saved, normalized
}
