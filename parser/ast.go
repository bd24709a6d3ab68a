package parser

import (
	"strconv"
	"strings"

	"github.com/shibukawa/gridslice/grid"
	tok "github.com/shibukawa/gridslice/tokenizer"
)

// Node is a value produced by the grammar
type Node interface {
	Kind() string
	Position() tok.Position
	String() string
}

// Endpoint is a single bound on one axis, such as "l3", "!f-1" or "C0"
type Endpoint struct {
	Axis    grid.Axis
	Value   int
	Pinned  bool // uppercase form: sets both from and to
	Exclude bool
	Pos     tok.Position
}

var prefixes = map[grid.Axis][2]string{
	grid.Line:      {"l", "L"},
	grid.Field:     {"f", "F"},
	grid.Character: {"c", "C"},
}

func (e *Endpoint) Kind() string           { return "endpoint" }
func (e *Endpoint) Position() tok.Position { return e.Pos }

func (e *Endpoint) String() string {
	var b strings.Builder
	if e.Exclude {
		b.WriteByte('!')
	}
	if e.Pinned {
		b.WriteString(prefixes[e.Axis][1])
	} else {
		b.WriteString(prefixes[e.Axis][0])
	}
	b.WriteString(strconv.Itoa(e.Value))

	return b.String()
}

// AxisGroup holds the endpoints written at one position of the slice
// (from, to or step). At most one endpoint per axis.
type AxisGroup struct {
	Line      *Endpoint
	Field     *Endpoint
	Character *Endpoint
}

func (g *AxisGroup) Kind() string { return "grid-index" }

// Position returns the position of the first written endpoint
func (g *AxisGroup) Position() tok.Position {
	var pos tok.Position
	first := true
	for _, e := range []*Endpoint{g.Line, g.Field, g.Character} {
		if e != nil && (first || e.Pos.Offset < pos.Offset) {
			pos = e.Pos
			first = false
		}
	}

	return pos
}

// Get returns the endpoint for axis, or nil
func (g *AxisGroup) Get(axis grid.Axis) *Endpoint {
	switch axis {
	case grid.Line:
		return g.Line
	case grid.Field:
		return g.Field
	default:
		return g.Character
	}
}

func (g *AxisGroup) set(e *Endpoint) {
	switch e.Axis {
	case grid.Line:
		g.Line = e
	case grid.Field:
		g.Field = e
	default:
		g.Character = e
	}
}

// IsEmpty reports whether no endpoint was written
func (g *AxisGroup) IsEmpty() bool {
	return g.Line == nil && g.Field == nil && g.Character == nil
}

// String renders the group in line, field, character order
func (g *AxisGroup) String() string {
	var b strings.Builder
	for _, axis := range grid.Axes {
		if e := g.Get(axis); e != nil {
			b.WriteString(e.String())
		}
	}

	return b.String()
}

// Slice is the parsed form of a whole expression
type Slice struct {
	From       AxisGroup
	To         AxisGroup
	Step       AxisGroup
	Separators int // number of ':' written, 0 to 2
}

func (s *Slice) Kind() string { return "slice" }

func (s *Slice) Position() tok.Position { return s.From.Position() }

// String renders the slice in canonical form
func (s *Slice) String() string {
	parts := []string{s.From.String(), s.To.String(), s.Step.String()}
	return strings.Join(parts[:s.Separators+1], ":")
}

var (
	_ Node = (*Endpoint)(nil)
	_ Node = (*AxisGroup)(nil)
	_ Node = (*Slice)(nil)
)
