package parser

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/shibukawa/gridslice/grid"
	tok "github.com/shibukawa/gridslice/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

/*
 * exclude      = "!"
 * lower(P)     = [exclude] P integer        ; P in {l, f, c}
 * upper(P)     = P integer                  ; P in {L, F, C}
 * endpoint(l)  = lower('l') | upper('L')
 * endpoint(f)  = lower('f') | upper('F')
 * endpoint(c)  = lower('c') | upper('C')
 * integer      = ['-'] digit+
 * grid_index   = at least one of endpoint(l), endpoint(f), endpoint(c), in any order
 * slice        = [grid_index] ':' [grid_index] [':' [grid_index]] | grid_index
 */

// Primitives
var (
	exclamation = primitiveType("exclamation", tok.EXCLAMATION)
	colon       = primitiveType("colon", tok.COLON)
	minus       = primitiveType("minus", tok.MINUS)
	number      = primitiveType("number", tok.NUMBER)

	integer = pc.Seq(pc.Optional(minus), number)
)

// Endpoints
var (
	lineEndpoint      = endpoint(grid.Line, tok.LINE, tok.LINE_PIN)
	fieldEndpoint     = endpoint(grid.Field, tok.FIELD, tok.FIELD_PIN)
	characterEndpoint = endpoint(grid.Character, tok.CHAR, tok.CHAR_PIN)

	endpoints = []pc.Parser[Entity]{lineEndpoint, fieldEndpoint, characterEndpoint}
)

func primitiveType(typeName string, types ...tok.TokenType) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Original.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// endpoint parses lower(P) | upper(P) for one axis
func endpoint(axis grid.Axis, open, pinned tok.TokenType) pc.Parser[Entity] {
	name := axis.String()

	return pc.Trace(name+"-endpoint", pc.Or(
		toEndpoint(axis, false, pc.Seq(pc.Optional(exclamation), primitiveType(name, open), integer)),
		toEndpoint(axis, true, pc.Seq(primitiveType(name+"-pin", pinned), integer)),
	))
}

func toEndpoint(axis grid.Axis, pinned bool, p pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Trans(p, func(pctx *pc.ParseContext[Entity], src []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		result := &Endpoint{
			Axis:   axis,
			Pinned: pinned,
			Pos:    src[0].Val.Original.Position,
		}

		var literal []byte
		for _, t := range src {
			switch t.Val.Original.Type {
			case tok.EXCLAMATION:
				result.Exclude = true
			case tok.MINUS, tok.NUMBER:
				literal = append(literal, t.Val.Original.Value...)
			}
		}

		value, err := strconv.Atoi(string(literal))
		if err != nil {
			return nil, &parseFailure{
				cause:  ErrSyntax,
				pos:    result.Pos,
				reason: fmt.Sprintf("integer %s is out of range", literal),
			}
		}
		result.Value = value

		return []pc.Token[Entity]{nodeToken(src[0], result, toSrc(src))}, nil
	})
}

// gridIndex parses up to one endpoint per axis in any order. A repeated axis
// ends the group, unless it mixes the open and pinned form of the same axis,
// which can never be resolved.
func gridIndex() pc.Parser[Entity] {
	return pc.Trace("grid-index", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		group := &AxisGroup{}
		current := 0

		for {
			matched := false

			for _, p := range endpoints {
				consumed, match, err := p(pctx, tokens[current:])
				if err != nil {
					if errors.Is(err, pc.ErrCritical) {
						return 0, nil, err
					}
					continue
				}

				e := match[0].Val.NewValue.(*Endpoint)
				if existing := group.Get(e.Axis); existing != nil {
					if existing.Pinned != e.Pinned {
						return 0, nil, &parseFailure{
							cause:  ErrAmbiguousRange,
							pos:    e.Pos,
							reason: fmt.Sprintf("%s was used in conjunction with %s for the same %s range", e, existing, e.Axis),
						}
					}
					continue
				}

				group.set(e)
				current += consumed
				matched = true

				break
			}

			if !matched {
				break
			}
		}

		if group.IsEmpty() {
			return 0, nil, pc.ErrNotMatch
		}

		return current, []pc.Token[Entity]{nodeToken(tokens[0], group, toSrc(tokens[:current]))}, nil
	})
}

// slice parses [grid_index] ':' [grid_index] [':' [grid_index]] | grid_index
func slice() pc.Parser[Entity] {
	index := gridIndex()

	return pc.Trace("slice", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		result := &Slice{}
		groups := []*AxisGroup{&result.From, &result.To, &result.Step}
		current := 0

		for i, group := range groups {
			consumed, match, err := index(pctx, tokens[current:])
			switch {
			case err == nil:
				*group = *match[0].Val.NewValue.(*AxisGroup)
				current += consumed
			case errors.Is(err, pc.ErrCritical):
				return 0, nil, err
			}

			if i == len(groups)-1 {
				break
			}

			consumed, _, err = colon(pctx, tokens[current:])
			if err != nil {
				break
			}
			current += consumed
			result.Separators++
		}

		if result.Separators == 0 && result.From.IsEmpty() {
			return 0, nil, pc.ErrNotMatch
		}

		return current, []pc.Token[Entity]{nodeToken(tokens[0], result, toSrc(tokens[:current]))}, nil
	})
}
