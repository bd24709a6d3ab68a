package parser

import (
	"errors"
	"fmt"

	"github.com/shibukawa/gridslice/grid"
	tok "github.com/shibukawa/gridslice/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

// Parse parses a slice expression such as "l1:l-1:l2" or "F0c-3:".
// Any text left after the longest valid prefix is a syntax error.
func Parse(src string) (*Slice, error) {
	tokens, err := tok.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	entities := tokenToEntity(tokens)
	pctx := pc.NewParseContext[Entity]()

	consumed, parsed, err := slice()(pctx, entities)
	if err != nil {
		var failure *parseFailure
		if errors.As(err, &failure) {
			return nil, failure.release()
		}

		return nil, fmt.Errorf("%w: unable to parse %q", ErrSyntax, src)
	}

	if consumed < len(entities) {
		rest := entities[consumed]
		return nil, fmt.Errorf("%w at %s: failed to fully parse %q, unexpected %q",
			ErrSyntax, rest.Val.Original.Position, src, toSrc(entities[consumed:]))
	}

	result, ok := parsed[0].Val.NewValue.(*Slice)
	if !ok {
		return nil, fmt.Errorf("%w: unable to parse %q", ErrSyntax, src)
	}

	return result, nil
}

// ParseFilter parses and resolves an expression in one step
func ParseFilter(src string) (grid.Filter, error) {
	s, err := Parse(src)
	if err != nil {
		return grid.Filter{}, err
	}

	return s.Resolve()
}
