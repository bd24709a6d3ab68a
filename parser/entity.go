package parser

import (
	tok "github.com/shibukawa/gridslice/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

// Entity is the value carried through the parser combinators
type Entity struct {
	Original tok.Token // The original token from the tokenizer
	NewValue Node      // The parsed node (nil for raw tokens)
}

func tokenToEntity(tokens []tok.Token) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], 0, len(tokens))
	for _, token := range tokens {
		if token.Type == tok.EOF {
			continue
		}

		pcToken := pc.Token[Entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  1,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: Entity{Original: token},
			Raw: token.Value,
		}
		results = append(results, pcToken)
	}

	return results
}

func nodeToken(first pc.Token[Entity], node Node, raw string) pc.Token[Entity] {
	return pc.Token[Entity]{
		Type: node.Kind(),
		Pos:  first.Pos,
		Val: Entity{
			Original: first.Val.Original,
			NewValue: node,
		},
		Raw: raw,
	}
}

func toSrc(entities []pc.Token[Entity]) string {
	src := make([]byte, 0, 16)
	for _, entity := range entities {
		src = append(src, entity.Raw...)
	}

	return string(src)
}
