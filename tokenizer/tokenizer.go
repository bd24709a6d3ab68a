package tokenizer

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// TokenIterator yields tokens until EOF or the consumer stops.
type TokenIterator iter.Seq2[Token, error]

// ExpressionTokenizer splits a slice expression into tokens
type ExpressionTokenizer struct {
	input string
}

// NewExpressionTokenizer creates a new ExpressionTokenizer
func NewExpressionTokenizer(input string) *ExpressionTokenizer {
	return &ExpressionTokenizer{input: input}
}

// Tokens returns an iterator of tokens. The last token is always EOF
// unless an encoding error stops the scan.
func (t *ExpressionTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			column: 1,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) {
				return
			}

			if token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, EOF included
func (t *ExpressionTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, len(t.input)+1)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Tokenize is a shortcut of NewExpressionTokenizer(src).AllTokens()
func Tokenize(src string) ([]Token, error) {
	return NewExpressionTokenizer(src).AllTokens()
}

type tokenizer struct {
	input   string
	offset  int // byte offset of current
	next    int // byte offset after current
	column  int // column of current
	current rune
	invalid bool
}

func (t *tokenizer) nextToken() (Token, error) {
	if t.invalid {
		return Token{}, fmt.Errorf("%w at column %d", ErrInvalidEncoding, t.column)
	}

	if t.offset >= len(t.input) {
		return t.newToken(EOF, ""), nil
	}

	switch t.current {
	case '!':
		return t.single(EXCLAMATION), nil
	case ':':
		return t.single(COLON), nil
	case '-':
		return t.single(MINUS), nil
	case 'l':
		return t.single(LINE), nil
	case 'L':
		return t.single(LINE_PIN), nil
	case 'f':
		return t.single(FIELD), nil
	case 'F':
		return t.single(FIELD_PIN), nil
	case 'c':
		return t.single(CHAR), nil
	case 'C':
		return t.single(CHAR_PIN), nil
	default:
		if isDigit(t.current) {
			return t.readNumber(), nil
		}
		return t.single(OTHER), nil
	}
}

// readChar advances to the next rune
func (t *tokenizer) readChar() {
	if t.next > t.offset {
		t.column++
	}
	t.offset = t.next

	if t.offset >= len(t.input) {
		t.current = 0
		return
	}

	r, width := utf8.DecodeRuneInString(t.input[t.offset:])
	if r == utf8.RuneError && width == 1 {
		t.invalid = true
	}
	t.current = r
	t.next = t.offset + width
}

// readNumber reads a run of ASCII digits. The sign is a separate token.
func (t *tokenizer) readNumber() Token {
	token := t.newToken(NUMBER, "")

	for t.offset < len(t.input) && isDigit(t.current) {
		t.readChar()
	}

	token.Value = t.input[token.Position.Offset:t.offset]

	return token
}

func (t *tokenizer) single(tokenType TokenType) Token {
	token := t.newToken(tokenType, t.input[t.offset:t.next])
	t.readChar()

	return token
}

func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Column: t.column,
			Offset: t.offset,
		},
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
