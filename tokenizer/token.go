package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF TokenType = iota

	// Punctuation
	EXCLAMATION // !
	COLON       // :
	MINUS       // -
	NUMBER      // digit run

	// Axis prefixes
	LINE      // l
	LINE_PIN  // L
	FIELD     // f
	FIELD_PIN // F
	CHAR      // c
	CHAR_PIN  // C

	// Anything the grammar does not know about
	OTHER
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case EXCLAMATION:
		return "EXCLAMATION"
	case COLON:
		return "COLON"
	case MINUS:
		return "MINUS"
	case NUMBER:
		return "NUMBER"
	case LINE:
		return "LINE"
	case LINE_PIN:
		return "LINE_PIN"
	case FIELD:
		return "FIELD"
	case FIELD_PIN:
		return "FIELD_PIN"
	case CHAR:
		return "CHAR"
	case CHAR_PIN:
		return "CHAR_PIN"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the expression.
// Column is rune based and starts at 1, Offset is the byte offset.
type Position struct {
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("column %d", p.Column)
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
