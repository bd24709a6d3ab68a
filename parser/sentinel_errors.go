package parser

import (
	"errors"
	"fmt"

	tok "github.com/shibukawa/gridslice/tokenizer"
	pc "github.com/shibukawa/parsercombinator"
)

// Sentinel errors
var (
	// ErrSyntax is returned when the expression does not match the grammar or
	// leaves trailing text unconsumed.
	ErrSyntax = errors.New("invalid slice expression")
	// ErrAmbiguousRange is returned when an open and a pinned bound collide on the
	// same axis.
	ErrAmbiguousRange = errors.New("ambiguous range specified")
	// ErrInvalidStep is returned when a step is pinned or zero.
	ErrInvalidStep = errors.New("invalid step")
)

// parseFailure aborts the whole parse instead of letting the caller backtrack.
type parseFailure struct {
	cause  error
	pos    tok.Position
	reason string
}

func (e *parseFailure) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.cause, e.pos, e.reason)
}

func (e *parseFailure) Unwrap() []error {
	return []error{e.cause, pc.ErrCritical}
}

// release strips the parser-internal critical marker
func (e *parseFailure) release() error {
	return fmt.Errorf("%w at %s: %s", e.cause, e.pos, e.reason)
}
