package subtitle

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTimingLine = errors.New("malformed timing line")
	ErrInvalidSequenceID   = errors.New("invalid sequence id")
)

// ParseError reports a block that could not be parsed. The parser has
// already moved past the offending line when it is returned.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
