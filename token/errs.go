package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognized = errors.New("unrecognized text")
	ErrIndent       = errors.New("inconsistent indentation")
	ErrBracket      = errors.New("mismatched bracket")
	ErrUnterminated = errors.New("unterminated string")
	ErrNumber       = errors.New("bad number")
)

type TokenizeErr struct {
	Err  error
	Line int
	Text string
}

func NewTokenizeErr(e error, line int, text string) *TokenizeErr {
	return &TokenizeErr{Err: e, Line: line, Text: text}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
	}
	return fmt.Sprintf("%s at line %d: %q", e.Err.Error(), e.Line, e.Text)
}

// ErrImbalancedBracket reports a closing bracket with no open context
// (Open == 0) or one whose kind does not match the innermost open context.
type ErrImbalancedBracket struct {
	Open  byte
	Close byte
	Line  int
}

func (e *ErrImbalancedBracket) Unwrap() error {
	return ErrBracket
}

func (e *ErrImbalancedBracket) Error() string {
	if e.Open == 0 {
		return fmt.Sprintf("%s: unexpected %q at line %d", ErrBracket.Error(), string(e.Close), e.Line)
	}
	return fmt.Sprintf("%s: %q closed by %q at line %d",
		ErrBracket.Error(), string(e.Open), string(e.Close), e.Line)
}
