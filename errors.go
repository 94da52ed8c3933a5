package plz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")

	// ErrFormat indicates a tree the writer cannot render as valid source.
	ErrFormat = errors.New("format error")
)

// LexError reports input that matches no token pattern at Pos.
type LexError struct {
	Text   string   // Offending character(s)
	Reason string   // What went wrong
	Pos    Position // Position of the offending text
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s: %s %q", ErrLex, e.Pos, e.Reason, e.Text)
}

// Unwrap returns ErrLex.
func (e *LexError) Unwrap() error { return ErrLex }

// ParseError reports the first token that does not fit the grammar.
//
// Found.Kind is TokEOF when the input ended early.
type ParseError struct {
	Rule     string      // Grammar rule being parsed
	Expected []TokenKind // Token kinds that would have been accepted
	Found    Token       // Token actually seen
	Pos      Position    // Position of Found
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s: expected ", ErrParse, e.Pos)
	switch len(e.Expected) {
	case 0:
		b.WriteString(e.Rule)
	case 1:
		b.WriteString(e.Expected[0].String())
	default:
		b.WriteString("one of ")
		for i, k := range e.Expected {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k.String())
		}
	}

	b.WriteString(", found ")
	b.WriteString(e.Found.describe())
	return b.String()
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// Expects reports whether k is among the expected token kinds.
func (e *ParseError) Expects(k TokenKind) bool {
	for _, x := range e.Expected {
		if x == k {
			return true
		}
	}

	return false
}
