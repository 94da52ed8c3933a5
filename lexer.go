package plz

import (
	"iter"
	"os"
	"strconv"
	"unicode/utf8"
)

// punctuation maps single-character operators and punctuation to token kinds.
var punctuation = [256]TokenKind{
	'=': TokAssign,
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	';': TokSemicolon,
	'(': TokLParen,
	')': TokRParen,
}

// Lexer splits a source buffer into tokens on demand.
//
// The cursor only moves forward. After a failure every call to Next returns
// the same *LexError.
type Lexer struct {
	src []byte   // Source text
	pos Position // Cursor
	err error    // Sticky lex error
}

// NewLexer creates a lexer positioned at the start of src.
func NewLexer(src []byte) *Lexer {
	l := &Lexer{src: src}
	l.Reset()
	return l
}

// Lex tokenizes src completely. The end-of-input marker is not included.
func Lex(src []byte) ([]Token, error) {
	var out []Token
	for tok, err := range NewLexer(src).Tokens() {
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}

	return out, nil
}

// LexFile tokenizes a file completely.
func LexFile(path string) ([]Token, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Lex(b)
}

// Reset moves the cursor back to the start of the buffer and clears any error.
func (l *Lexer) Reset() {
	l.pos = Position{Line: 1, Col: 1}
	l.err = nil
}

// Tokens returns the token sequence from the start of the buffer.
// The sequence stops at end of input or after yielding the first error.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l.Reset()
		for {
			tok, err := l.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if tok.Kind == TokEOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Next returns the next token. At end of input it returns a TokEOF token,
// and keeps returning it on further calls.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	l.skipWhitespace()
	if l.pos.Offset >= len(l.src) {
		return Token{Kind: TokEOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.src[start.Offset]

	// Pattern order decides ties: identifier, number, operators, punctuation.
	switch {
	case isLower(ch):
		lit := l.readIdent()
		if kind, ok := keywords[lit]; ok {
			return Token{Kind: kind, Lit: lit, Pos: start}, nil
		}

		return Token{Kind: TokIdent, Lit: lit, Pos: start}, nil

	case isDigit(ch):
		lit := l.readDigits()
		n, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			return Token{}, l.fail(start, lit, "integer literal out of range")
		}

		return Token{Kind: TokNumber, Lit: lit, Num: int32(n), Pos: start}, nil
	}

	if kind := punctuation[ch]; kind != TokEOF {
		l.advance(1)
		return Token{Kind: kind, Lit: string(ch), Pos: start}, nil
	}

	_, size := utf8.DecodeRune(l.src[start.Offset:])
	return Token{}, l.fail(start, string(l.src[start.Offset:start.Offset+size]), "unexpected character")
}

// advance moves the cursor forward by n bytes.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos.Offset] == '\n' {
			l.pos.Line++
			l.pos.Col = 1
		} else {
			l.pos.Col++
		}
		l.pos.Offset++
	}
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos.Offset < len(l.src) && isSpace(l.src[l.pos.Offset]) {
		l.advance(1)
	}
}

// readIdent reads lowercase letters followed by optional digits.
func (l *Lexer) readIdent() string {
	start := l.pos.Offset
	end := start
	for end < len(l.src) && isLower(l.src[end]) {
		end++
	}
	for end < len(l.src) && isDigit(l.src[end]) {
		end++
	}

	l.advance(end - start)
	return string(l.src[start:end])
}

// readDigits reads a run of decimal digits.
func (l *Lexer) readDigits() string {
	start := l.pos.Offset
	end := start
	for end < len(l.src) && isDigit(l.src[end]) {
		end++
	}

	l.advance(end - start)
	return string(l.src[start:end])
}

// fail records a sticky lex error.
func (l *Lexer) fail(pos Position, text, reason string) error {
	l.err = &LexError{Pos: pos, Text: text, Reason: reason}
	return l.err
}

// isLower checks if a byte is a lowercase ASCII letter.
func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isDigit checks if a byte is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace checks if a byte is ASCII whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
