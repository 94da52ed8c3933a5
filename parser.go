package plz

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// TokenSource produces tokens one at a time. A TokEOF token ends the sequence;
// a source must keep returning it once exhausted.
type TokenSource interface {
	Next() (Token, error)
}

// TokenSlice is a TokenSource over already lexed tokens, e.g. the result of Lex.
type TokenSlice []Token

// Next implements TokenSource.
func (s *TokenSlice) Next() (Token, error) {
	if len(*s) == 0 {
		return Token{Kind: TokEOF}, nil
	}

	tok := (*s)[0]
	*s = (*s)[1:]
	return tok, nil
}

// Parse parses a program from bytes.
func Parse(data []byte, opt *ParseOptions) (*Program, error) {
	return ParseTokens(NewLexer(data), opt)
}

// Decode parses a program from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Program, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return Parse(buf.Bytes(), opt)
}

// DecodeFile parses a program from a file.
func DecodeFile(path string, opt *ParseOptions) (*Program, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, opt)
}

// ParseTokens parses a program from a token source.
// Either a complete program or the first error is returned, never both.
func ParseTokens(src TokenSource, opt *ParseOptions) (*Program, error) {
	p := newParser(src, opt.normalize())
	return p.parseProgram()
}

// parser is a recursive descent parser with one token of lookahead.
type parser struct {
	src   TokenSource  // Token source
	buf   Token        // Buffered token
	has   bool         // Has buffered token
	opt   ParseOptions // Options for the parser
	depth int          // Current parenthesis nesting
}

// newParser creates a new parser.
func newParser(src TokenSource, opt ParseOptions) *parser {
	return &parser{src: src, opt: opt}
}

// next returns the next token, consuming it.
func (p *parser) next() (Token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.src.Next()
}

// peek returns the next token without consuming it.
func (p *parser) peek() (Token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.src.Next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true
	return tok, nil
}

// parseProgram parses statements until end of input.
func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			return prog, nil
		}

		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, st)
	}
}

// parseStatement parses one statement. The first token selects the branch.
func (p *parser) parseStatement() (Statement, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokLet:
		name, err := p.expect("statement", TokIdent)
		if err != nil {
			return nil, err
		}

		val, err := p.parseAssignTail()
		if err != nil {
			return nil, err
		}

		return &LetStmt{Name: name.Lit, Value: val, Pos: tok.Pos}, nil

	case TokIdent:
		val, err := p.parseAssignTail()
		if err != nil {
			return nil, err
		}

		return &AssignStmt{Name: tok.Lit, Value: val, Pos: tok.Pos}, nil

	case TokPrint:
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("statement", TokSemicolon); err != nil {
			return nil, err
		}

		return &PrintStmt{Value: val, Pos: tok.Pos}, nil

	default:
		return nil, p.unexpected(tok, "statement", TokLet, TokPrint, TokIdent)
	}
}

// parseAssignTail parses "=" expression ";".
func (p *parser) parseAssignTail() (Expression, error) {
	if _, err := p.expect("statement", TokAssign); err != nil {
		return nil, err
	}

	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("statement", TokSemicolon); err != nil {
		return nil, err
	}

	return val, nil
}

// parseExpression parses term { ("+" | "-") term }, folding to the left.
func (p *parser) parseExpression() (Expression, error) {
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	var left Expression = &TermExpr{Term: t}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokPlus, TokMinus:
			_, _ = p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}

			if tok.Kind == TokPlus {
				left = &AddExpr{Left: left, Right: &TermExpr{Term: right}, Pos: tok.Pos}
			} else {
				left = &SubExpr{Left: left, Right: &TermExpr{Term: right}, Pos: tok.Pos}
			}

		case TokSemicolon, TokRParen:
			// Follow set: leave the token for the caller.
			return left, nil

		default:
			return nil, p.unexpected(tok, "expression", TokPlus, TokMinus, TokSemicolon, TokRParen)
		}
	}
}

// parseTerm parses factor { ("*" | "/") factor }, folding to the left.
func (p *parser) parseTerm() (Term, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokStar, TokSlash:
			_, _ = p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}

			if tok.Kind == TokStar {
				left = &MulTerm{Left: left, Right: right, Pos: tok.Pos}
			} else {
				left = &DivTerm{Left: left, Right: right, Pos: tok.Pos}
			}

		case TokPlus, TokMinus, TokSemicolon, TokRParen:
			return left, nil

		default:
			return nil, p.unexpected(tok, "term", TokStar, TokSlash, TokPlus, TokMinus, TokSemicolon, TokRParen)
		}
	}
}

// parseFactor parses "(" expression ")" | identifier | number.
func (p *parser) parseFactor() (Term, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokLParen:
		if p.opt.MaxDepth > 0 && p.depth >= p.opt.MaxDepth {
			return nil, &ParseError{
				Rule:  fmt.Sprintf("at most %d nested parentheses", p.opt.MaxDepth),
				Found: tok,
				Pos:   tok.Pos,
			}
		}

		p.depth++
		expr, err := p.parseExpression()
		p.depth--
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("factor", TokRParen); err != nil {
			return nil, err
		}

		return &ParenTerm{Expr: expr, Pos: tok.Pos}, nil

	case TokIdent:
		return &IdentTerm{Name: tok.Lit, Pos: tok.Pos}, nil

	case TokNumber:
		return &NumTerm{Value: tok.Num, Pos: tok.Pos}, nil

	default:
		return nil, p.unexpected(tok, "factor", TokLParen, TokIdent, TokNumber)
	}
}

// expect consumes the next token and checks its kind.
func (p *parser) expect(rule string, kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	if tok.Kind != kind {
		return tok, p.unexpected(tok, rule, kind)
	}

	return tok, nil
}

// unexpected builds a ParseError for tok.
func (p *parser) unexpected(tok Token, rule string, want ...TokenKind) error {
	return &ParseError{Rule: rule, Expected: want, Found: tok, Pos: tok.Pos}
}
