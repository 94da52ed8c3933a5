package plz

import (
	"fmt"
	"strconv"
)

// TokenKind represents a kind of token.
type TokenKind int

// token kinds.
const (
	TokEOF       TokenKind = iota // End of input
	TokIdent                      // Identifier
	TokNumber                     // Integer literal
	TokAssign                     // =
	TokPlus                       // +
	TokMinus                      // -
	TokStar                       // *
	TokSlash                      // /
	TokLParen                     // (
	TokRParen                     // )
	TokSemicolon                  // ;
	TokLet                        // let keyword
	TokPrint                      // print keyword
)

// keywords maps reserved words to their token kinds.
var keywords = map[string]TokenKind{
	"let":   TokLet,
	"print": TokPrint,
}

// String returns the surface form of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "end of input"
	case TokIdent:
		return "identifier"
	case TokNumber:
		return "number"
	case TokAssign:
		return `"="`
	case TokPlus:
		return `"+"`
	case TokMinus:
		return `"-"`
	case TokStar:
		return `"*"`
	case TokSlash:
		return `"/"`
	case TokLParen:
		return `"("`
	case TokRParen:
		return `")"`
	case TokSemicolon:
		return `";"`
	case TokLet:
		return `"let"`
	case TokPrint:
		return `"print"`
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsKeyword reports whether the kind is a reserved word.
func (k TokenKind) IsKeyword() bool {
	return k == TokLet || k == TokPrint
}

// Position is a location in the source text.
type Position struct {
	Offset int `json:"offset" yaml:"offset"` // Byte offset, 0-based
	Line   int `json:"line" yaml:"line"`     // Line number, 1-based
	Col    int `json:"col" yaml:"col"`       // Column number, 1-based
}

// String returns "line:col".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Token is a lexical unit.
type Token struct {
	Lit  string    // Source text of the token
	Kind TokenKind // Kind of the token
	Num  int32     // Value of a TokNumber
	Pos  Position  // Position of the first character
}

// String renders the token as Keyword(Let), Id("a"), Num(5), Assign, ...
func (t Token) String() string {
	switch t.Kind {
	case TokEOF:
		return "EOF"
	case TokIdent:
		return fmt.Sprintf("Id(%q)", t.Lit)
	case TokNumber:
		return fmt.Sprintf("Num(%d)", t.Num)
	case TokAssign:
		return "Assign"
	case TokPlus:
		return "Add"
	case TokMinus:
		return "Sub"
	case TokStar:
		return "Mult"
	case TokSlash:
		return "Div"
	case TokLParen:
		return "LPar"
	case TokRParen:
		return "RPar"
	case TokSemicolon:
		return "Semicolon"
	case TokLet:
		return "Keyword(Let)"
	case TokPrint:
		return "Keyword(Print)"
	default:
		return t.Kind.String()
	}
}

// describe renders the token for diagnostics.
func (t Token) describe() string {
	switch t.Kind {
	case TokEOF:
		return "end of input"
	case TokIdent:
		return "identifier " + strconv.Quote(t.Lit)
	case TokNumber:
		return "number " + t.Lit
	default:
		return t.Kind.String()
	}
}
