package plz

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenStrings lexes input and renders each token with Token.String.
func tokenStrings(t *testing.T, input string) []string {
	t.Helper()
	toks, err := Lex([]byte(input))
	require.NoError(t, err)

	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.String()
	}
	return out
}

func TestLexTable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "let_statement",
			input: "let a = 5;",
			want:  []string{"Keyword(Let)", `Id("a")`, "Assign", "Num(5)", "Semicolon"},
		},
		{
			name:  "ident_with_digits",
			input: "ab12",
			want:  []string{`Id("ab12")`},
		},
		{
			name:  "digits_end_ident",
			input: "ab12c",
			want:  []string{`Id("ab12")`, `Id("c")`},
		},
		{
			name:  "number_then_ident",
			input: "12ab",
			want:  []string{"Num(12)", `Id("ab")`},
		},
		{
			name:  "keyword_prefix_is_ident",
			input: "letter printer",
			want:  []string{`Id("letter")`, `Id("printer")`},
		},
		{
			name:  "print_keyword",
			input: "print(x);",
			want:  []string{"Keyword(Print)", "LPar", `Id("x")`, "RPar", "Semicolon"},
		},
		{
			name:  "operators_without_spaces",
			input: "a=b+c-d*e/f",
			want: []string{
				`Id("a")`, "Assign", `Id("b")`, "Add", `Id("c")`, "Sub",
				`Id("d")`, "Mult", `Id("e")`, "Div", `Id("f")`,
			},
		},
		{
			name:  "leading_zeros",
			input: "007",
			want:  []string{"Num(7)"},
		},
		{
			name:  "max_int32",
			input: "2147483647",
			want:  []string{"Num(2147483647)"},
		},
		{
			name:  "whitespace_only",
			input: " \t\r\n\v\f ",
			want:  []string{},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenStrings(t, tt.input))
		})
	}
}

func TestLexPositions(t *testing.T) {
	toks, err := Lex([]byte("let a\n  = 5;"))
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, Position{Offset: 0, Line: 1, Col: 1}, toks[0].Pos)
	assert.Equal(t, Position{Offset: 4, Line: 1, Col: 5}, toks[1].Pos)
	assert.Equal(t, Position{Offset: 8, Line: 2, Col: 3}, toks[2].Pos)
	assert.Equal(t, Position{Offset: 10, Line: 2, Col: 5}, toks[3].Pos)
	assert.Equal(t, "5", toks[3].Lit)
	assert.Equal(t, int32(5), toks[3].Num)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		reason string
		pos    Position
	}{
		{
			name:   "dollar",
			input:  "a$b",
			text:   "$",
			reason: "unexpected character",
			pos:    Position{Offset: 1, Line: 1, Col: 2},
		},
		{
			name:   "uppercase",
			input:  "let A = 1;",
			text:   "A",
			reason: "unexpected character",
			pos:    Position{Offset: 4, Line: 1, Col: 5},
		},
		{
			name:   "non_ascii",
			input:  "a é",
			text:   "é",
			reason: "unexpected character",
			pos:    Position{Offset: 2, Line: 1, Col: 3},
		},
		{
			name:   "overflow",
			input:  "let a =\n2147483648;",
			text:   "2147483648",
			reason: "integer literal out of range",
			pos:    Position{Offset: 8, Line: 2, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLex))

			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.text, lexErr.Text)
			assert.Equal(t, tt.reason, lexErr.Reason)
			assert.Equal(t, tt.pos, lexErr.Pos)
		})
	}
}

func TestLexErrorMessage(t *testing.T) {
	_, err := Lex([]byte("a$b"))
	require.Error(t, err)
	assert.Equal(t, `lex error at 1:2: unexpected character "$"`, err.Error())
}

func TestLexerNextAfterEnd(t *testing.T) {
	l := NewLexer([]byte("a"))

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokIdent, tok.Kind)

	for i := 0; i < 3; i++ {
		tok, err = l.Next()
		require.NoError(t, err)
		assert.Equal(t, TokEOF, tok.Kind)
		assert.Equal(t, 1, tok.Pos.Offset)
	}
}

func TestLexerStickyError(t *testing.T) {
	l := NewLexer([]byte("a $ b"))

	_, err := l.Next()
	require.NoError(t, err)

	_, first := l.Next()
	require.Error(t, first)
	_, second := l.Next()
	assert.Same(t, first, second)

	l.Reset()
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, `Id("a")`, tok.String())
}

func TestLexerTokensRestart(t *testing.T) {
	l := NewLexer([]byte("let a = 5;"))

	collect := func() []Token {
		var out []Token
		for tok, err := range l.Tokens() {
			require.NoError(t, err)
			out = append(out, tok)
		}
		return out
	}

	first := collect()
	second := collect()
	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestLexerTokensStopEarly(t *testing.T) {
	l := NewLexer([]byte("a b c d"))

	n := 0
	for range l.Tokens() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestLexerTokensYieldsError(t *testing.T) {
	var toks []Token
	var errs []error
	for tok, err := range NewLexer([]byte("a b $ c")).Tokens() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
	}

	assert.Len(t, toks, 2)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrLex)
}

func TestLexFile(t *testing.T) {
	toks, err := LexFile(filepath.Join("testdata", "basic.plz"))
	require.NoError(t, err)
	assert.Len(t, toks, 22)

	_, err = LexFile(filepath.Join("testdata", "bad_lex.plz"))
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Pos.Line)

	_, err = LexFile(filepath.Join("testdata", "missing.plz"))
	assert.Error(t, err)
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "end of input", TokEOF.String())
	assert.Equal(t, "identifier", TokIdent.String())
	assert.Equal(t, `";"`, TokSemicolon.String())
	assert.Equal(t, `"let"`, TokLet.String())
	assert.Equal(t, "TokenKind(99)", TokenKind(99).String())
	assert.True(t, TokPrint.IsKeyword())
	assert.False(t, TokIdent.IsKeyword())
}
