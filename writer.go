package plz

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Encode writes a Program to writer.
func Encode(w io.Writer, p *Program, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, sep: " "}
	if fopt.Compact {
		wr.sep = ""
	}
	if err := wr.writeProgram(p); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Program to a file.
func EncodeFile(path string, p *Program, opt *FormatOptions) error {
	b, err := Format(p, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

// Format renders a Program to canonical source bytes.
func Format(p *Program, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Program to a writer.
type writer struct {
	w   io.Writer // Writer to write to
	sep string    // Separator around binary operators and "="
}

// writeProgram writes all statements, one per line.
func (w *writer) writeProgram(p *Program) error {
	if p == nil {
		return fmt.Errorf("%w: nil program", ErrFormat)
	}

	for _, st := range p.Statements {
		if err := w.writeStatement(st); err != nil {
			return err
		}
		if err := w.writeString(";\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeStatement writes a statement without its terminator.
func (w *writer) writeStatement(st Statement) error {
	switch s := st.(type) {
	case *LetStmt:
		if err := w.writeString("let "); err != nil {
			return err
		}
		return w.writeBinding(s.Name, s.Value)

	case *AssignStmt:
		return w.writeBinding(s.Name, s.Value)

	case *PrintStmt:
		if err := w.writeString("print "); err != nil {
			return err
		}
		return w.writeExpr(s.Value)

	default:
		return fmt.Errorf("%w: unsupported statement %T", ErrFormat, st)
	}
}

// writeBinding writes name = value.
func (w *writer) writeBinding(name string, val Expression) error {
	if !isIdentName(name) {
		return fmt.Errorf("%w: invalid identifier %q", ErrFormat, name)
	}
	if err := w.writeString(name); err != nil {
		return err
	}
	if err := w.writeOp("="); err != nil {
		return err
	}

	return w.writeExpr(val)
}

// writeExpr writes an expression.
func (w *writer) writeExpr(e Expression) error {
	switch x := e.(type) {
	case *AddExpr:
		return w.writeExprPair(x.Left, "+", x.Right)
	case *SubExpr:
		return w.writeExprPair(x.Left, "-", x.Right)
	case *TermExpr:
		return w.writeTerm(x.Term)
	default:
		return fmt.Errorf("%w: unsupported expression %T", ErrFormat, e)
	}
}

// writeExprPair writes left op right. A right operand that is itself a sum or
// difference is parenthesized so that it does not re-associate on re-parse.
func (w *writer) writeExprPair(left Expression, op string, right Expression) error {
	if err := w.writeExpr(left); err != nil {
		return err
	}
	if err := w.writeOp(op); err != nil {
		return err
	}
	if _, ok := right.(*TermExpr); ok {
		return w.writeExpr(right)
	}

	return w.writeParens(func() error { return w.writeExpr(right) })
}

// writeTerm writes a term.
func (w *writer) writeTerm(t Term) error {
	switch x := t.(type) {
	case *MulTerm:
		return w.writeTermPair(x.Left, "*", x.Right)
	case *DivTerm:
		return w.writeTermPair(x.Left, "/", x.Right)
	case *ParenTerm:
		return w.writeParens(func() error { return w.writeExpr(x.Expr) })
	case *NumTerm:
		if x.Value < 0 {
			return fmt.Errorf("%w: negative literal %d", ErrFormat, x.Value)
		}
		var buf [16]byte
		_, err := w.w.Write(strconv.AppendInt(buf[:0], int64(x.Value), 10))
		return err
	case *IdentTerm:
		if !isIdentName(x.Name) {
			return fmt.Errorf("%w: invalid identifier %q", ErrFormat, x.Name)
		}
		return w.writeString(x.Name)
	default:
		return fmt.Errorf("%w: unsupported term %T", ErrFormat, t)
	}
}

// writeTermPair writes left op right, parenthesizing a product or quotient on the right.
func (w *writer) writeTermPair(left Term, op string, right Term) error {
	if err := w.writeTerm(left); err != nil {
		return err
	}
	if err := w.writeOp(op); err != nil {
		return err
	}

	switch right.(type) {
	case *MulTerm, *DivTerm:
		return w.writeParens(func() error { return w.writeTerm(right) })
	default:
		return w.writeTerm(right)
	}
}

// writeParens writes "(" body ")".
func (w *writer) writeParens(body func() error) error {
	if err := w.writeString("("); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}

	return w.writeString(")")
}

// writeOp writes a binary operator with the configured separator.
func (w *writer) writeOp(op string) error {
	if err := w.writeString(w.sep); err != nil {
		return err
	}
	if err := w.writeString(op); err != nil {
		return err
	}

	return w.writeString(w.sep)
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// isIdentName reports whether s lexes as a single identifier token.
func isIdentName(s string) bool {
	i := 0
	for i < len(s) && isLower(s[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i != len(s) {
		return false
	}

	_, reserved := keywords[s]
	return !reserved
}
