package plz

import (
	"fmt"
	"strings"
)

// Node is a parsed AST node.
type Node interface {
	// Position returns the source position of the node. Binary nodes report
	// their operator, all others their first token.
	Position() Position
	// String renders the node in constructor notation, e.g. Add(Term(Num(1)), Term(Id("a"))).
	String() string
}

// Statement is one of *LetStmt, *AssignStmt or *PrintStmt.
type Statement interface {
	Node
	statement()
}

// Expression is one of *AddExpr, *SubExpr or *TermExpr.
type Expression interface {
	Node
	expression()
}

// Term is one of *MulTerm, *DivTerm, *ParenTerm, *NumTerm or *IdentTerm.
type Term interface {
	Node
	term()
}

// Program is a parsed source file. Statements are kept in source order.
type Program struct {
	Statements []Statement
}

// Position implements Node.
func (p *Program) Position() Position {
	if len(p.Statements) == 0 {
		return Position{Line: 1, Col: 1}
	}

	return p.Statements[0].Position()
}

// String implements Node.
func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		parts[i] = s.String()
	}

	return "Program[" + strings.Join(parts, ", ") + "]"
}

// LetStmt represents let name = value;
type LetStmt struct {
	Name  string     // Declared variable
	Value Expression // Initial value
	Pos   Position   // Position of "let"
}

// AssignStmt represents name = value;
type AssignStmt struct {
	Name  string     // Assigned variable
	Value Expression // New value
	Pos   Position   // Position of the name
}

// PrintStmt represents print value;
type PrintStmt struct {
	Value Expression // Printed value
	Pos   Position   // Position of "print"
}

func (s *LetStmt) statement()    {}
func (s *AssignStmt) statement() {}
func (s *PrintStmt) statement()  {}

func (s *LetStmt) Position() Position    { return s.Pos }
func (s *AssignStmt) Position() Position { return s.Pos }
func (s *PrintStmt) Position() Position  { return s.Pos }

func (s *LetStmt) String() string    { return fmt.Sprintf("Let(%q, %s)", s.Name, s.Value) }
func (s *AssignStmt) String() string { return fmt.Sprintf("Assign(%q, %s)", s.Name, s.Value) }
func (s *PrintStmt) String() string  { return fmt.Sprintf("Print(%s)", s.Value) }

// AddExpr represents Left + Right.
type AddExpr struct {
	Left  Expression
	Right Expression
	Pos   Position
}

// SubExpr represents Left - Right.
type SubExpr struct {
	Left  Expression
	Right Expression
	Pos   Position
}

// TermExpr wraps a Term as an Expression.
type TermExpr struct {
	Term Term
}

func (e *AddExpr) expression()  {}
func (e *SubExpr) expression()  {}
func (e *TermExpr) expression() {}

func (e *AddExpr) Position() Position  { return e.Pos }
func (e *SubExpr) Position() Position  { return e.Pos }
func (e *TermExpr) Position() Position { return e.Term.Position() }

func (e *AddExpr) String() string  { return fmt.Sprintf("Add(%s, %s)", e.Left, e.Right) }
func (e *SubExpr) String() string  { return fmt.Sprintf("Sub(%s, %s)", e.Left, e.Right) }
func (e *TermExpr) String() string { return fmt.Sprintf("Term(%s)", e.Term) }

// MulTerm represents Left * Right.
type MulTerm struct {
	Left  Term
	Right Term
	Pos   Position
}

// DivTerm represents Left / Right.
type DivTerm struct {
	Left  Term
	Right Term
	Pos   Position
}

// ParenTerm represents ( Expr ).
type ParenTerm struct {
	Expr Expression
	Pos  Position // Position of "("
}

// NumTerm represents an integer literal.
type NumTerm struct {
	Value int32
	Pos   Position
}

// IdentTerm represents a variable reference.
type IdentTerm struct {
	Name string
	Pos  Position
}

func (t *MulTerm) term()   {}
func (t *DivTerm) term()   {}
func (t *ParenTerm) term() {}
func (t *NumTerm) term()   {}
func (t *IdentTerm) term() {}

func (t *MulTerm) Position() Position   { return t.Pos }
func (t *DivTerm) Position() Position   { return t.Pos }
func (t *ParenTerm) Position() Position { return t.Pos }
func (t *NumTerm) Position() Position   { return t.Pos }
func (t *IdentTerm) Position() Position { return t.Pos }

func (t *MulTerm) String() string   { return fmt.Sprintf("Mult(%s, %s)", t.Left, t.Right) }
func (t *DivTerm) String() string   { return fmt.Sprintf("Div(%s, %s)", t.Left, t.Right) }
func (t *ParenTerm) String() string { return fmt.Sprintf("Parenthesis(%s)", t.Expr) }
func (t *NumTerm) String() string   { return fmt.Sprintf("Num(%d)", t.Value) }
func (t *IdentTerm) String() string { return fmt.Sprintf("Id(%q)", t.Name) }

// Walk traverses the tree rooted at n in pre-order, calling fn for every node.
// Children of a node are skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch t := n.(type) {
	case *Program:
		for _, s := range t.Statements {
			Walk(s, fn)
		}
	case *LetStmt:
		Walk(t.Value, fn)
	case *AssignStmt:
		Walk(t.Value, fn)
	case *PrintStmt:
		Walk(t.Value, fn)
	case *AddExpr:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *SubExpr:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *TermExpr:
		Walk(t.Term, fn)
	case *MulTerm:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *DivTerm:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *ParenTerm:
		Walk(t.Expr, fn)
	}
}
