package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/plz"
)

// tokenEntry is the serialized form of a token.
type tokenEntry struct {
	Kind  string `json:"kind" yaml:"kind"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Value *int32 `json:"value,omitempty" yaml:"value,omitempty"`
	Pos   string `json:"pos" yaml:"pos"`
}

func newTokenEntry(tok plz.Token) tokenEntry {
	e := tokenEntry{Kind: tok.Kind.String(), Text: tok.Lit, Pos: tok.Pos.String()}
	if tok.Kind == plz.TokNumber {
		v := tok.Num
		e.Value = &v
	}
	return e
}

// treeNode is the serialized form of an AST node.
type treeNode struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value    *int32      `json:"value,omitempty" yaml:"value,omitempty"`
	Pos      string      `json:"pos" yaml:"pos"`
	Children []*treeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func buildTree(n plz.Node) *treeNode {
	t := &treeNode{Pos: n.Position().String()}
	add := func(children ...plz.Node) {
		for _, c := range children {
			t.Children = append(t.Children, buildTree(c))
		}
	}

	switch v := n.(type) {
	case *plz.Program:
		t.Kind = "Program"
		for _, st := range v.Statements {
			add(st)
		}
	case *plz.LetStmt:
		t.Kind, t.Name = "Let", v.Name
		add(v.Value)
	case *plz.AssignStmt:
		t.Kind, t.Name = "Assign", v.Name
		add(v.Value)
	case *plz.PrintStmt:
		t.Kind = "Print"
		add(v.Value)
	case *plz.AddExpr:
		t.Kind = "Add"
		add(v.Left, v.Right)
	case *plz.SubExpr:
		t.Kind = "Sub"
		add(v.Left, v.Right)
	case *plz.TermExpr:
		t.Kind = "Term"
		add(v.Term)
	case *plz.MulTerm:
		t.Kind = "Mult"
		add(v.Left, v.Right)
	case *plz.DivTerm:
		t.Kind = "Div"
		add(v.Left, v.Right)
	case *plz.ParenTerm:
		t.Kind = "Parenthesis"
		add(v.Expr)
	case *plz.NumTerm:
		val := v.Value
		t.Kind, t.Value = "Num", &val
	case *plz.IdentTerm:
		t.Kind, t.Name = "Id", v.Name
	}
	return t
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
