package plz

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeUndeclared       = "undeclared"
	CodeAssignUndeclared = "assign_undeclared"
	CodeRedeclared       = "redeclared"
	CodeUnused           = "unused"
	CodeDivZero          = "div_zero"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"` // Variable the issue is about
	Pos     Position   `json:"pos" yaml:"pos"`                       // Source position
}

// String renders the issue as "line:col: level: message (name)".
func (i Issue) String() string {
	s := i.Pos.String() + ": " + string(i.Level) + ": " + i.Message
	if i.Name != "" {
		s += " (" + i.Name + ")"
	}

	return s
}

// HasErrors reports whether any issue has error level.
func HasErrors(issues []Issue) bool {
	for _, it := range issues {
		if it.Level == IssueError {
			return true
		}
	}

	return false
}

// decl tracks a declared variable.
type decl struct {
	pos  Position // Position of the first let
	used bool     // Whether the variable is ever read
}

// Validate statically checks a program and returns issues in source order,
// followed by unused-variable warnings in declaration order.
func Validate(p *Program, opt *ValidateOptions) []Issue {
	if p == nil {
		return nil
	}

	vopt := opt.normalize()
	var out []Issue
	decls := make(map[string]*decl)
	var order []string

	// reads checks every identifier and division in an expression.
	reads := func(e Expression) {
		Walk(e, func(n Node) bool {
			switch t := n.(type) {
			case *IdentTerm:
				if d, ok := decls[t.Name]; ok {
					d.used = true
				} else if !vopt.DisableUndeclaredCheck {
					out = append(out, Issue{Level: IssueError, Code: CodeUndeclared, Message: "use of undeclared variable", Name: t.Name, Pos: t.Pos})
				}

			case *DivTerm:
				if !vopt.DisableDivZeroCheck && isZeroLiteral(t.Right) {
					out = append(out, Issue{Level: IssueWarning, Code: CodeDivZero, Message: "division by zero", Pos: t.Pos})
				}
			}
			return true
		})
	}

	for _, st := range p.Statements {
		switch s := st.(type) {
		case *LetStmt:
			// The initializer is evaluated before the name is bound.
			reads(s.Value)
			if _, ok := decls[s.Name]; ok {
				if !vopt.DisableRedeclareCheck {
					out = append(out, Issue{Level: IssueWarning, Code: CodeRedeclared, Message: "variable declared again", Name: s.Name, Pos: s.Pos})
				}
				continue
			}

			decls[s.Name] = &decl{pos: s.Pos}
			order = append(order, s.Name)

		case *AssignStmt:
			reads(s.Value)
			if _, ok := decls[s.Name]; !ok && !vopt.DisableUndeclaredCheck {
				out = append(out, Issue{Level: IssueError, Code: CodeAssignUndeclared, Message: "assignment to undeclared variable", Name: s.Name, Pos: s.Pos})
			}

		case *PrintStmt:
			reads(s.Value)
		}
	}

	if !vopt.DisableUnusedCheck {
		for _, name := range order {
			if d := decls[name]; !d.used {
				out = append(out, Issue{Level: IssueWarning, Code: CodeUnused, Message: "variable declared but never read", Name: name, Pos: d.pos})
			}
		}
	}

	return out
}

// isZeroLiteral checks if a term is the literal 0, possibly parenthesized.
func isZeroLiteral(t Term) bool {
	for {
		switch x := t.(type) {
		case *NumTerm:
			return x.Value == 0
		case *ParenTerm:
			te, ok := x.Expr.(*TermExpr)
			if !ok {
				return false
			}
			t = te.Term
		default:
			return false
		}
	}
}
