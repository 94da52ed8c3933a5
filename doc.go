/*
Package plz provides lexing, parsing, formatting, and validation for plz
programs, a small imperative expression language.

A program is a sequence of statements:

	let a = 5;
	let b = 2;
	let c = (a + b) * 3;
	c = c - 1;
	print c;

Identifiers are lowercase letters optionally followed by digits, numbers are
32-bit signed integers, and let and print are reserved. The usual precedence
applies ("*" and "/" bind tighter than "+" and "-") and operators of the same
level group to the left, so a - b - c parses as (a - b) - c.

Lexer example:

	toks, err := plz.Lex([]byte("let a = 5;"))
	if err != nil {
		// err is a *plz.LexError
	}

Reader example:

	p, err := plz.DecodeFile("example.plz", nil)
	if err != nil {
		// err is a *plz.LexError or *plz.ParseError
	}

Writer example:

	out, err := plz.Format(p, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := plz.Validate(p, nil)
	if plz.HasErrors(issues) {
		// handle validation issues
	}
*/
package plz
