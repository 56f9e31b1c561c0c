package parse

import (
	"regexp"

	"centauri/internal/app/apperrors"
	"centauri/internal/app/lex"
	"centauri/internal/app/plan"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Parser implements a recursive-descent parser over a token sequence,
// lowering one complete statement into a plan.Statement.
//
// Corresponds to the source's hand-written Parser, restructured to consume
// a pre-tokenized stream through a cursor rather than re-scanning, per the
// design notes on random-access token sequences.
type Parser struct {
	c *cursor
}

// NewParser tokenizes s and returns a parser positioned at its first token.
func NewParser(s string) (*Parser, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	return &Parser{c: newCursor(tokens)}, nil
}

// Parse lexes and parses a single query string into a plan.Statement.
func Parse(s string) (plan.Statement, error) {
	p, err := NewParser(s)
	if err != nil {
		return plan.Statement{}, err
	}
	stmt, err := p.Query()
	if err != nil {
		return plan.Statement{}, err
	}
	if !p.c.atEnd() {
		return plan.Statement{}, apperrors.SyntaxErrf("unexpected trailing tokens")
	}
	return stmt, nil
}

// Query parses a complete statement.
//
//	query := 'create' create_tail
//	       | 'drop'   ident
//	       | 'insert' 'into' ident 'values' value_list
//	       | 'print'  ident
//	       | 'select' select_tail
func (p *Parser) Query() (plan.Statement, error) {
	tok, ok := p.c.peek()
	if !ok {
		return plan.Statement{}, apperrors.SyntaxErrf("empty input")
	}
	if tok.Kind != lex.Command {
		return plan.Statement{}, apperrors.SyntaxErrf("expected a command, got %q", tok.Lexeme)
	}

	p.c.advance()
	switch tok.Lexeme {
	case "create":
		return p.createTail()
	case "drop":
		name, err := p.ident()
		if err != nil {
			return plan.Statement{}, err
		}
		return plan.NewDropTable(name), nil
	case "insert":
		return p.insertInto()
	case "print":
		name, err := p.ident()
		if err != nil {
			return plan.Statement{}, err
		}
		return plan.NewPrintTable(name), nil
	case "select":
		sel, err := p.selectTail()
		if err != nil {
			return plan.Statement{}, err
		}
		return plan.NewSelect(sel), nil
	case "load", "store":
		return plan.Statement{}, apperrors.SyntaxErrf("%q is not implemented (persistence is out of scope)", tok.Lexeme)
	default:
		return plan.Statement{}, apperrors.SyntaxErrf("unsupported command %q", tok.Lexeme)
	}
}

// createTail parses everything after 'create'.
//
//	create_tail := 'table' ident ( '(' col_defs ')'          -> CreateTable
//	                             | 'as' 'select' select_tail -> CreateTableAs )
func (p *Parser) createTail() (plan.Statement, error) {
	if err := p.c.expectLexeme(lex.Keyword, "table"); err != nil {
		return plan.Statement{}, err
	}
	name, err := p.ident()
	if err != nil {
		return plan.Statement{}, err
	}

	tok, ok := p.c.peek()
	if !ok {
		return plan.Statement{}, apperrors.SyntaxErrf("expected '(' or 'as' after table name")
	}

	switch {
	case tok.Kind == lex.Separator && tok.Lexeme == "(":
		p.c.advance()
		columnNames, columnTypes, err := p.colDefs()
		if err != nil {
			return plan.Statement{}, err
		}
		if err := p.c.expectLexeme(lex.Separator, ")"); err != nil {
			return plan.Statement{}, err
		}
		if err := rejectDuplicateNames(columnNames); err != nil {
			return plan.Statement{}, err
		}
		return plan.NewCreateTable(name, columnNames, columnTypes), nil
	case tok.Kind == lex.Keyword && tok.Lexeme == "as":
		p.c.advance()
		if err := p.c.expectLexeme(lex.Command, "select"); err != nil {
			return plan.Statement{}, err
		}
		sel, err := p.selectTail()
		if err != nil {
			return plan.Statement{}, err
		}
		return plan.NewCreateTableAs(name, sel), nil
	default:
		return plan.Statement{}, apperrors.SyntaxErrf("expected '(' or 'as' after table name, got %q", tok.Lexeme)
	}
}

// colDefs parses a comma-separated list of "ident TYPE" pairs.
//
//	col_defs := ident TYPE (',' ident TYPE)*
func (p *Parser) colDefs() ([]string, []string, error) {
	var names, kinds []string
	for {
		name, err := p.ident()
		if err != nil {
			return nil, nil, err
		}
		kindTok, err := p.c.expect(lex.Type)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		kinds = append(kinds, kindTok.Lexeme)

		if !p.c.matchLexeme(lex.Separator, ",") {
			break
		}
		p.c.advance()
	}
	return names, kinds, nil
}

// insertInto parses everything after 'insert'.
//
//	'into' ident 'values' value_list
func (p *Parser) insertInto() (plan.Statement, error) {
	if err := p.c.expectLexeme(lex.Keyword, "into"); err != nil {
		return plan.Statement{}, err
	}
	name, err := p.ident()
	if err != nil {
		return plan.Statement{}, err
	}
	if err := p.c.expectLexeme(lex.Keyword, "values"); err != nil {
		return plan.Statement{}, err
	}
	values, err := p.valueList()
	if err != nil {
		return plan.Statement{}, err
	}
	return plan.NewInsertInto(name, values), nil
}

// valueList parses a comma-separated list of literal lexemes.
//
//	value_list := literal (',' literal)*
func (p *Parser) valueList() ([]string, error) {
	var values []string
	for {
		tok, err := p.c.expect(lex.Literal)
		if err != nil {
			return nil, err
		}
		values = append(values, tok.Lexeme)

		if !p.c.matchLexeme(lex.Separator, ",") {
			break
		}
		p.c.advance()
	}
	return values, nil
}

// selectTail parses everything after 'select'.
//
//	select_tail := ('*' | ident (',' ident)*) 'from' ident (',' ident)* [ 'where' expr ]
func (p *Parser) selectTail() (plan.Select, error) {
	var columns []string

	if p.c.matchLexeme(lex.Operator, "*") {
		p.c.advance()
	} else {
		names, err := p.identList()
		if err != nil {
			return plan.Select{}, err
		}
		columns = names
	}

	if err := p.c.expectLexeme(lex.Keyword, "from"); err != nil {
		return plan.Select{}, err
	}
	tables, err := p.identList()
	if err != nil {
		return plan.Select{}, err
	}

	var condition []lex.Token
	if p.c.matchLexeme(lex.Keyword, "where") {
		p.c.advance()
		condition, err = p.whereExpr()
		if err != nil {
			return plan.Select{}, err
		}
	}

	return plan.Select{Columns: columns, Tables: tables, Condition: condition}, nil
}

// identList parses a comma-separated list of identifiers.
func (p *Parser) identList() ([]string, error) {
	var names []string
	for {
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		if !p.c.matchLexeme(lex.Separator, ",") {
			break
		}
		p.c.advance()
	}
	return names, nil
}

// whereExpr consumes every remaining token as the infix WHERE expression
// (no bracket grouping is supported) and shunting-yards it to postfix.
//
//	expr := infix stream of LITERALs and OPERATORs (no brackets)
func (p *Parser) whereExpr() ([]lex.Token, error) {
	var tokens []lex.Token
	for {
		tok, ok := p.c.advance()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, apperrors.ValueErrf(-1, "empty WHERE expression")
	}
	return toPostfix(tokens)
}

// ident parses and validates a table/column identifier: it must be a
// LITERAL-kind token (any reserved word is already classified as
// COMMAND/KEYWORD/TYPE and so will fail the expect below) matching
// ^[A-Za-z][A-Za-z0-9_]*$.
func (p *Parser) ident() (string, error) {
	tok, err := p.c.expect(lex.Literal)
	if err != nil {
		return "", apperrors.SyntaxErrf("expected identifier")
	}
	if !identifierPattern.MatchString(tok.Lexeme) {
		return "", apperrors.SyntaxErrf("malformed identifier %q", tok.Lexeme)
	}
	return tok.Lexeme, nil
}

func rejectDuplicateNames(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return apperrors.NameErrf("duplicate column name %q", n)
		}
		seen[n] = true
	}
	return nil
}
