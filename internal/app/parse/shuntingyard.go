package parse

import (
	"centauri/internal/app/apperrors"
	"centauri/internal/app/lex"
)

// precedence is the operator precedence table: higher binds tighter. All
// operators are left-associative.
var precedence = map[string]int{
	"+": 2, "-": 2, "*": 2, "/": 2,
	"<": 1, "<=": 1, ">": 1, ">=": 1, "=": 1, "!=": 1,
	"and": 0, "or": 0,
}

// toPostfix runs the shunting-yard algorithm over an infix stream of
// LITERAL and OPERATOR tokens (no brackets supported — WHERE expressions
// do not allow grouping). For each token: LITERAL pushes straight to
// output; OPERATOR pops and emits every stacked operator whose precedence
// is >= the incoming operator's precedence, then pushes the incoming
// operator. At the end the operator stack drains to output.
func toPostfix(tokens []lex.Token) ([]lex.Token, error) {
	if len(tokens) == 0 {
		return nil, apperrors.ValueErrf(-1, "empty WHERE expression")
	}

	output := make([]lex.Token, 0, len(tokens))
	var opStack []lex.Token

	for _, tok := range tokens {
		switch tok.Kind {
		case lex.Literal:
			output = append(output, tok)
		case lex.Operator:
			prec, ok := precedence[tok.Lexeme]
			if !ok {
				return nil, apperrors.SyntaxErrf("unknown operator %q in WHERE expression", tok.Lexeme)
			}
			for len(opStack) > 0 && precedence[opStack[len(opStack)-1].Lexeme] >= prec {
				output = append(output, opStack[len(opStack)-1])
				opStack = opStack[:len(opStack)-1]
			}
			opStack = append(opStack, tok)
		default:
			return nil, apperrors.SyntaxErrf("unexpected token %q in WHERE expression", tok.Lexeme)
		}
	}

	for len(opStack) > 0 {
		output = append(output, opStack[len(opStack)-1])
		opStack = opStack[:len(opStack)-1]
	}

	return output, nil
}
