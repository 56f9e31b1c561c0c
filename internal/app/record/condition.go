package record

import (
	"centauri/internal/app/apperrors"
	"centauri/internal/app/lex"
	"centauri/internal/app/types"
)

type boundKind int

const (
	boundColumn boundKind = iota
	boundLiteral
	boundOperator
)

// boundElem is one postfix element classified against a specific header:
// a column reference (by index), a parsed literal, or an operator lexeme.
type boundElem struct {
	kind     boundKind
	colIndex int
	literal  types.Value
	op       string
}

// bind classifies each raw postfix token against the header: a known
// column name becomes a column reference, else a literal pattern match
// (Float, then Int, then String) becomes a literal, else it is an
// operator. An empty condition is a value error.
func (h *Header) bind(tokens []lex.Token) ([]boundElem, error) {
	if len(tokens) == 0 {
		return nil, apperrors.ValueErrf(-1, "empty WHERE expression")
	}
	elems := make([]boundElem, len(tokens))
	for i, tok := range tokens {
		if idx, ok := h.IndexOf(tok.Lexeme); ok {
			elems[i] = boundElem{kind: boundColumn, colIndex: idx}
			continue
		}
		if v, ok := types.ParseLiteral(tok.Lexeme); ok {
			elems[i] = boundElem{kind: boundLiteral, literal: v}
			continue
		}
		elems[i] = boundElem{kind: boundOperator, op: tok.Lexeme}
	}
	return elems, nil
}

// evalBound walks the postfix sequence against a value stack: literals and
// resolved column values push, each operator pops two operands (second pop
// is the left operand) and pushes the typed result. Exactly one Bool value
// must remain at the end.
func evalBound(elems []boundElem, row Row) (types.Value, error) {
	stack := make([]types.Value, 0, len(elems))
	pop := func() types.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, e := range elems {
		switch e.kind {
		case boundLiteral:
			stack = append(stack, e.literal)
		case boundColumn:
			stack = append(stack, row.At(e.colIndex))
		case boundOperator:
			if len(stack) < 2 {
				return types.Value{}, apperrors.ValueErrf(-1, "operator %q has too few operands", e.op)
			}
			rhs := pop()
			lhs := pop()
			result, err := types.Apply(e.op, lhs, rhs)
			if err != nil {
				return types.Value{}, apperrors.TypeErrf(-1, "%s", err)
			}
			stack = append(stack, result)
		}
	}

	if len(stack) != 1 {
		return types.Value{}, apperrors.ValueErrf(-1, "expression did not reduce to a single value")
	}
	top := stack[0]
	if top.Kind() != types.KindBool {
		return types.Value{}, apperrors.ValueErrf(-1, "expression result is not boolean")
	}
	return top, nil
}
