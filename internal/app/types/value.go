// Package types defines the scalar value domain of the engine: the tagged
// union every column, literal, and expression result is made of.
package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind tags the variant a Value currently holds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	// KindBool is produced only by the postfix expression evaluator; no
	// column may declare it and no literal parses to it.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar. Only the field matching Kind is meaningful.
//
// IsNoValue is a placeholder NULL-ish flag; no operation in this engine
// sets or inspects it, but it is kept on the struct so a future NULL story
// has somewhere to live.
type Value struct {
	kind      Kind
	i         int64
	f         float64
	nan       bool
	s         string
	b         bool
	IsNoValue bool
}

func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewFloatNaN builds the NaN-tagged float result of an invalid float
// operation (e.g. float division by zero).
func NewFloatNaN() Value { return Value{kind: KindFloat, nan: true} }

func NewString(s string) Value { return Value{kind: KindString, s: s} }

func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNaN() bool { return v.kind == KindFloat && v.nan }

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// NormalizedKey returns the string used to key maps on a String value: the
// body normalized to NFKC so visually identical strings collide the same
// way regardless of source encoding. For non-string kinds it falls back to
// the canonical printed form.
func (v Value) NormalizedKey() string {
	if v.kind == KindString {
		return norm.NFKC.String(v.s)
	}
	return v.String()
}

// String renders the canonical printed form used by PRINT/SELECT output.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if v.nan {
			return "NaN"
		}
		return formatFloat(v.f)
	case KindString:
		return "'" + v.s + "'"
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.kind)
	}
}

// formatFloat always keeps a fractional part, normalizing ".3" / "2." style
// inputs to "0.3" / "2.0" on the way out.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var (
	intPattern    = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern  = regexp.MustCompile(`^-?[0-9]*\.[0-9]*$`)
	stringPattern = regexp.MustCompile(`^'[^']*'$`)
)

// ParseInt parses s as an Int literal lexeme (-?\d+). Ok is false if s does
// not match the int grammar.
func ParseInt(s string) (Value, bool) {
	if !intPattern.MatchString(s) {
		return Value{}, false
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return NewInt(i), true
}

// ParseFloat parses s as a Float literal lexeme (-?\d*\.\d*, at least one
// digit on either side of the dot).
func ParseFloat(s string) (Value, bool) {
	if !floatPattern.MatchString(s) {
		return Value{}, false
	}
	body := strings.TrimPrefix(s, "-")
	parts := strings.SplitN(body, ".", 2)
	if len(parts[0]) == 0 && len(parts[1]) == 0 {
		return Value{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, false
	}
	return NewFloat(f), true
}

// ParseString parses s as a single-quoted String literal lexeme, stripping
// the enclosing quotes.
func ParseString(s string) (Value, bool) {
	if !stringPattern.MatchString(s) {
		return Value{}, false
	}
	return NewString(s[1 : len(s)-1]), true
}

// ParseLiteral tries Float, then Int, then String, in that order. A lexeme
// with a dot ("2.", ".3") can only match the float pattern, and one without
// a dot ("2") can only match the int pattern.
func ParseLiteral(lexeme string) (Value, bool) {
	if v, ok := ParseFloat(lexeme); ok {
		return v, true
	}
	if v, ok := ParseInt(lexeme); ok {
		return v, true
	}
	if v, ok := ParseString(lexeme); ok {
		return v, true
	}
	return Value{}, false
}
