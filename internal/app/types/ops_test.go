package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   string
		lhs  Value
		rhs  Value
		want string
	}{
		{"int add", "+", NewInt(2), NewInt(3), "5"},
		{"int sub", "-", NewInt(5), NewInt(3), "2"},
		{"int mul", "*", NewInt(4), NewInt(3), "12"},
		{"int div", "/", NewInt(7), NewInt(2), "3"},
		{"float add", "+", NewFloat(1.5), NewFloat(2.5), "4.0"},
		{"string concat", "+", NewString("foo"), NewString("bar"), "'foobar'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.lhs, tt.rhs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDivIntByZeroErrors(t *testing.T) {
	_, err := Div(NewInt(1), NewInt(0))
	assert.True(t, errors.Is(err, ErrIntDivByZero))
}

func TestDivFloatByZeroYieldsNaN(t *testing.T) {
	v, err := Div(NewFloat(1), NewFloat(0))
	require.NoError(t, err)
	assert.True(t, v.IsNaN())
}

func TestAddMismatchedKindsErrors(t *testing.T) {
	_, err := Add(NewInt(1), NewString("x"))
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "+", opErr.Op)
}

func TestComparisonsAgainstNaNAreFalseNeverError(t *testing.T) {
	nan := NewFloatNaN()
	other := NewFloat(1.0)

	for _, op := range []string{"<", "<=", ">", ">=", "=", "!="} {
		got, err := Apply(op, nan, other)
		require.NoError(t, err)
		b, ok := got.AsBool()
		require.True(t, ok)
		assert.False(t, b, "operator %q against NaN should be false", op)
	}
}

func TestEqAndNeOnEqualInts(t *testing.T) {
	eq, err := Eq(NewInt(4), NewInt(4))
	require.NoError(t, err)
	b, _ := eq.AsBool()
	assert.True(t, b)

	ne, err := Ne(NewInt(4), NewInt(4))
	require.NoError(t, err)
	b, _ = ne.AsBool()
	assert.False(t, b)
}

func TestAndOrRequireBoolOperands(t *testing.T) {
	_, err := And(NewInt(1), NewBool(true))
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
}

func TestApplyUnknownOperator(t *testing.T) {
	_, err := Apply("%", NewInt(1), NewInt(1))
	assert.Error(t, err)
}
