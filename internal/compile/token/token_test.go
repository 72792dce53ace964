package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		symbol string
		op     Operator
		prec   Precedence
	}{
		{"+", Plus, PrecedenceAddition},
		{"*", Asterisk, PrecedenceMultiplication},
		{"/", Slash, PrecedenceDivision},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			op, ok := LookupOperator(tt.symbol)
			assert.True(t, ok)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, tt.symbol, op.String())
			assert.Equal(t, tt.prec, op.Precedence())
		})
	}

	op, ok := LookupOperator("-")
	assert.False(t, ok)
	assert.Equal(t, NoOperator, op)
	assert.Equal(t, PrecedenceNone, op.Precedence())
}

func TestPrecedenceOrder(t *testing.T) {
	assert.Less(t, PrecedenceNone, Plus.Precedence())
	assert.Less(t, Plus.Precedence(), Asterisk.Precedence())
	assert.Less(t, Asterisk.Precedence(), Slash.Precedence())
	assert.Equal(t, Precedence(-1), PrecedenceNone)
	assert.Equal(t, Precedence(0), PrecedenceAddition)
}

func TestLookupType(t *testing.T) {
	for _, typ := range []Type{Number, BinaryOp, EOF} {
		got, ok := LookupType(typ.String())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}

	_, ok := LookupType("<invalid>")
	assert.False(t, ok)
	_, ok = LookupType("IDENTIFIER")
	assert.False(t, ok)

	assert.Equal(t, "<invalid>", Type(42).String())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "NUMBER 12", NewNumber("12").String())
	assert.Equal(t, "BINARY_OP +", NewBinaryOp("+").String())
	assert.Equal(t, "EOF", NewEOF().String())
}
