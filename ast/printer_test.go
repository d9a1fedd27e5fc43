package ast

import (
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_NestedBinary(t *testing.T) {
	// -123 * (45.67)
	expression := &Binary{
		Left: &Unary{
			Operator: lexer.NewToken(lexer.MINUS, "-", nil, 1),
			Right:    &Literal{Value: 123.0},
		},
		Operator: lexer.NewToken(lexer.STAR, "*", nil, 1),
		Right:    &Grouping{Expression: &Literal{Value: 45.67}},
	}

	assert.Equal(t, "(* (- 123) (group 45.67))", PrintExpr(expression))
}

func TestPrinter_NilLiteral(t *testing.T) {
	assert.Equal(t, "nil", PrintExpr(&Literal{Value: nil}))
}
