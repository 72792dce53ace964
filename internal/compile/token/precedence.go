package token

type Precedence int

// Higher binds tighter. Multiplication and division are deliberately not
// equal: division binds tighter than multiplication.
const (
	PrecedenceNone Precedence = iota - 1
	PrecedenceAddition
	PrecedenceMultiplication
	PrecedenceDivision
)

func (op Operator) Precedence() Precedence {
	switch op {
	case Plus:
		return PrecedenceAddition
	case Asterisk:
		return PrecedenceMultiplication
	case Slash:
		return PrecedenceDivision
	default:
		return PrecedenceNone
	}
}
