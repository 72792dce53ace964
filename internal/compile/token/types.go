// Code generated by generate_tokens.go

package token

type Type int

const (
	Invalid Type = iota
	BinaryOp
	EOF
	Number
)

func (t Type) String() string {
	if t < 0 || t > Number {
		t = Invalid
	}
	return names[t]
}

var names = []string{"<invalid>", "BINARY_OP", "EOF", "NUMBER"}

type Operator int

const (
	NoOperator Operator = iota
	Asterisk
	Plus
	Slash
)

func (op Operator) String() string {
	if op < 0 || op > Slash {
		op = NoOperator
	}
	return symbols[op]
}

var symbols = []string{"<none>", "*", "+", "/"}

var Operators = map[string]Operator{"*": Asterisk, "+": Plus, "/": Slash}
