// Package token defines the tokens consumed by the expression parser.
package token

//go:generate go run ../../../tools/generate_tokens.go tokens.json types.go

type Pos int

const NoPos Pos = 0

type Token struct {
	Type Type
	Pos  Pos
	Text string
}

func NewNumber(text string) Token {
	return Token{Type: Number, Text: text}
}

func NewBinaryOp(symbol string) Token {
	return Token{Type: BinaryOp, Text: symbol}
}

func NewEOF() Token {
	return Token{Type: EOF}
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Type.String()
	}
	return t.Type.String() + " " + t.Text
}

// LookupType returns the token type whose display name is name.
func LookupType(name string) (Type, bool) {
	for i, n := range names {
		if Type(i) != Invalid && n == name {
			return Type(i), true
		}
	}
	return Invalid, false
}

func LookupOperator(symbol string) (Operator, bool) {
	op, ok := Operators[symbol]
	return op, ok
}
