package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"codeberg.org/rileyq/climb/internal/compile/ast"
)

// Fprint writes node in infix form. Operands that are themselves binary
// expressions are parenthesized, so the grouping chosen by the parser is
// visible: ((1 / 2) * 3) + 4.
func Fprint(w io.Writer, node ast.Node) error {
	return fprint(w, node, false)
}

func fprint(w io.Writer, node ast.Node, nested bool) error {
	var err error
	switch node := node.(type) {
	case *ast.BinaryExpr:
		if nested {
			_, err = io.WriteString(w, "(")
			if err != nil {
				return err
			}
		}
		err = fprint(w, node.Left, true)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " "+node.Op.String()+" ")
		if err != nil {
			return err
		}
		err = fprint(w, node.Right, true)
		if err != nil {
			return err
		}
		if nested {
			_, err = io.WriteString(w, ")")
			if err != nil {
				return err
			}
		}
		return nil
	case *ast.Literal:
		_, err = io.WriteString(w, node.Value)
		return err
	default:
		return fmt.Errorf("printer: Fprint unimplemented for %T", node)
	}
}

// Ftree writes one line per node, children indented below their parent.
func Ftree(w io.Writer, node ast.Node) error {
	return ftree(w, node, 0)
}

func ftree(w io.Writer, node ast.Node, depth int) error {
	const pad = "  "

	_, err := io.WriteString(w, strings.Repeat(pad, depth))
	if err != nil {
		return err
	}

	switch node := node.(type) {
	case *ast.BinaryExpr:
		_, err = io.WriteString(w, "BinaryExpr "+node.Op.String()+"\n")
		if err != nil {
			return err
		}
		err = ftree(w, node.Left, depth+1)
		if err != nil {
			return err
		}
		err = ftree(w, node.Right, depth+1)
		if err != nil {
			return err
		}
		return nil
	case *ast.Literal:
		_, err = io.WriteString(w, "Literal "+node.Value+"\n")
		return err
	default:
		return fmt.Errorf("printer: Ftree unimplemented for %T", node)
	}
}

type jsonNode struct {
	Kind     string    `json:"kind"`
	Value    string    `json:"value,omitempty"`
	Operator string    `json:"operator,omitempty"`
	Left     *jsonNode `json:"left,omitempty"`
	Right    *jsonNode `json:"right,omitempty"`
}

// FprintJSON writes node as an indented JSON document.
func FprintJSON(w io.Writer, node ast.Node) error {
	n, err := toJSON(node)
	if err != nil {
		return err
	}
	// The indenting encoder mangles recursive types; indent after marshaling.
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	err = json.Indent(&buf, b, "", "  ")
	if err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func toJSON(node ast.Node) (*jsonNode, error) {
	switch node := node.(type) {
	case *ast.BinaryExpr:
		left, err := toJSON(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := toJSON(node.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{
			Kind:     "BinaryOperation",
			Operator: node.Op.String(),
			Left:     left,
			Right:    right,
		}, nil
	case *ast.Literal:
		return &jsonNode{Kind: "Literal", Value: node.Value}, nil
	default:
		return nil, fmt.Errorf("printer: FprintJSON unimplemented for %T", node)
	}
}
