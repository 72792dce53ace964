package printer

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/token"
)

// ((1 / 2) * 3) + 4
var example = &ast.BinaryExpr{
	Left: &ast.BinaryExpr{
		Left: &ast.BinaryExpr{
			Left:  &ast.Literal{Value: "1"},
			Op:    token.Slash,
			Right: &ast.Literal{Value: "2"},
		},
		Op:    token.Asterisk,
		Right: &ast.Literal{Value: "3"},
	},
	Op:    token.Plus,
	Right: &ast.Literal{Value: "4"},
}

func TestFprint(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"literal", &ast.Literal{Value: "7"}, "7"},
		{"flat", &ast.BinaryExpr{Left: &ast.Literal{Value: "1"}, Op: token.Plus, Right: &ast.Literal{Value: "2"}}, "1 + 2"},
		{"nested", example, "((1 / 2) * 3) + 4"},
		{
			"right nested",
			&ast.BinaryExpr{
				Left: &ast.Literal{Value: "1"},
				Op:   token.Plus,
				Right: &ast.BinaryExpr{
					Left:  &ast.Literal{Value: "2"},
					Op:    token.Asterisk,
					Right: &ast.Literal{Value: "3"},
				},
			},
			"1 + (2 * 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			require.NoError(t, Fprint(&b, tt.node))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestFtree(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Ftree(&b, example))

	want := `BinaryExpr +
  BinaryExpr *
    BinaryExpr /
      Literal 1
      Literal 2
    Literal 3
  Literal 4
`
	assert.Equal(t, want, b.String())
}

const exampleJSON = `{
  "kind": "BinaryOperation",
  "operator": "+",
  "left": {
    "kind": "BinaryOperation",
    "operator": "*",
    "left": {
      "kind": "BinaryOperation",
      "operator": "/",
      "left": {
        "kind": "Literal",
        "value": "1"
      },
      "right": {
        "kind": "Literal",
        "value": "2"
      }
    },
    "right": {
      "kind": "Literal",
      "value": "3"
    }
  },
  "right": {
    "kind": "Literal",
    "value": "4"
  }
}
`

func TestFprintJSON(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FprintJSON(&b, example))
	assert.Equal(t, exampleJSON, b.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.String()), &got))
	assert.Equal(t, "BinaryOperation", got["kind"])
}

func TestFprintJSONLiteral(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FprintJSON(&b, &ast.Literal{Value: "7"}))
	assert.Equal(t, "{\n  \"kind\": \"Literal\",\n  \"value\": \"7\"\n}\n", b.String())
}

func TestDeterministic(t *testing.T) {
	var a, b strings.Builder
	require.NoError(t, FprintJSON(&a, example))
	require.NoError(t, FprintJSON(&b, example))
	assert.Equal(t, a.String(), b.String())
}

type badNode struct{ ast.Expr }

func TestUnimplemented(t *testing.T) {
	var b strings.Builder
	assert.ErrorContains(t, Fprint(&b, badNode{}), "unimplemented")
	assert.ErrorContains(t, Ftree(&b, badNode{}), "unimplemented")
	assert.ErrorContains(t, FprintJSON(&b, badNode{}), "unimplemented")
}
