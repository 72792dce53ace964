package main

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: generate_tokens <input.json> <output.go|->")
		os.Exit(2)
	}

	inputPath := os.Args[1]
	outputPath := os.Args[2]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		panic(err)
	}

	var input Input
	err = json.Unmarshal(data, &input)
	if err != nil {
		panic(err)
	}

	output, err := fileToString(fileFromInput(&input))
	if err != nil {
		panic(err)
	}

	if outputPath == "-" {
		fmt.Print(output)
	} else {
		err = os.WriteFile(outputPath, []byte(output), 0o666)
		if err != nil {
			panic(err)
		}
	}
}

func fileFromInput(input *Input) *ast.File {
	file := new(ast.File)
	file.Name = ast.NewIdent("token")

	kinds := slices.Sorted(maps.Keys(input.Kinds))
	file.Decls = append(file.Decls, enum{
		Type:       "Type",
		Recv:       "t",
		Zero:       "Invalid",
		ZeroString: "<invalid>",
		Table:      "names",
		Names:      kinds,
		Strings:    valuesOf(input.Kinds, kinds),
	}.Decls()...)

	operators := slices.Sorted(maps.Keys(input.Operators))
	symbols := valuesOf(input.Operators, operators)
	file.Decls = append(file.Decls, enum{
		Type:       "Operator",
		Recv:       "op",
		Zero:       "NoOperator",
		ZeroString: "<none>",
		Table:      "symbols",
		Names:      operators,
		Strings:    symbols,
	}.Decls()...)

	lookup := make([]ast.Expr, 0, len(operators))
	for i, name := range operators {
		lookup = append(lookup, &ast.KeyValueExpr{
			Key:   &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(symbols[i])},
			Value: ast.NewIdent(exportName(name)),
		})
	}

	file.Decls = append(file.Decls, &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent("Operators")},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.MapType{Key: ast.NewIdent("string"), Value: ast.NewIdent("Operator")},
				Elts: lookup,
			}},
		}},
	})

	return file
}

func valuesOf(m map[string]string, keys []string) []string {
	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, m[key])
	}
	return values
}

// enum describes an iota-numbered integer type with a String method backed by
// a lookup table. The zero value is always the invalid member.
type enum struct {
	Type       string
	Recv       string
	Zero       string
	ZeroString string
	Table      string
	Names      []string
	Strings    []string
}

func (e enum) Decls() []ast.Decl {
	var decls []ast.Decl

	decls = append(decls, &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{
			&ast.TypeSpec{
				Name: ast.NewIdent(e.Type),
				Type: ast.NewIdent("int"),
			},
		},
	})

	specs := make([]ast.Spec, 0, len(e.Names)+1)
	values := make([]ast.Expr, 0, len(e.Names)+1)

	specs = append(specs, &ast.ValueSpec{
		Names:  []*ast.Ident{ast.NewIdent(e.Zero)},
		Type:   ast.NewIdent(e.Type),
		Values: []ast.Expr{ast.NewIdent("iota")},
	})

	values = append(values, &ast.BasicLit{
		Kind:  token.STRING,
		Value: strconv.Quote(e.ZeroString),
	})

	for i, name := range e.Names {
		specs = append(specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(exportName(name))},
		})
		values = append(values, &ast.BasicLit{
			Kind:  token.STRING,
			Value: strconv.Quote(e.Strings[i]),
		})
	}

	decls = append(decls, &ast.GenDecl{
		Tok:    token.CONST,
		Lparen: 1,
		Specs:  specs,
		Rparen: 1,
	})

	decls = append(decls, &ast.FuncDecl{
		Recv: &ast.FieldList{
			List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent(e.Recv)},
				Type:  ast.NewIdent(e.Type),
			}},
		},
		Name: ast.NewIdent("String"),
		Type: &ast.FuncType{
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent("string")}}},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.IfStmt{
					Cond: &ast.BinaryExpr{
						X: &ast.BinaryExpr{
							X:  ast.NewIdent(e.Recv),
							Op: token.LSS,
							Y:  &ast.BasicLit{Kind: token.INT, Value: "0"},
						},
						Op: token.LOR,
						Y: &ast.BinaryExpr{
							X:  ast.NewIdent(e.Recv),
							Op: token.GTR,
							Y:  specs[len(specs)-1].(*ast.ValueSpec).Names[0],
						},
					},
					Body: &ast.BlockStmt{
						List: []ast.Stmt{
							&ast.AssignStmt{
								Lhs: []ast.Expr{ast.NewIdent(e.Recv)},
								Tok: token.ASSIGN,
								Rhs: []ast.Expr{ast.NewIdent(e.Zero)},
							},
						},
					},
				},
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.IndexExpr{
							X:     ast.NewIdent(e.Table),
							Index: ast.NewIdent(e.Recv),
						},
					},
				},
			},
		},
	})

	decls = append(decls, &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(e.Table)},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: &ast.ArrayType{Elt: ast.NewIdent("string")},
				Elts: values,
			}},
		}},
	})

	return decls
}

func exportName(name string) string {
	return strings.ToTitle(name[:1]) + name[1:]
}

func fileToString(f *ast.File) (string, error) {
	var b strings.Builder
	b.WriteString("// Code generated by generate_tokens.go\n\n")
	err := format.Node(&b, token.NewFileSet(), f)
	return b.String(), err
}

type Input struct {
	Kinds     map[string]string `json:"kinds"`
	Operators map[string]string `json:"operators"`
}
