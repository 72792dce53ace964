package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"codeberg.org/rileyq/climb/internal/compile/ast"
	"codeberg.org/rileyq/climb/internal/compile/ast/printer"
	"codeberg.org/rileyq/climb/internal/compile/parser"
	"codeberg.org/rileyq/climb/internal/compile/token"
	"codeberg.org/rileyq/climb/internal/compile/tokenfile"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "climb"
)

// 1 / 2 * 3 + 4
var example = []token.Token{
	token.NewNumber("1"),
	token.NewBinaryOp("/"),
	token.NewNumber("2"),
	token.NewBinaryOp("*"),
	token.NewNumber("3"),
	token.NewBinaryOp("+"),
	token.NewNumber("4"),
	token.NewEOF(),
}

var printers = map[string]func(io.Writer, ast.Node) error{
	"infix": printer.Fprint,
	"tree":  printer.Ftree,
	"json":  printer.FprintJSON,
}

func main() {
	statusCode := _main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(COMMAND_NAME, flag.ContinueOnError)
	flags.SetOutput(errW)
	flags.Usage = func() {
		fmt.Fprintf(errW, "usage: %s [-format infix|tree|json] [-v] [tokens.yaml | -]\n", COMMAND_NAME)
		flags.PrintDefaults()
	}

	format := flags.String("format", "infix", "output format: infix, tree or json")
	verbose := flags.Bool("v", false, "trace the parse on stderr")

	if err := flags.Parse(args[1:]); err != nil {
		return ERROR_STATUS_CODE
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = errW
		w.NoColor = true
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	})).Level(zerolog.InfoLevel)
	if *verbose {
		logger = logger.Level(zerolog.TraceLevel)
	}

	fprint, ok := printers[*format]
	if !ok {
		logger.Error().Str("format", *format).Msg("unknown output format")
		return ERROR_STATUS_CODE
	}

	var toks []token.Token
	var err error

	switch flags.NArg() {
	case 0:
		toks = example
	case 1:
		if path := flags.Arg(0); path == "-" {
			toks, err = tokenfile.Decode(inR)
		} else {
			toks, err = tokenfile.ReadFile(path)
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to load tokens")
			return ERROR_STATUS_CODE
		}
	default:
		flags.Usage()
		return ERROR_STATUS_CODE
	}

	logger.Debug().Int("tokens", len(toks)).Msg("parsing")

	tree, err := parser.Parse(toks, parser.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse")
		return ERROR_STATUS_CODE
	}

	err = fprint(outW, tree)
	if err != nil {
		logger.Error().Err(err).Msg("failed to print")
		return ERROR_STATUS_CODE
	}

	if *format == "infix" {
		fmt.Fprintln(outW)
	}
	return 0
}
