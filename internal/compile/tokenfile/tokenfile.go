// Package tokenfile loads token sequences from YAML or JSON listings.
//
// A listing is a sequence of entries, each already a token:
//
//	- {type: NUMBER, text: "1"}
//	- {type: BINARY_OP, text: "+"}
//	- {type: NUMBER, text: "2"}
//	- {type: EOF}
//
// It must be a single YAML document. NUMBER text must be an unsigned
// decimal literal; EOF entries carry no text. Nothing here checks the
// grammar; that is left to the parser.
package tokenfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"

	"codeberg.org/rileyq/climb/internal/compile/token"
)

var (
	ErrInvalidEntry      = errors.New("invalid token entry")
	ErrMultipleDocuments = errors.New("listing holds more than one document")
)

var decimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

type entry struct {
	Type string `yaml:"type"`
	Text string `yaml:"text"`
}

func Decode(r io.Reader) ([]token.Token, error) {
	var entries []entry
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	err := dec.Decode(&entries)
	if errors.Is(err, io.EOF) {
		return []token.Token{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tokenfile: %w", err)
	}

	var extra []entry
	err = dec.Decode(&extra)
	if err == nil {
		return nil, fmt.Errorf("tokenfile: %w", ErrMultipleDocuments)
	}
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("tokenfile: %w", err)
	}

	toks := make([]token.Token, 0, len(entries))
	for i, e := range entries {
		t, err := e.token(token.Pos(i + 1))
		if err != nil {
			return nil, fmt.Errorf("tokenfile: entry %d: %w", i+1, err)
		}
		toks = append(toks, t)
	}
	return toks, nil
}

func ReadFile(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func (e entry) token(pos token.Pos) (token.Token, error) {
	typ, ok := token.LookupType(e.Type)
	if !ok {
		return token.Token{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEntry, e.Type)
	}

	switch typ {
	case token.Number:
		if !decimal.MatchString(e.Text) {
			return token.Token{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidEntry, e.Text)
		}
	case token.EOF:
		if e.Text != "" {
			return token.Token{}, fmt.Errorf("%w: %s carries text %q", ErrInvalidEntry, typ, e.Text)
		}
	}

	return token.Token{Type: typ, Pos: pos, Text: e.Text}, nil
}
