package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pytok/token"
)

// Encode pulls tokens from src until exhaustion and writes the display
// form to w.  Lexical errors from src propagate unchanged.
func Encode(src *token.TokenSource, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{Color: colorNone}
	for _, opt := range opts {
		opt(es)
	}
	var (
		cur     []string
		curLine int
	)
	flush := func() error {
		if len(cur) == 0 {
			return nil
		}
		if err := writeLine(w, es, curLine, strings.Join(cur, " ")); err != nil {
			return err
		}
		cur = cur[:0]
		return nil
	}
	for {
		tok, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch tok.Type {
		case token.TIndent, token.TOutdent, token.TEndOfLine:
			if err := flush(); err != nil {
				return err
			}
			if err := writeLine(w, es, tok.Line, es.Color(tok.Type, tok.String())); err != nil {
				return err
			}
		default:
			if len(cur) == 0 {
				curLine = tok.Line
			}
			cur = append(cur, es.Color(tok.Type, tok.String()))
		}
	}
	return flush()
}

func writeLine(w io.Writer, es *EncState, line int, s string) error {
	var err error
	if es.lines {
		_, err = fmt.Fprintf(w, "%4d: %s\n", line, s)
	} else {
		_, err = fmt.Fprintf(w, "%s\n", s)
	}
	return err
}

func colorNone(_ token.TokenType, s string) string { return s }
