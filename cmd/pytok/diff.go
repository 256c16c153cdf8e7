package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/pytok/libcmp"
	"github.com/signadot/pytok/token"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := tokenizeFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error tokenizing %s: %w", args[0], err)
	}
	b, err := tokenizeFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error tokenizing %s: %w", args[1], err)
	}
	if libcmp.Equal(a, b) {
		return nil
	}
	if !cfg.Quiet {
		if err := writeChanges(cc.Out, libcmp.Changes(a, b)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func tokenizeFile(cc *cli.Context, path string) ([]token.Token, error) {
	var (
		r io.Reader = cc.In
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return token.Tokenize(nil, d)
}

func writeChanges(w io.Writer, changes []libcmp.Change) error {
	for _, ch := range changes {
		var err error
		switch ch.Op {
		case libcmp.OpDelete:
			_, err = fmt.Fprintf(w, "- line %d: %s\n", ch.ALine, strings.Join(ch.Tokens, " "))
		case libcmp.OpInsert:
			_, err = fmt.Fprintf(w, "+ line %d: %s\n", ch.BLine, strings.Join(ch.Tokens, " "))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
