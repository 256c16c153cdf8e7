package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pytok/encode"
	"github.com/signadot/pytok/token"

	"github.com/scott-cotton/cli"
)

func pytokMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file, got %v", cli.ErrUsage, args)
	}
	r, closeIn, err := inputReader(cc, args)
	if err != nil {
		return err
	}
	defer closeIn()
	src := token.NewTokenSource(r)
	return encode.Encode(src, cc.Out, cfg.encOpts(cc.Out)...)
}

// inputReader opens the path argument, or falls back to the context input
// when no path (or -) is given.  The returned closer owns any opened file.
func inputReader(cc *cli.Context, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return cc.In, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", args[0], err)
	}
	return f, f.Close, nil
}
