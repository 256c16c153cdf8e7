package token

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// matchFloat recognizes decimal literals with a mandatory decimal point:
// digits-dot-digits, digits-dot, or dot-digits, with an optional exponent.
// Digit runs may contain underscore separators.  It must run before
// matchInt, which would otherwise claim the leading digit run.
func matchFloat(d string) (string, string, bool) {
	intLen := digitRun(d)
	i := intLen
	if i >= len(d) || d[i] != '.' {
		return "", d, false
	}
	i++
	fracLen := digitRun(d[i:])
	if intLen == 0 && fracLen == 0 {
		return "", d, false
	}
	i += fracLen
	i += expRun(d[i:])
	return d[:i], d[i:], true
}

// matchInt recognizes decimal digit runs or prefixed hex, binary and octal
// runs, all with optional underscore separators.  Applied only after
// matchFloat has declined.
func matchInt(d string) (string, string, bool) {
	if len(d) == 0 || !asciiDigit(d[0]) {
		return "", d, false
	}
	if len(d) >= 2 && d[0] == '0' {
		var digit func(byte) bool
		switch d[1] {
		case 'x', 'X':
			digit = hexDigit
		case 'b', 'B':
			digit = binDigit
		case 'o', 'O':
			digit = octDigit
		}
		if digit != nil {
			// the prefix is claimed even with no digits after it, so a
			// bare 0x surfaces ErrNumber from NewInteger instead of
			// silently lexing as 0 followed by a word
			i := 2
			for i < len(d) && (digit(d[i]) || d[i] == '_') {
				i++
			}
			return d[:i], d[i:], true
		}
	}
	i := digitRun(d)
	return d[:i], d[i:], true
}

// NewInteger parses lit into an integer token of exact value.  Base
// prefixes (0x, 0b, 0o, any case) are honored and underscores stripped.  A
// bare leading-zero decimal that fails prefixed-base parsing is retried as
// base 8; a second failure propagates ErrNumber.
func NewInteger(lit string, line int) (*Token, error) {
	s := strings.ReplaceAll(lit, "_", "")
	z, ok := new(big.Int).SetString(s, 0)
	if !ok && s[0] == '0' {
		// legacy pre-0o octal form, e.g. 0755
		z, ok = new(big.Int).SetString(s, 8)
	}
	if !ok {
		return nil, fmt.Errorf("%w: integer %q", ErrNumber, lit)
	}
	return &Token{Type: TInteger, Line: line, Int: z}, nil
}

func NewFloat(lit string, line int) (*Token, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: float %q", ErrNumber, lit)
	}
	return &Token{Type: TFloat, Line: line, Float: f}, nil
}

// digitRun scans a run of digits with optional underscore separators.  The
// run must begin with a digit; a leading underscore belongs to a word.
func digitRun(d string) int {
	if len(d) == 0 || !asciiDigit(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) {
		if !asciiDigit(d[i]) && d[i] != '_' {
			return i
		}
		i++
	}
	return i
}

func expRun(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i >= len(d) || !asciiDigit(d[i]) {
		return 0
	}
	return i + digitRun(d[i:])
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) bool {
	return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func binDigit(c byte) bool {
	return c == '0' || c == '1'
}

func octDigit(c byte) bool {
	return c >= '0' && c <= '7'
}
