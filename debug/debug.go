package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Lines  bool
	Indent bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("PYTOK_DEBUG_TOKENS")
	d.Lines = boolEnv("PYTOK_DEBUG_LINES")
	d.Indent = boolEnv("PYTOK_DEBUG_INDENT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Lines() bool {
	return d.Lines
}
func Indent() bool {
	return d.Indent
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
