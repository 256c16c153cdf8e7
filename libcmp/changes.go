package libcmp

import (
	"strings"

	"github.com/signadot/pytok/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (o Op) String() string {
	return map[Op]string{
		OpEqual:  "equal",
		OpDelete: "delete",
		OpInsert: "insert",
	}[o]
}

// Change is a run of tokens equal in, deleted from, or inserted into the
// sequence.  Tokens holds the display form of the run.  ALine and BLine are
// the source lines the run starts on in each input, 0 when the run has no
// tokens on that side.
type Change struct {
	Op     Op
	Tokens []string
	ALine  int
	BLine  int
}

// Changes computes token-level change runs between a and b.  Each token's
// display form becomes one line of text and diffmatchpatch runs over the
// lines-to-chars encoding, so the diff granularity is whole tokens.
func Changes(a, b []token.Token) []Change {
	dmp := diffpatch.New()
	c1, c2, arr := dmp.DiffLinesToChars(render(a), render(b))
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, arr)

	var res []Change
	ai, bi := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		toks := splitTokens(diff.Text)
		if len(toks) == 0 {
			continue
		}
		ch := Change{Tokens: toks}
		switch diff.Type {
		case diffpatch.DiffEqual:
			ch.Op = OpEqual
			ch.ALine = lineAt(a, ai)
			ch.BLine = lineAt(b, bi)
			ai += len(toks)
			bi += len(toks)
		case diffpatch.DiffDelete:
			ch.Op = OpDelete
			ch.ALine = lineAt(a, ai)
			ai += len(toks)
		case diffpatch.DiffInsert:
			ch.Op = OpInsert
			ch.BLine = lineAt(b, bi)
			bi += len(toks)
		}
		res = append(res, ch)
	}
	return res
}

func render(toks []token.Token) string {
	var b strings.Builder
	for i := range toks {
		b.WriteString(toks[i].String())
		b.WriteByte('\n')
	}
	return b.String()
}

func splitTokens(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func lineAt(toks []token.Token, i int) int {
	if i >= len(toks) {
		return 0
	}
	return toks[i].Line
}
