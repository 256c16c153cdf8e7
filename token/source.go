package token

import (
	"bufio"
	"io"
	"strings"

	"github.com/signadot/pytok/debug"
)

// TokenSource provides streaming tokenization from an io.Reader.  It owns
// the scanner state for one run: the indentation stack, the bracket-context
// stack, and a line cursor that can outlive the current line when a string
// literal spans physical lines.  The caller owns the reader, including
// closing it; the source reads it strictly forward.
type TokenSource struct {
	r *bufio.Reader

	line    string // unconsumed remainder of the current physical line
	lineNum int    // 1-based number of the current physical line

	// indents is strictly increasing bottom to top; top is the current
	// indentation width in raw leading characters, no tab expansion.
	indents []int

	// contexts holds open brackets; indentation and TEndOfLine logic is
	// applied only while it is empty.
	contexts []byte

	// queue holds tokens produced ahead of delivery, e.g. an outdent run;
	// Next returns one per call.
	queue []Token

	eof bool
	err error
}

// NewTokenSource creates a scanner reading from r.  State is fresh per
// source; two runs share nothing mutable.
func NewTokenSource(r io.Reader) *TokenSource {
	return &TokenSource{
		r:       bufio.NewReader(r),
		indents: []int{0},
	}
}

// Next returns the next token.  It returns io.EOF when the stream is
// cleanly exhausted.  Any lexical error is fatal to the run: Next returns
// it for every subsequent call and no further tokens are produced.
func (ts *TokenSource) Next() (*Token, error) {
	if ts.err != nil {
		return nil, ts.err
	}
	for len(ts.queue) == 0 {
		if ts.eof {
			return nil, io.EOF
		}
		raw, ok := ts.nextLine()
		if !ok {
			if ts.err != nil {
				return nil, ts.err
			}
			ts.eof = true
			continue
		}
		if err := ts.scanLine(raw); err != nil {
			ts.err = err
			return nil, err
		}
	}
	tok := ts.queue[0]
	ts.queue = ts.queue[1:]
	return &tok, nil
}

// nextLine reads one physical line, stripping the line break.  It is also
// the continuation source for the string matcher, so the line counter
// advances to wherever a multi-line literal ends.
func (ts *TokenSource) nextLine() (string, bool) {
	line, err := ts.r.ReadString('\n')
	if err != nil && err != io.EOF {
		ts.err = err
		return "", false
	}
	if line == "" {
		return "", false
	}
	ts.lineNum++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if debug.Lines() {
		debug.Logf("line %d: %q\n", ts.lineNum, line)
	}
	return line, true
}

// scanLine consumes one physical line: blank and comment-only lines produce
// nothing; otherwise indentation changes (outside brackets), then the
// matcher loop, then the logical-line terminator (outside brackets).
func (ts *TokenSource) scanLine(raw string) error {
	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" || trimmed[0] == '#' {
		return nil
	}
	if len(ts.contexts) == 0 {
		if err := ts.scanIndent(len(raw)-len(trimmed), trimmed); err != nil {
			return err
		}
	}
	ts.line = trimmed
	for {
		ts.line = strings.TrimLeft(ts.line, " \t")
		if ts.line == "" || ts.line[0] == '#' {
			break
		}
		if err := ts.matchOne(); err != nil {
			return err
		}
	}
	if len(ts.contexts) == 0 {
		ts.push(Token{Type: TEndOfLine, Line: ts.lineNum})
	}
	return nil
}

// scanIndent emits TIndent or a run of TOutdents for the new width.  A
// dedent must land exactly on a previously pushed level.
func (ts *TokenSource) scanIndent(width int, text string) error {
	top := ts.indents[len(ts.indents)-1]
	switch {
	case width > top:
		ts.indents = append(ts.indents, width)
		ts.push(Token{Type: TIndent, Line: ts.lineNum})
	case width < top:
		for width < ts.indents[len(ts.indents)-1] {
			ts.indents = ts.indents[:len(ts.indents)-1]
			ts.push(Token{Type: TOutdent, Line: ts.lineNum})
		}
		if width != ts.indents[len(ts.indents)-1] {
			return NewTokenizeErr(ErrIndent, ts.lineNum, text)
		}
	}
	if debug.Indent() {
		debug.Logf("indent %v at line %d\n", ts.indents, ts.lineNum)
	}
	return nil
}

// matchOne dispatches the matchers in fixed priority order: symbol, float,
// integer, string, word.  The first to match wins; no match on non-empty
// text is fatal.
func (ts *TokenSource) matchOne() error {
	d := ts.line
	if sym, rest, ok := matchSymbol(d); ok {
		if err := ts.bracket(sym); err != nil {
			return err
		}
		ts.push(Token{Type: TSymbol, Line: ts.lineNum, Sym: sym})
		ts.line = rest
		return nil
	}
	if lit, rest, ok := matchFloat(d); ok {
		tok, err := NewFloat(lit, ts.lineNum)
		if err != nil {
			return NewTokenizeErr(err, ts.lineNum, lit)
		}
		ts.push(*tok)
		ts.line = rest
		return nil
	}
	if lit, rest, ok := matchInt(d); ok {
		tok, err := NewInteger(lit, ts.lineNum)
		if err != nil {
			return NewTokenizeErr(err, ts.lineNum, lit)
		}
		ts.push(*tok)
		ts.line = rest
		return nil
	}
	startLine := ts.lineNum
	m, ok, err := matchString(d, ts.nextLine)
	if err != nil {
		if ts.err != nil {
			// line read failed mid-string
			return ts.err
		}
		return NewTokenizeErr(err, startLine, d)
	}
	if ok {
		ts.push(*NewString(m.prefix, m.content, startLine))
		ts.line = m.rest
		return nil
	}
	if w, rest, ok := matchWord(d); ok {
		ts.push(Token{Type: TWord, Line: ts.lineNum, Word: w})
		ts.line = rest
		return nil
	}
	return NewTokenizeErr(ErrUnrecognized, ts.lineNum, d)
}

// bracket maintains the context stack.  Openers push; a closer must match
// the innermost open context.
func (ts *TokenSource) bracket(sym string) error {
	switch sym {
	case "(", "[", "{":
		ts.contexts = append(ts.contexts, sym[0])
	case ")", "]", "}":
		want := openerOf(sym[0])
		if len(ts.contexts) == 0 {
			return &ErrImbalancedBracket{Close: sym[0], Line: ts.lineNum}
		}
		top := ts.contexts[len(ts.contexts)-1]
		if top != want {
			return &ErrImbalancedBracket{Open: top, Close: sym[0], Line: ts.lineNum}
		}
		ts.contexts = ts.contexts[:len(ts.contexts)-1]
	}
	return nil
}

func (ts *TokenSource) push(tok Token) {
	if debug.Tokens() {
		debug.Logf("%s\n", tok.Info())
	}
	ts.queue = append(ts.queue, tok)
}
