package token

import (
	"slices"
	"strings"
)

const prefixLetters = "rbufRBUF"

// strMatch is the raw result of the string matcher: prefix and content as
// written, the unconsumed text following the closing quote on its (possibly
// different) physical line, and the number of extra lines pulled.
type strMatch struct {
	prefix  string
	content string
	rest    string
	lines   int
}

// matchString recognizes an optional case-insensitive prefix of up to two
// letters from r/b/u/f followed by one of the four quote forms ', ", ''',
// """.  A backslash immediately preceding the closing sequence escapes it;
// the backslash-quote pair is retained verbatim here and canonicalized by
// NewString.  When the closer is not on the current line, next pulls
// additional physical lines; exhaustion of next is ErrUnterminated.
func matchString(d string, next func() (string, bool)) (*strMatch, bool, error) {
	p := 0
	for p < len(d) && p < 2 && strings.IndexByte(prefixLetters, d[p]) >= 0 {
		p++
	}
	q := d[p:]
	var closer string
	switch {
	case strings.HasPrefix(q, `'''`):
		closer = `'''`
	case strings.HasPrefix(q, `"""`):
		closer = `"""`
	case strings.HasPrefix(q, `'`):
		closer = `'`
	case strings.HasPrefix(q, `"`):
		closer = `"`
	default:
		return nil, false, nil
	}
	m := &strMatch{prefix: d[:p]}
	var content strings.Builder
	cur := q[len(closer):]
	for {
		i := 0
		for i < len(cur) {
			if cur[i] == '\\' {
				if i+1 < len(cur) {
					i += 2
				} else {
					i++
				}
				continue
			}
			if strings.HasPrefix(cur[i:], closer) {
				content.WriteString(cur[:i])
				m.content = content.String()
				m.rest = cur[i+len(closer):]
				return m, true, nil
			}
			i++
		}
		content.WriteString(cur)
		content.WriteByte('\n')
		line, ok := next()
		if !ok {
			return nil, false, ErrUnterminated
		}
		m.lines++
		cur = line
	}
}

// NewString builds a string token from a raw prefix and raw quoted content.
// The prefix is lower-cased and sorted so Rb, br and BR compare equal.  The
// content is canonicalized: escaped quotes lose their backslash (the quote
// choice no longer disambiguates them) and raw tab, newline and carriage
// return become their two-character escapes, so equivalent content written
// with different quoting compares equal.
func NewString(prefix, content string, line int) *Token {
	return &Token{
		Type:    TString,
		Line:    line,
		Prefix:  normPrefix(prefix),
		Content: normContent(content),
	}
}

func normPrefix(p string) string {
	b := []byte(strings.ToLower(p))
	slices.Sort(b)
	return string(b)
}

func normContent(c string) string {
	var b strings.Builder
	for i := 0; i < len(c); i++ {
		switch ch := c[i]; ch {
		case '\\':
			if i+1 >= len(c) {
				b.WriteByte('\\')
				continue
			}
			i++
			switch c[i] {
			case '\'', '"':
				b.WriteByte(c[i])
			case '\t':
				b.WriteString(`\\t`)
			case '\n':
				b.WriteString(`\\n`)
			case '\r':
				b.WriteString(`\\r`)
			default:
				b.WriteByte('\\')
				b.WriteByte(c[i])
			}
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
