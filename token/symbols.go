package token

import "strings"

// symbols is the closed set of operator and punctuation spellings, tried in
// order as literal prefixes.  Spellings sharing a prefix appear longest
// first; moving "**" above "**=" would silently mis-tokenize "x **= 2".
// The table is immutable and shared across concurrent tokenization runs.
var symbols = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<",
	"<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "@",
	"<", ">", "=",
	"(", ")", "[", "]", "{", "}",
	",", ":", ".", ";", "&", "|", "^", "~",
}

func matchSymbol(d string) (string, string, bool) {
	for _, s := range symbols {
		if strings.HasPrefix(d, s) {
			return s, d[len(s):], true
		}
	}
	return "", d, false
}

func openerOf(close byte) byte {
	switch close {
	case ')':
		return '('
	case ']':
		return '['
	case '}':
		return '{'
	}
	return 0
}
