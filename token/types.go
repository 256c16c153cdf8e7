package token

import (
	"fmt"
	"math/big"
	"strconv"
)

type TokenType int

const (
	TIndent = iota
	TOutdent
	TEndOfLine
	TWord
	TInteger
	TFloat
	TString
	TSymbol
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIndent:    "TIndent",
		TOutdent:   "TOutdent",
		TEndOfLine: "TEndOfLine",
		TWord:      "TWord",
		TInteger:   "TInteger",
		TFloat:     "TFloat",
		TString:    "TString",
		TSymbol:    "TSymbol",
	}[t]
}

// Token is one lexical unit.  Line is the 1-based physical line the token
// started on; for strings that is the line of the opening quote.  Line is
// carried for diagnostics only and is excluded from Equal, so reformatted
// sources compare token-for-token.
type Token struct {
	Type TokenType
	Line int

	Word    string   // TWord: identifier text verbatim
	Int     *big.Int // TInteger: exact value, radix and separators erased
	Float   float64  // TFloat: exact value, separators erased
	Prefix  string   // TString: prefix letters, lower-cased and sorted
	Content string   // TString: content in canonical escape form
	Sym     string   // TSymbol: operator spelling
}

// Equal compares kind and normalized payload.
func (t *Token) Equal(o *Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case TWord:
		return t.Word == o.Word
	case TInteger:
		return t.Int.Cmp(o.Int) == 0
	case TFloat:
		return t.Float == o.Float
	case TString:
		return t.Prefix == o.Prefix && t.Content == o.Content
	case TSymbol:
		return t.Sym == o.Sym
	default:
		return true
	}
}

func (t *Token) String() string {
	switch t.Type {
	case TIndent:
		return "INDENT"
	case TOutdent:
		return "OUTDENT"
	case TEndOfLine:
		return "EOL"
	case TWord:
		return t.Word
	case TInteger:
		return t.Int.String()
	case TFloat:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case TString:
		return t.Prefix + "'" + t.Content + "'"
	default:
		return t.Sym
	}
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s at line %d", t.Type, t.String(), t.Line)
}
