package token

import (
	"bytes"
	"io"
)

// Tokenize appends the full token sequence of src to dst.  A lexical error
// aborts the run; no partial sequence is returned.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	ts := NewTokenSource(bytes.NewReader(src))
	for {
		tok, err := ts.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
	}
}
