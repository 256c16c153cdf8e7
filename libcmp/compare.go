// Package libcmp compares two normalized token sequences.  Sources
// identical up to comments, blank lines, trailing whitespace and literal
// formatting produce equal sequences; structural differences do not.
package libcmp

import "github.com/signadot/pytok/token"

func Equal(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

// FirstMismatch returns the index of the first position where a and b
// disagree, counting a missing token at the tail of the shorter sequence
// as a mismatch.  The second result is false when the sequences are equal.
func FirstMismatch(a, b []token.Token) (int, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !a[i].Equal(&b[i]) {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}
