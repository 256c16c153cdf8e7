package encode

import "github.com/signadot/pytok/token"

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeLines prefixes each output line with the source line number of its
// first token.
func EncodeLines(v bool) EncodeOption {
	return func(es *EncState) { es.lines = v }
}

type EncState struct {
	lines bool
	Color func(token.TokenType, string) string
}
