package token

// matchWord recognizes an ASCII letter or underscore followed by letters,
// digits and underscores.  Keywords are not distinguished from identifiers;
// structural comparison has no use for the difference.
func matchWord(d string) (string, string, bool) {
	if len(d) == 0 || !wordStart(d[0]) {
		return "", d, false
	}
	i := 1
	for i < len(d) && wordPart(d[i]) {
		i++
	}
	return d[:i], d[i:], true
}

func wordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func wordPart(c byte) bool {
	return wordStart(c) || asciiDigit(c)
}
