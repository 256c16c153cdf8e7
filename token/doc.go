// Package token tokenizes Python-like source into a normalized token
// stream for structural comparison.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [TokenSource] provides pull-based streaming tokenization, producing one
// token per call including indentation structure (TIndent/TOutdent) and
// logical line terminators (TEndOfLine).
package token
