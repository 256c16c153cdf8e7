// Package encode renders a token stream in the reference display form:
// structural tokens (INDENT, OUTDENT, EOL) each alone on an output line,
// value tokens space-separated on a shared line between terminators.
package encode
