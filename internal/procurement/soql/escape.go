// Package soql compiles user-supplied filter criteria into the SoQL
// mini-language accepted by the Socrata dataset API ($where/$order strings).
package soql

import "strings"

// EscapeLiteral doubles every single quote so the input can be embedded in a
// single-quoted SoQL string literal. This is the only injection defense and
// must run before any user token reaches string interpolation.
func EscapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// SanitizeLikeTerm strips the LIKE wildcard metacharacters and then escapes
// the term, so it cannot introduce unintended wildcard behavior inside a
// '%...%' pattern.
func SanitizeLikeTerm(s string) string {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, "_", "")
	return EscapeLiteral(s)
}
