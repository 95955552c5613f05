package chomsky

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormSymbol returns the NFC form of symbol r, if this is a single rune.
// Otherwise r is returned unchanged.
//
// Only runes with a singleton canonical decomposition are affected, e.g.
// U+212B ANGSTROM SIGN maps to U+00C5. A combining mark stays a symbol of
// its own.
func NormSymbol(r rune) rune {
	s := norm.NFC.String(string(r))
	if utf8.RuneCountInString(s) == 1 {
		n, _ := utf8.DecodeRuneInString(s)
		return n
	}
	return r
}

// IsNormSymbol is true if r is its own normal form.
func IsNormSymbol(r rune) bool {
	return NormSymbol(r) == r
}

// NormSymbols applies NormSymbol to every rune of s. Neighbouring symbols
// never compose, i.e. the result has as many runes as s.
func NormSymbols(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(NormSymbol(r))
	}
	return b.String()
}
