package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks (ğ→g, ş→s, ö→o, ...)
// and recomposes. The dotless ı never decomposes, so it is handled in Fold.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s for comparison, insensitive to case and diacritics and
// aware of the Turkish dotted/dotless i pair: Fold("İstanbul") == Fold("ISTANBUL")
// == Fold("istanbul") == "istanbul".
func Fold(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'İ', 'I', 'ı':
			return 'i'
		}
		return unicode.ToLower(r)
	}, s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(out)
}

// FoldEqual compares two strings under Fold.
func FoldEqual(a, b string) bool { return Fold(a) == Fold(b) }
