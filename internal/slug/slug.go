// Package slug derives stable dictionary keys from free-text person names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// prefix namespaces person slugs so they can never collide with other key
// families in the same dictionary store.
const prefix = "person-"

// stripMarks decomposes accented characters (NFD) and removes the combining
// marks, leaving base letters only.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make normalizes a name into its dictionary key: lowercase, diacritics
// stripped, non-ASCII dropped, whitespace collapsed into single hyphens,
// namespace prefix prepended. Deterministic and total: the same input always
// yields the same slug, and no input makes it fail.
func Make(text string) string {
	lowered := strings.ToLower(text)

	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Malformed input transforms as far as possible; fall back to the
		// lowered text so the function stays total.
		folded = lowered
	}

	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)

	return prefix + strings.Join(strings.Fields(ascii), "-")
}
