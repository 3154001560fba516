package renderer

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The fixed-page format's core fonts only cover the cp1252 repertoire.
// Runes cp1252 can represent pass through untouched, so extended-Latin
// diacritics survive; anything else is transliterated to its base
// letters, and what still cannot be drawn (emoji, non-Latin script) is
// dropped. A known limitation of the output format, kept deliberately.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var punctReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...",
	" ", " ",
)

// normalizeLatin maps text to the subset the PDF core fonts can draw.
func normalizeLatin(s string) string {
	s = punctReplacer.Replace(s)

	var b strings.Builder
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
			continue
		}

		folded, _, err := transform.String(stripMarks, string(r))
		if err != nil {
			continue
		}
		representable := true
		for _, fr := range folded {
			if _, ok := charmap.Windows1252.EncodeRune(fr); !ok {
				representable = false
				break
			}
		}
		if representable {
			b.WriteString(folded)
		}
	}

	return strings.TrimSpace(b.String())
}
