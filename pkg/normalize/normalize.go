package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// "Algodón Rígido" -> "Algodon Rigido".
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold elimina acentos/diacríticos y pasa a minúsculas, para comparaciones
// de búsqueda libre insensibles a tildes (nombres de productos en español).
func Fold(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Matches indica si needle aparece en haystack ignorando acentos y mayúsculas.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
