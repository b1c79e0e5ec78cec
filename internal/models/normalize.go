package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// longVowels maps each short vowel to the bracket class matching it and its
// macron form.
var longVowels = map[rune]string{
	'a': "[aā]",
	'e': "[eē]",
	'i': "[iī]",
	'o': "[oō]",
	'u': "[uū]",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeTerm trims, lowercases and removes diacritics from a search term,
// so "Mēnsa" and "mensa" search alike.
func NormalizeTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	folded, _, err := transform.String(stripMarks, term)
	if err != nil {
		return norm.NFC.String(term)
	}
	return folded
}

// WordPattern turns a word prefix into a SQLite GLOB pattern in which every
// vowel also matches its long form: "mensa" becomes "m[eē]ns[aā]*".
// Vowels are expanded in one pass over the input, so brackets inserted for
// one vowel are never rewritten by another. Glob metacharacters in the term
// are quoted.
func WordPattern(term string) string {
	var b strings.Builder
	for _, r := range NormalizeTerm(term) {
		if class, ok := longVowels[r]; ok {
			b.WriteString(class)
			continue
		}
		switch r {
		case '*', '?', '[':
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('*')
	return b.String()
}

// LikeEscape is the escape character used with DefinitionPattern.
const LikeEscape = `\`

// DefinitionPattern turns a term into a LIKE substring pattern ("%term%")
// without vowel expansion. % and _ in the term are escaped with LikeEscape.
func DefinitionPattern(term string) string {
	term = strings.TrimSpace(term)
	r := strings.NewReplacer(LikeEscape, LikeEscape+LikeEscape, "%", LikeEscape+"%", "_", LikeEscape+"_")
	return "%" + r.Replace(term) + "%"
}
