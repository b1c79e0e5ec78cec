package models

import "strings"

// JoinForms comma-separates the non-empty forms, keeping their order.
func JoinForms(forms ...string) string {
	nonEmpty := make([]string, 0, len(forms))
	for _, f := range forms {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// joinWords space-separates the non-empty words.
func joinWords(words ...string) string {
	nonEmpty := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			nonEmpty = append(nonEmpty, w)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// withInfo appends " (info)" to definition when info is set.
func withInfo(definition, info string) string {
	if info == "" {
		return definition
	}
	if definition == "" {
		return "(" + info + ")"
	}
	return definition + " (" + info + ")"
}

// orAlternate renders a principal part with its alternate spelling.
func orAlternate(part, alt string) string {
	if alt == "" {
		return part
	}
	if part == "" {
		return alt
	}
	return part + " or " + alt
}

// firstForm, secondForm, thirdForm, definition, otherInformation
func formatAdjective(row RawRow) DictionaryEntry {
	return DictionaryEntry{
		Words:      JoinForms(row.Text(0), row.Text(1), row.Text(2)),
		Definition: withInfo(row.Text(3), row.Text(4)),
	}
}

// word, definition, otherInformation
func formatAdverb(row RawRow) DictionaryEntry {
	return DictionaryEntry{
		Words:      row.Text(0),
		Definition: withInfo(row.Text(1), row.Text(2)),
	}
}

// firstForm, secondForm, definition, otherInformation. Shared by both
// conjunction categories.
func formatConjunction(row RawRow) DictionaryEntry {
	return DictionaryEntry{
		Words:      JoinForms(row.Text(0), row.Text(1)),
		Definition: withInfo(row.Text(2), row.Text(3)),
	}
}

// nominative, genitive, gender, definition, otherInformation, iStem
func formatNoun(row RawRow) DictionaryEntry {
	words := JoinForms(row.Text(0), row.Text(1))
	if row.Flag(5) {
		words = "*" + words
	}
	return DictionaryEntry{
		Words:      words,
		Definition: withInfo(joinWords(row.Text(2), row.Text(3)), row.Text(4)),
	}
}

// firstForm, secondForm, governedCase, definition
func formatPreposition(row RawRow) DictionaryEntry {
	words := JoinForms(row.Text(0), row.Text(1))
	if governed := row.Text(2); governed != "" {
		words += " (+ " + governed + ")"
	}
	return DictionaryEntry{
		Words:      words,
		Definition: row.Text(3),
	}
}

// firstForm, secondForm, thirdForm, definition, otherInformation
func formatPronoun(row RawRow) DictionaryEntry {
	return DictionaryEntry{
		Words:      JoinForms(row.Text(0), row.Text(1), row.Text(2)),
		Definition: withInfo(row.Text(3), row.Text(4)),
	}
}

// four principal parts with alternates for the third and fourth, then
// governance, definition, otherInformation
func formatVerb(row RawRow) DictionaryEntry {
	words := JoinForms(
		row.Text(0),
		row.Text(1),
		orAlternate(row.Text(2), row.Text(3)),
		orAlternate(row.Text(4), row.Text(5)),
	)
	if governance := row.Text(6); governance != "" {
		words += " (+ " + governance + ")"
	}
	return DictionaryEntry{
		Words:      words,
		Definition: withInfo(row.Text(7), row.Text(8)),
	}
}
