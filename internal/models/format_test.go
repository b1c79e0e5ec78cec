package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Format(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		row      RawRow
		want     DictionaryEntry
	}{
		{
			name:     "adjective with three forms",
			category: Adjective,
			row:      RawRow{"bonus", "bona", "bonum", "good", ""},
			want:     DictionaryEntry{Words: "bonus, bona, bonum", Definition: "good"},
		},
		{
			name:     "adjective skips empty forms and appends info",
			category: Adjective,
			row:      RawRow{"fēlīx", "", "fēlīcis", "lucky", "gen. fēlīcis"},
			want:     DictionaryEntry{Words: "fēlīx, fēlīcis", Definition: "lucky (gen. fēlīcis)"},
		},
		{
			name:     "adverb",
			category: Adverb,
			row:      RawRow{"saepe", "often", ""},
			want:     DictionaryEntry{Words: "saepe", Definition: "often"},
		},
		{
			name:     "adverb with info",
			category: Adverb,
			row:      RawRow{"nōn", "not", "negates a verb"},
			want:     DictionaryEntry{Words: "nōn", Definition: "not (negates a verb)"},
		},
		{
			name:     "coordinating conjunction with one form",
			category: CoordinatingConjunction,
			row:      RawRow{"et", "", "and", ""},
			want:     DictionaryEntry{Words: "et", Definition: "and"},
		},
		{
			name:     "coordinating conjunction with two forms",
			category: CoordinatingConjunction,
			row:      RawRow{"atque", "ac", "and, and also", "ac before consonants"},
			want:     DictionaryEntry{Words: "atque, ac", Definition: "and, and also (ac before consonants)"},
		},
		{
			name:     "subordinating conjunction",
			category: SubordinatingConjunction,
			row:      RawRow{"cum", "", "when, since, although", "with subjunctive"},
			want:     DictionaryEntry{Words: "cum", Definition: "when, since, although (with subjunctive)"},
		},
		{
			name:     "noun",
			category: Noun,
			row:      RawRow{"puella", "puellae", "f.", "girl", "", int64(0)},
			want:     DictionaryEntry{Words: "puella, puellae", Definition: "f. girl"},
		},
		{
			name:     "i-stem noun",
			category: Noun,
			row:      RawRow{"mare", "maris", "n.", "sea", "abl. sg. marī", int64(1)},
			want:     DictionaryEntry{Words: "*mare, maris", Definition: "n. sea (abl. sg. marī)"},
		},
		{
			name:     "preposition with one form",
			category: Preposition,
			row:      RawRow{"ad", "", "accusative", "to, toward"},
			want:     DictionaryEntry{Words: "ad (+ accusative)", Definition: "to, toward"},
		},
		{
			name:     "preposition with two forms",
			category: Preposition,
			row:      RawRow{"ā", "ab", "ablative", "from, away from"},
			want:     DictionaryEntry{Words: "ā, ab (+ ablative)", Definition: "from, away from"},
		},
		{
			name:     "pronoun",
			category: Pronoun,
			row:      RawRow{"is", "ea", "id", "he, she, it; this, that", ""},
			want:     DictionaryEntry{Words: "is, ea, id", Definition: "he, she, it; this, that"},
		},
		{
			name:     "verb",
			category: Verb,
			row:      RawRow{"amō", "amāre", "amāvī", "", "amātum", "", "", "love", ""},
			want:     DictionaryEntry{Words: "amō, amāre, amāvī, amātum", Definition: "love"},
		},
		{
			name:     "verb with alternates",
			category: Verb,
			row:      RawRow{"lavō", "lavāre", "lāvī", "lavāvī", "lautum", "lavātum", "", "wash", ""},
			want:     DictionaryEntry{Words: "lavō, lavāre, lāvī or lavāvī, lautum or lavātum", Definition: "wash"},
		},
		{
			name:     "verb with governance, info and no fourth part",
			category: Verb,
			row:      RawRow{"pāreō", "pārēre", "pāruī", "", "", "", "dative", "obey", "intransitive"},
			want:     DictionaryEntry{Words: "pāreō, pārēre, pāruī (+ dative)", Definition: "obey (intransitive)"},
		},
		{
			name:     "null fields read as empty",
			category: Adverb,
			row:      RawRow{"iam", "now, already", nil},
			want:     DictionaryEntry{Words: "iam", Definition: "now, already"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.category.Format(tt.row)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Words)
			assert.False(t, strings.HasSuffix(got.Definition, "()"))
		})
	}
}

func TestCategory_FormatIsPure(t *testing.T) {
	row := RawRow{"lavō", "lavāre", "lāvī", "lavāvī", "lautum", "lavātum", "", "wash", ""}
	snapshot := append(RawRow(nil), row...)

	first := Verb.Format(row)
	second := Verb.Format(row)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, row)
}

func TestNounIStemMarker(t *testing.T) {
	tests := []struct {
		name  string
		flag  any
		istem bool
	}{
		{"integer one", int64(1), true},
		{"integer zero", int64(0), false},
		{"text true", "true", true},
		{"text zero", "0", false},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Noun.Format(RawRow{"ignis", "ignis", "m.", "fire", "", tt.flag})
			assert.Equal(t, tt.istem, strings.HasPrefix(got.Words, "*"))
		})
	}
}

func TestVerbAlternatePrincipalParts(t *testing.T) {
	with := Verb.Format(RawRow{"lavō", "lavāre", "lāvī", "lavāvī", "lautum", "", "", "wash", ""})
	assert.Contains(t, with.Words, "lāvī or lavāvī")

	without := Verb.Format(RawRow{"lavō", "lavāre", "lāvī", "", "lautum", "", "", "wash", ""})
	assert.NotContains(t, without.Words, " or ")
}

func TestJoinForms(t *testing.T) {
	tests := []struct {
		forms []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b", "c"}, "a, b, c"},
		{[]string{"", "b", ""}, "b"},
		{[]string{"a", "", "c"}, "a, c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinForms(tt.forms...), "JoinForms(%q)", tt.forms)
	}
}

func TestJoinWords(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{nil, ""},
		{[]string{"f.", "girl"}, "f. girl"},
		{[]string{"", "sea"}, "sea"},
		{[]string{"n.", ""}, "n."},
		{[]string{"", ""}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, joinWords(tt.words...), "joinWords(%q)", tt.words)
	}
}
