package models

import (
	"fmt"
	"strings"
)

// Category is a grammatical word class. Each category is backed by its own
// table and has its own row layout and display rule.
type Category int

// Categories in display order.
const (
	Adjective Category = iota
	Adverb
	CoordinatingConjunction
	Noun
	Preposition
	Pronoun
	SubordinatingConjunction
	Verb
)

// categoryInfo is the per-category contract: where rows live, which columns
// are selected (in RawRow order), which of them a word search looks at, how
// results are ordered and how a row becomes a DictionaryEntry.
type categoryInfo struct {
	id            string
	label         string
	table         string
	columns       []string
	searchColumns []string
	sortColumn    string
	format        func(RawRow) DictionaryEntry
}

var registry = [...]categoryInfo{
	Adjective: {
		id:            "adjective",
		label:         "Adjectives",
		table:         "Adjectives",
		columns:       []string{"firstForm", "secondForm", "thirdForm", "definition", "otherInformation"},
		searchColumns: []string{"firstForm", "secondForm", "thirdForm"},
		sortColumn:    "firstForm",
		format:        formatAdjective,
	},
	Adverb: {
		id:            "adverb",
		label:         "Adverbs",
		table:         "Adverbs",
		columns:       []string{"word", "definition", "otherInformation"},
		searchColumns: []string{"word"},
		sortColumn:    "word",
		format:        formatAdverb,
	},
	CoordinatingConjunction: {
		id:            "coordinating-conjunction",
		label:         "Coordinating Conjunctions",
		table:         "CoordinatingConjunctions",
		columns:       []string{"firstForm", "secondForm", "definition", "otherInformation"},
		searchColumns: []string{"firstForm", "secondForm"},
		sortColumn:    "firstForm",
		format:        formatConjunction,
	},
	Noun: {
		id:            "noun",
		label:         "Nouns",
		table:         "Nouns",
		columns:       []string{"nominative", "genitive", "gender", "definition", "otherInformation", "iStem"},
		searchColumns: []string{"nominative", "genitive"},
		sortColumn:    "nominative",
		format:        formatNoun,
	},
	Preposition: {
		id:            "preposition",
		label:         "Prepositions",
		table:         "Prepositions",
		columns:       []string{"firstForm", "secondForm", "governedCase", "definition"},
		searchColumns: []string{"firstForm", "secondForm"},
		sortColumn:    "firstForm",
		format:        formatPreposition,
	},
	Pronoun: {
		id:            "pronoun",
		label:         "Pronouns",
		table:         "Pronouns",
		columns:       []string{"firstForm", "secondForm", "thirdForm", "definition", "otherInformation"},
		searchColumns: []string{"firstForm", "secondForm", "thirdForm"},
		sortColumn:    "firstForm",
		format:        formatPronoun,
	},
	SubordinatingConjunction: {
		id:            "subordinating-conjunction",
		label:         "Subordinating Conjunctions",
		table:         "SubordinatingConjunctions",
		columns:       []string{"firstForm", "secondForm", "definition", "otherInformation"},
		searchColumns: []string{"firstForm", "secondForm"},
		sortColumn:    "firstForm",
		format:        formatConjunction,
	},
	Verb: {
		id:    "verb",
		label: "Verbs",
		table: "Verbs",
		columns: []string{
			"firstPrincipalPart", "secondPrincipalPart",
			"thirdPrincipalPart", "thirdPrincipalPartAlt",
			"fourthPrincipalPart", "fourthPrincipalPartAlt",
			"governance", "definition", "otherInformation",
		},
		searchColumns: []string{
			"firstPrincipalPart", "secondPrincipalPart",
			"thirdPrincipalPart", "thirdPrincipalPartAlt",
			"fourthPrincipalPart", "fourthPrincipalPartAlt",
		},
		sortColumn: "firstPrincipalPart",
		format:     formatVerb,
	},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(registry))
	for i := range registry {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(registry)
}

func (c Category) info() *categoryInfo {
	if !c.Valid() {
		panic(fmt.Sprintf("models: unknown category %d", int(c)))
	}
	return &registry[c]
}

// ID returns the stable identifier, e.g. "coordinating-conjunction".
func (c Category) ID() string { return c.info().id }

// Label returns the display label, e.g. "Coordinating Conjunctions".
func (c Category) Label() string { return c.info().label }

// Table returns the backing table name.
func (c Category) Table() string { return c.info().table }

// Columns returns the selected columns in RawRow order.
func (c Category) Columns() []string { return append([]string(nil), c.info().columns...) }

// SearchColumns returns the word columns a by-word search matches against.
func (c Category) SearchColumns() []string { return append([]string(nil), c.info().searchColumns...) }

// SortColumn returns the column results are ordered by.
func (c Category) SortColumn() string { return c.info().sortColumn }

// Format renders a raw row of this category into its display form.
func (c Category) Format(row RawRow) DictionaryEntry { return c.info().format(row) }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.info().id
}

// MarshalText implements encoding.TextMarshaler using the stable identifier.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.info().id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory accepts an identifier ("noun"), a display label ("Nouns") or
// a table name ("SubordinatingConjunctions"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i := range registry {
		info := &registry[i]
		if strings.EqualFold(s, info.id) || strings.EqualFold(s, info.label) || strings.EqualFold(s, info.table) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
