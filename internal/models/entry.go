package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Chapter bounds of the course.
const (
	MinChapter Chapter = 1
	MaxChapter Chapter = 32
)

// Chapter is the pedagogical unit an entry is introduced in.
type Chapter int

// Valid reports whether c lies within [MinChapter, MaxChapter].
func (c Chapter) Valid() bool {
	return c >= MinChapter && c <= MaxChapter
}

// Validate returns ErrInvalidChapter when c is out of range.
func (c Chapter) Validate() error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidChapter, int(c), MinChapter, MaxChapter)
	}
	return nil
}

// ParseChapter parses a decimal chapter number and validates its range.
func ParseChapter(s string) (Chapter, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChapter, s)
	}
	c := Chapter(n)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// SearchMode selects which side of an entry a search term is matched against.
type SearchMode int

const (
	// SearchByWord matches the term as a prefix of any Latin form.
	SearchByWord SearchMode = iota
	// SearchByDefinition matches the term anywhere in the English definition.
	SearchByDefinition
)

func (m SearchMode) String() string {
	switch m {
	case SearchByWord:
		return "word"
	case SearchByDefinition:
		return "definition"
	default:
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
}

// ParseSearchMode accepts "word" or "definition". An empty string means
// SearchByWord.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "word", "byword", "by-word":
		return SearchByWord, nil
	case "definition", "bydefinition", "by-definition", "def":
		return SearchByDefinition, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSearchMode, s)
	}
}

// RawRow is one stored entry as read from a category table, holding the
// category's selected columns in order. Values are string, int64 or nil.
type RawRow []any

// Text returns field i as a string. Missing and NULL fields are empty.
func (r RawRow) Text(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	switch v := r[i].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Flag returns field i as a boolean. Integers are true when non-zero; text
// is true for "1", "t", "true", "y" and "yes".
func (r RawRow) Flag(i int) bool {
	if i < 0 || i >= len(r) {
		return false
	}
	switch v := r[i].(type) {
	case int64:
		return v != 0
	case bool:
		return v
	}
	switch strings.ToLower(strings.TrimSpace(r.Text(i))) {
	case "1", "t", "true", "y", "yes":
		return true
	}
	return false
}

// DictionaryEntry is the display form of one stored entry.
type DictionaryEntry struct {
	Words      string `json:"words"`
	Definition string `json:"definition"`
}

// LookupResult groups entries by category. Entries[i] belongs to
// Categories[i]; categories without entries are left out.
type LookupResult struct {
	Categories []Category          `json:"categories"`
	Entries    [][]DictionaryEntry `json:"entries"`
}

// Group is one category's slice of a LookupResult.
type Group struct {
	Category Category
	Entries  []DictionaryEntry
}

// Add appends a category's entries. Empty groups are dropped.
func (r *LookupResult) Add(c Category, entries []DictionaryEntry) {
	if len(entries) == 0 {
		return
	}
	r.Categories = append(r.Categories, c)
	r.Entries = append(r.Entries, entries)
}

// Groups returns the result as category/entries pairs.
func (r *LookupResult) Groups() []Group {
	groups := make([]Group, len(r.Categories))
	for i, c := range r.Categories {
		groups[i] = Group{Category: c, Entries: r.Entries[i]}
	}
	return groups
}

// Len returns the total number of entries across all categories.
func (r *LookupResult) Len() int {
	n := 0
	for _, e := range r.Entries {
		n += len(e)
	}
	return n
}
