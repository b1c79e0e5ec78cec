// Package storetest builds SQLite vocabulary databases for tests.
package storetest

import (
	"database/sql"
	"embed"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/lehmann314159/latinvocab/internal/models"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Row is one fixture entry. Values maps column names to values; columns
// left out take their schema defaults.
type Row struct {
	Category models.Category
	Chapter  int
	Values   map[string]any
}

// NewDatabase creates a vocabulary database under t.TempDir, applies the
// schema and inserts rows. It returns the file path.
func NewDatabase(t testing.TB, rows ...Row) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "latin_vocabulary.sqlite3")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to open fixture db: %v", err)
	}
	db.SetMaxOpenConns(1)

	src, err := iofs.New(schemaFS, "schema")
	if err != nil {
		t.Fatalf("failed to load schema: %v", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		t.Fatalf("failed to create migrate driver: %v", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	// Closing the migrator closes db as well.
	defer m.Close()

	if err := m.Up(); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	for _, r := range rows {
		values := make(map[string]any, len(r.Values)+1)
		for k, v := range r.Values {
			values[k] = v
		}
		values["chapter"] = r.Chapter

		_, err := sq.Insert(r.Category.Table()).SetMap(values).RunWith(db).Exec()
		if err != nil {
			t.Fatalf("failed to insert %s fixture: %v", r.Category, err)
		}
	}

	return path
}

// Noun builds a Noun fixture row.
func Noun(chapter int, nominative, genitive, gender, definition, info string, iStem bool) Row {
	return Row{Category: models.Noun, Chapter: chapter, Values: map[string]any{
		"nominative": nominative, "genitive": genitive, "gender": gender,
		"definition": definition, "otherInformation": info, "iStem": iStem,
	}}
}

// Verb builds a Verb fixture row. parts holds the four principal parts
// followed by the third and fourth alternates.
func Verb(chapter int, parts [6]string, governance, definition, info string) Row {
	return Row{Category: models.Verb, Chapter: chapter, Values: map[string]any{
		"firstPrincipalPart": parts[0], "secondPrincipalPart": parts[1],
		"thirdPrincipalPart": parts[2], "fourthPrincipalPart": parts[3],
		"thirdPrincipalPartAlt": parts[4], "fourthPrincipalPartAlt": parts[5],
		"governance": governance, "definition": definition, "otherInformation": info,
	}}
}

// Forms builds a row for the categories laid out as up to three forms, a
// definition and other information.
func Forms(c models.Category, chapter int, forms []string, definition, info string) Row {
	values := map[string]any{"definition": definition, "otherInformation": info}
	for i, col := range []string{"firstForm", "secondForm", "thirdForm"}[:len(forms)] {
		values[col] = forms[i]
	}
	return Row{Category: c, Chapter: chapter, Values: values}
}

// Adverb builds an Adverb fixture row.
func Adverb(chapter int, word, definition, info string) Row {
	return Row{Category: models.Adverb, Chapter: chapter, Values: map[string]any{
		"word": word, "definition": definition, "otherInformation": info,
	}}
}

// Preposition builds a Preposition fixture row.
func Preposition(chapter int, first, second, governedCase, definition string) Row {
	return Row{Category: models.Preposition, Chapter: chapter, Values: map[string]any{
		"firstForm": first, "secondForm": second, "governedCase": governedCase, "definition": definition,
	}}
}

// Vocabulary is a small sample spread over several chapters. Chapter 1 has
// no adverbs.
func Vocabulary() []Row {
	return []Row{
		Noun(1, "puella", "puellae", "f.", "girl", "", false),
		Noun(2, "mēnsa", "mēnsae", "f.", "table", "", false),
		Noun(3, "ignis", "ignis", "m.", "fire", "", true),
		Noun(3, "mare", "maris", "n.", "sea", "abl. sg. marī", true),
		Verb(1, [6]string{"amō", "amāre", "amāvī", "amātum", "", ""}, "", "love", ""),
		Verb(4, [6]string{"lavō", "lavāre", "lāvī", "lautum", "lavāvī", "lavātum"}, "", "wash", ""),
		Verb(5, [6]string{"pāreō", "pārēre", "pāruī", "", "", ""}, "dative", "obey", "intransitive"),
		Forms(models.Adjective, 2, []string{"bonus", "bona", "bonum"}, "good", ""),
		Forms(models.Adjective, 6, []string{"ācer", "ācris", "ācre"}, "sharp, keen", "third declension"),
		Adverb(2, "nōn", "not", ""),
		Adverb(5, "saepe", "often", ""),
		Forms(models.CoordinatingConjunction, 1, []string{"et"}, "and", ""),
		Forms(models.CoordinatingConjunction, 3, []string{"sed"}, "but", ""),
		Preposition(3, "ad", "", "accusative", "to, toward"),
		Preposition(3, "in", "", "ablative", "in, on"),
		Preposition(4, "ā", "ab", "ablative", "from, away from"),
		Forms(models.Pronoun, 7, []string{"is", "ea", "id"}, "he, she, it; this, that", ""),
		Forms(models.SubordinatingConjunction, 8, []string{"cum"}, "when, since, although", "with subjunctive"),
	}
}
