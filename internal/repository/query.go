package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lehmann314159/latinvocab/internal/models"
)

// chapterColumn is present in every category table.
const chapterColumn = "chapter"

// foldFunc is the Unicode-aware lowercase function registered on every
// store connection. SQLite's own lower() only folds ASCII, so "Ō" would
// never match "[oō]".
const foldFunc = "unicode_lower"

// Selection is a parameterized query over one category table. It is only a
// description; executing it is the Store's job.
type Selection struct {
	Category models.Category
	SQL      string
	Args     []any
}

// BuildChapterQuery selects the rows introduced in exactly chapter ch.
func BuildChapterQuery(c models.Category, ch models.Chapter) (Selection, error) {
	if err := validate(c, ch); err != nil {
		return Selection{}, err
	}
	return toSelection(c, selectFrom(c).Where(sq.Eq{chapterColumn: int(ch)}))
}

// BuildCumulativeQuery selects the rows introduced in chapters 1 through ch.
func BuildCumulativeQuery(c models.Category, ch models.Chapter) (Selection, error) {
	if err := validate(c, ch); err != nil {
		return Selection{}, err
	}
	return toSelection(c, selectFrom(c).Where(sq.LtOrEq{chapterColumn: int(ch)}))
}

// BuildSearchQuery selects the rows of chapters 1 through ch that match
// term. By word, any of the category's word columns must start with the
// vowel-length-insensitive prefix; by definition, the definition must
// contain the term.
func BuildSearchQuery(c models.Category, ch models.Chapter, term string, mode models.SearchMode) (Selection, error) {
	if err := validate(c, ch); err != nil {
		return Selection{}, err
	}

	query := selectFrom(c).Where(sq.LtOrEq{chapterColumn: int(ch)})

	switch mode {
	case models.SearchByWord:
		pattern := models.WordPattern(term)
		matches := sq.Or{}
		for _, col := range c.SearchColumns() {
			matches = append(matches, sq.Expr(foldFunc+"("+col+") GLOB ?", pattern))
		}
		query = query.Where(matches)
	case models.SearchByDefinition:
		query = query.Where(sq.Expr("definition LIKE ? ESCAPE ?", models.DefinitionPattern(term), models.LikeEscape))
	default:
		return Selection{}, fmt.Errorf("%w: %d", models.ErrInvalidSearchMode, int(mode))
	}

	return toSelection(c, query)
}

func validate(c models.Category, ch models.Chapter) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", models.ErrUnknownCategory, int(c))
	}
	return ch.Validate()
}

func selectFrom(c models.Category) sq.SelectBuilder {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Question).
		Select(c.Columns()...).
		From(c.Table()).
		OrderBy(c.SortColumn() + " ASC")
}

func toSelection(c models.Category, query sq.SelectBuilder) (Selection, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return Selection{}, fmt.Errorf("build %s query: %w", c, err)
	}
	return Selection{Category: c, SQL: sql, Args: args}, nil
}
