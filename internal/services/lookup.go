package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lehmann314159/latinvocab/internal/models"
	"github.com/lehmann314159/latinvocab/internal/repository"
)

// Scope selects which chapters a lookup covers.
type Scope int

const (
	// ScopeChapter covers a single chapter.
	ScopeChapter Scope = iota
	// ScopeCumulative covers chapters 1 through the requested chapter.
	ScopeCumulative
	// ScopeSearch is ScopeCumulative narrowed by a search term.
	ScopeSearch
)

// Request describes one lookup. Categories optionally restricts the lookup
// to a subset; results still follow registry order.
type Request struct {
	Chapter    models.Chapter
	Scope      Scope
	Term       string
	Mode       models.SearchMode
	Categories []models.Category
}

// LookupService answers vocabulary lookups against a Store
type LookupService struct {
	store  repository.Store
	logger *slog.Logger
}

// NewLookupService creates a lookup service. A nil logger uses slog.Default.
func NewLookupService(store repository.Store, logger *slog.Logger) *LookupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupService{
		store:  store,
		logger: logger,
	}
}

// EntriesForChapter returns the entries introduced in chapter ch
func (s *LookupService) EntriesForChapter(ctx context.Context, ch models.Chapter) (*models.LookupResult, error) {
	return s.Lookup(ctx, Request{Chapter: ch, Scope: ScopeChapter})
}

// EntriesUpToChapter returns the entries introduced in chapters 1 through ch
func (s *LookupService) EntriesUpToChapter(ctx context.Context, ch models.Chapter) (*models.LookupResult, error) {
	return s.Lookup(ctx, Request{Chapter: ch, Scope: ScopeCumulative})
}

// Search returns the entries of chapters 1 through ch matching term. The
// term is not special-cased: an empty word search matches every entry.
func (s *LookupService) Search(ctx context.Context, ch models.Chapter, term string, mode models.SearchMode) (*models.LookupResult, error) {
	return s.Lookup(ctx, Request{Chapter: ch, Scope: ScopeSearch, Term: term, Mode: mode})
}

// Lookup runs one query per category in registry order and formats every
// row. Categories without matches are left out of the result.
func (s *LookupService) Lookup(ctx context.Context, req Request) (*models.LookupResult, error) {
	if err := req.Chapter.Validate(); err != nil {
		return nil, err
	}

	categories, err := selectCategories(req.Categories)
	if err != nil {
		return nil, err
	}

	result := &models.LookupResult{
		Categories: []models.Category{},
		Entries:    [][]models.DictionaryEntry{},
	}

	for _, c := range categories {
		sel, err := buildSelection(c, req)
		if err != nil {
			return nil, err
		}

		entries, err := s.fetch(ctx, sel)
		if err != nil {
			s.logger.ErrorContext(ctx, "lookup query failed",
				slog.String("category", c.String()),
				slog.Int("chapter", int(req.Chapter)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}

		s.logger.DebugContext(ctx, "lookup query",
			slog.String("category", c.String()),
			slog.Int("chapter", int(req.Chapter)),
			slog.Int("rows", len(entries)),
		)
		result.Add(c, entries)
	}

	return result, nil
}

func (s *LookupService) fetch(ctx context.Context, sel repository.Selection) ([]models.DictionaryEntry, error) {
	var entries []models.DictionaryEntry
	for row, err := range s.store.Execute(ctx, sel) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, sel.Category.Format(row))
	}
	return entries, nil
}

func buildSelection(c models.Category, req Request) (repository.Selection, error) {
	switch req.Scope {
	case ScopeChapter:
		return repository.BuildChapterQuery(c, req.Chapter)
	case ScopeCumulative:
		return repository.BuildCumulativeQuery(c, req.Chapter)
	case ScopeSearch:
		return repository.BuildSearchQuery(c, req.Chapter, req.Term, req.Mode)
	default:
		return repository.Selection{}, fmt.Errorf("unknown lookup scope %d", int(req.Scope))
	}
}

// selectCategories returns the requested subset in registry order, or every
// category when none was requested.
func selectCategories(requested []models.Category) ([]models.Category, error) {
	if len(requested) == 0 {
		return models.Categories(), nil
	}

	wanted := make(map[models.Category]bool, len(requested))
	for _, c := range requested {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %d", models.ErrUnknownCategory, int(c))
		}
		wanted[c] = true
	}

	var out []models.Category
	for _, c := range models.Categories() {
		if wanted[c] {
			out = append(out, c)
		}
	}
	return out, nil
}
