package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lehmann314159/latinvocab/internal/models"
	"github.com/lehmann314159/latinvocab/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	lookup *services.LookupService
	logger *slog.Logger

	// The store behind lookup is not safe for concurrent callers.
	mu sync.Mutex
}

// NewHandler creates a new handler. A nil logger uses slog.Default.
func NewHandler(lookup *services.LookupService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		lookup: lookup,
		logger: logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategoryResponse describes one category
type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LookupResponse is the JSON form of a lookup result. Entries[i] belongs to
// Categories[i].
type LookupResponse struct {
	Chapter    int                        `json:"chapter"`
	Categories []CategoryResponse         `json:"categories"`
	Entries    [][]models.DictionaryEntry `json:"entries"`
	Total      int                        `json:"total"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := models.Categories()
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// ChapterEntries handles GET /api/v1/chapters/{chapter}/entries
func (h *Handler) ChapterEntries(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, services.ScopeChapter)
}

// CumulativeEntries handles GET /api/v1/chapters/{chapter}/cumulative
func (h *Handler) CumulativeEntries(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, services.ScopeCumulative)
}

// SearchEntries handles GET /api/v1/chapters/{chapter}/search?q=&mode=
func (h *Handler) SearchEntries(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, services.ScopeSearch)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) serveLookup(w http.ResponseWriter, r *http.Request, scope services.Scope) {
	req, err := parseRequest(r, scope)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	result, err := h.lookup.Lookup(r.Context(), req)
	h.mu.Unlock()
	if err != nil {
		if isBadRequest(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to look up entries")
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=vocabulary.csv")
		if err := services.WriteCSV(w, result); err != nil {
			// Headers are already sent; all that is left is to record it.
			h.logger.ErrorContext(r.Context(), "failed to write csv",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse(req.Chapter, result))
}

// parseRequest reads the chapter URL parameter and the category, q and mode
// query parameters. A search with an empty term is served as the cumulative
// view.
func parseRequest(r *http.Request, scope services.Scope) (services.Request, error) {
	ch, err := models.ParseChapter(chi.URLParam(r, "chapter"))
	if err != nil {
		return services.Request{}, err
	}
	req := services.Request{Chapter: ch, Scope: scope}

	query := r.URL.Query()
	for _, raw := range query["category"] {
		for _, name := range strings.Split(raw, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			c, err := models.ParseCategory(name)
			if err != nil {
				return services.Request{}, err
			}
			req.Categories = append(req.Categories, c)
		}
	}

	if scope == services.ScopeSearch {
		req.Term = strings.TrimSpace(query.Get("q"))
		if req.Term == "" {
			req.Scope = services.ScopeCumulative
			return req, nil
		}
		mode, err := models.ParseSearchMode(query.Get("mode"))
		if err != nil {
			return services.Request{}, err
		}
		req.Mode = mode
	}

	return req, nil
}

func isBadRequest(err error) bool {
	return errors.Is(err, models.ErrInvalidChapter) ||
		errors.Is(err, models.ErrInvalidSearchMode) ||
		errors.Is(err, models.ErrUnknownCategory)
}

func categoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID(), Label: c.Label()}
}

func lookupResponse(ch models.Chapter, result *models.LookupResult) LookupResponse {
	resp := LookupResponse{
		Chapter:    int(ch),
		Categories: make([]CategoryResponse, len(result.Categories)),
		Entries:    result.Entries,
		Total:      result.Len(),
	}
	for i, c := range result.Categories {
		resp.Categories[i] = categoryResponse(c)
	}
	return resp
}
