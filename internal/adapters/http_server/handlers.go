package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// QueryInterpreter turns free text into a structured Filter.
type QueryInterpreter interface {
	Interpret(ctx context.Context, text string) (domain.Filter, error)
}

// Searcher runs the local-first search pipeline for a Filter.
type Searcher interface {
	Search(ctx context.Context, f domain.Filter) (domain.SearchResponse, error)
}

// CatalogReader exposes the startup listing snapshot.
type CatalogReader interface {
	Listings() []domain.Listing
}

type Handlers struct {
	Interp  QueryInterpreter
	Search  Searcher
	Catalog CatalogReader
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api/parse", h.parseQuery)
	s.mux.Post("/api/search", h.search)
	s.mux.Get("/api/suggestions", h.suggestions)
	s.mux.Get("/api/accommodations", h.accommodations)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// statusFor maps domain errors to HTTP statuses. Anything unrecognized is a
// plain 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return http.StatusBadRequest, "Empty Query"
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, "Invalid Query"
	case errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest, "Invalid Filter"
	case errors.Is(err, domain.ErrUnderspecifiedFilter):
		return http.StatusBadRequest, "Underspecified Filter"
	case errors.Is(err, domain.ErrInterpretationFailed):
		return http.StatusBadGateway, "Interpretation Failed"
	default:
		return http.StatusInternalServerError, "Internal Error"
	}
}

func (h *Handlers) parseQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with a query field")
		return
	}
	f, err := h.Interp.Interpret(r.Context(), req.Query)
	if err != nil {
		status, title := statusFor(err)
		writeProblem(w, status, title, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filters domain.Filter `json:"filters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with a filters object")
		return
	}
	// manual form submissions arrive without a raw query
	if req.Filters.RawQuery == "" {
		req.Filters.RawQuery = domain.ManualQuery
	}
	resp, err := h.Search.Search(r.Context(), req.Filters)
	if err != nil {
		status, title := statusFor(err)
		writeProblem(w, status, title, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":         shared.SuggestedCities,
		"features":       shared.SuggestedFeatures,
		"property_types": shared.SuggestedPropertyTypes,
	})
}

func (h *Handlers) accommodations(w http.ResponseWriter, r *http.Request) {
	ls := h.Catalog.Listings()
	writeJSON(w, http.StatusOK, map[string]any{
		"accommodations": ls,
		"count":          len(ls),
	})
}
