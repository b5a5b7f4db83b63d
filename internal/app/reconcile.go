package app

import (
	"fmt"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

const maxDisplayFeatures = 6

// Reconcile merges the matcher's and (optionally) the web searcher's output
// into the final ordered response. web == nil means the fallback did not run
// or failed: local listings are projected in matcher order with source=local.
// A non-nil web slice, even an empty one, replaces the local set wholesale
// with source=web: web results are presented as real-time and supersede
// cached catalog entries rather than being interleaved.
func Reconcile(local []domain.Listing, web []domain.Result, maxResults int) domain.SearchResponse {
	var results []domain.Result
	source := domain.SourceLocal

	if web != nil {
		source = domain.SourceWeb
		seen := make(map[string]bool, len(web))
		for _, r := range web {
			key := dedupeKey(r)
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, r)
		}
	} else {
		results = make([]domain.Result, 0, len(local))
		for _, l := range local {
			results = append(results, ProjectListing(l))
		}
	}

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	for i := range results {
		if len(results[i].Features) > maxDisplayFeatures {
			results[i].Features = results[i].Features[:maxDisplayFeatures]
		}
	}
	if results == nil {
		results = []domain.Result{}
	}
	return domain.SearchResponse{Results: results, Count: len(results), Source: source}
}

// ProjectListing maps a catalog Listing onto the display Result shape.
func ProjectListing(l domain.Listing) domain.Result {
	city := l.City
	desc := l.Description
	price := fmt.Sprintf("%.0f TL", l.Price)
	r := domain.Result{
		Title:    l.Title,
		City:     &city,
		District: l.District,
		Features: append([]string(nil), l.Features...),
		Image:    l.ImageURL,
		URL:      l.DetailURL,
		Price:    &price,
	}
	if desc != "" {
		r.Description = &desc
	}
	return r
}

func dedupeKey(r domain.Result) string {
	city := ""
	if r.City != nil {
		city = *r.City
	}
	return shared.Fold(r.Title) + "|" + shared.Fold(city)
}
