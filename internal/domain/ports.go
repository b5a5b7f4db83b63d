package domain

import "context"

type ListingRepository interface {
	// Write path (seeder)
	UpsertListing(ctx context.Context, l Listing) error

	// Read path: full snapshot for the startup catalog load.
	LoadListings(ctx context.Context) ([]Listing, error)
}

// NLUClient extracts structured travel-search attributes from free text.
// The payload is the backend's raw (already schema-checked) JSON object; the
// interpreter owns mapping it into a Filter.
type NLUClient interface {
	ExtractFilters(ctx context.Context, query string) (map[string]any, error)
}

// WebSearcher returns ranked, normalized web results for a Filter.
type WebSearcher interface {
	Search(ctx context.Context, f Filter) ([]Result, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
