package app

import (
	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// catalogEntry pairs a listing with its precomputed folded fields so a query
// never re-folds catalog text.
type catalogEntry struct {
	listing      domain.Listing
	foldedCity   string
	foldedDist   string
	featureIndex map[string]bool
}

// Catalog is an immutable snapshot of the local listing set, loaded once at
// process start. Concurrent readers share it without coordination.
type Catalog struct {
	entries []catalogEntry
}

func NewCatalog(listings []domain.Listing) *Catalog {
	entries := make([]catalogEntry, 0, len(listings))
	for _, l := range listings {
		e := catalogEntry{
			listing:      l,
			foldedCity:   shared.Fold(l.City),
			featureIndex: make(map[string]bool, len(l.Features)),
		}
		if l.District != nil {
			e.foldedDist = shared.Fold(*l.District)
		}
		for _, f := range l.Features {
			e.featureIndex[CanonicalFeature(f)] = true
		}
		entries = append(entries, e)
	}
	return &Catalog{entries: entries}
}

func (c *Catalog) Len() int { return len(c.entries) }

// Listings returns the raw listing set in load order (a fresh slice; callers
// may not mutate the snapshot).
func (c *Catalog) Listings() []domain.Listing {
	out := make([]domain.Listing, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.listing
	}
	return out
}
