package app

import (
	"sort"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// Match filters the catalog against every present hard constraint and orders
// the survivors by specificity. Hard constraints: city, property type, price
// band, guest capacity, requested features (subset test). District only
// affects ranking and dates never filter at all: the catalog carries no
// availability calendar.
func Match(f domain.Filter, cat *Catalog) ([]domain.Listing, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.IsUnderspecified() {
		return nil, domain.ErrUnderspecifiedFilter
	}

	foldedCity := ""
	if f.City != nil {
		foldedCity = shared.Fold(*f.City)
	}
	foldedDist := ""
	if f.District != nil {
		foldedDist = shared.Fold(*f.District)
	}
	wantFeatures := make([]string, 0, len(f.Features))
	for _, tag := range f.Features {
		wantFeatures = append(wantFeatures, CanonicalFeature(tag))
	}

	type scored struct {
		listing domain.Listing
		score   int
	}
	var matched []scored

	for _, e := range cat.entries {
		if foldedCity != "" && e.foldedCity != foldedCity {
			continue
		}
		if f.PropertyType != nil && e.listing.PropertyType != *f.PropertyType {
			continue
		}
		if f.PriceMin != nil && e.listing.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && e.listing.Price > *f.PriceMax {
			continue
		}
		if f.GuestCount != nil && e.listing.GuestCapacity < *f.GuestCount {
			continue
		}
		subset := true
		for _, tag := range wantFeatures {
			if !e.featureIndex[tag] {
				subset = false
				break
			}
		}
		if !subset {
			continue
		}

		// Specificity: one point per present criterion this listing satisfies.
		// Hard criteria are satisfied by construction, so district, the only
		// soft one, is what separates scores in practice.
		score := 0
		if foldedCity != "" {
			score++
		}
		if f.PropertyType != nil {
			score++
		}
		if f.PriceMin != nil || f.PriceMax != nil {
			score++
		}
		if f.GuestCount != nil {
			score++
		}
		score += len(wantFeatures)
		if foldedDist != "" && e.foldedDist == foldedDist {
			score++
		}

		matched = append(matched, scored{listing: e.listing, score: score})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		if matched[i].listing.Price != matched[j].listing.Price {
			return matched[i].listing.Price < matched[j].listing.Price
		}
		return matched[i].listing.Title < matched[j].listing.Title
	})

	out := make([]domain.Listing, len(matched))
	for i, m := range matched {
		out[i] = m.listing
	}
	return out, nil
}
