package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/domain"
)

// SearchService runs the match → conditional-fallback → reconcile pipeline.
// It holds no per-request state; one instance serves all requests over the
// shared read-only catalog.
type SearchService struct {
	catalog    *Catalog
	web        domain.WebSearcher
	minLocal   int
	maxResults int
}

func NewSearchService(cat *Catalog, web domain.WebSearcher, minLocal, maxResults int) *SearchService {
	return &SearchService{catalog: cat, web: web, minLocal: minLocal, maxResults: maxResults}
}

func (s *SearchService) Search(ctx context.Context, f domain.Filter) (domain.SearchResponse, error) {
	local, err := Match(f, s.catalog)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	// nil means the fallback did not run or failed; an empty non-nil slice is
	// a successful provider call with no usable hits.
	var web []domain.Result
	if len(local) < s.minLocal && s.web != nil {
		res, werr := s.web.Search(ctx, f)
		if werr != nil {
			// non-fatal: degrade to whatever local results exist
			log.Warn().Err(werr).Int("local", len(local)).Msg("web fallback unavailable, serving local results")
			observability.ObserveFallback("error")
		} else {
			if res == nil {
				res = []domain.Result{}
			}
			web = res
			observability.ObserveFallback("ok")
		}
	}

	resp := Reconcile(local, web, s.maxResults)
	observability.ObserveSearch(string(resp.Source))
	return resp, nil
}
