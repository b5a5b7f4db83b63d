package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

// Interpreter turns free text into a validated Filter. The semantic
// extraction is delegated to the NLU port; this service owns the query gate,
// the normalization of the raw payload, and the parse cache.
type Interpreter struct {
	nlu      domain.NLUClient
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewInterpreter(nlu domain.NLUClient, cache domain.Cache, ttl time.Duration) *Interpreter {
	return &Interpreter{nlu: nlu, cache: cache, cacheTTL: ttl, now: time.Now}
}

func (i *Interpreter) Interpret(ctx context.Context, text string) (domain.Filter, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Filter{}, domain.ErrEmptyQuery
	}
	low := strings.ToLower(trimmed)
	if strings.HasPrefix(low, "http://") || strings.HasPrefix(low, "https://") {
		// a query is never a resource locator
		return domain.Filter{}, fmt.Errorf("%w: looks like a URL", domain.ErrInvalidQuery)
	}

	key := parseCacheKey(trimmed)
	var cached domain.Filter
	if i.cache != nil {
		if ok, _ := i.cache.Get(ctx, key, &cached); ok {
			cached.RawQuery = trimmed
			return cached, nil
		}
	}

	raw, err := i.nlu.ExtractFilters(ctx, trimmed)
	if err != nil {
		return domain.Filter{}, fmt.Errorf("%w: %v", domain.ErrInterpretationFailed, err)
	}

	f, degraded := NormalizeFilter(raw, trimmed, i.now())
	f.Degraded = degraded
	if err := f.Validate(); err != nil {
		// the backend produced an impossible combination; surface it, don't repair
		return domain.Filter{}, err
	}
	if degraded {
		log.Warn().Str("query", trimmed).Msg("degraded parse: some extracted fields were dropped")
	}

	// failures are never cached; degraded parses are, they are deterministic
	if i.cache != nil {
		_ = i.cache.Set(ctx, key, f, int(i.cacheTTL.Seconds()))
	}
	return f, nil
}

func parseCacheKey(query string) string {
	sum := sha1.Sum([]byte(shared.Fold(query)))
	return "parse:" + hex.EncodeToString(sum[:])
}
