package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
)

type fakeNLU struct {
	payload map[string]any
	err     error
	calls   int
}

func (f *fakeNLU) ExtractFilters(_ context.Context, _ string) (map[string]any, error) {
	f.calls++
	return f.payload, f.err
}

// memCache is an in-process domain.Cache used to exercise the parse cache
// without redis.
type memCache struct {
	data map[string][]byte
	sets int
	hits int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any, _ int) error {
	b, _ := json.Marshal(v)
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memCache) Del(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func TestInterpret_EmptyQuery(t *testing.T) {
	i := app.NewInterpreter(&fakeNLU{}, nil, time.Minute)
	for _, q := range []string{"", "   ", "\t\n"} {
		if _, err := i.Interpret(context.Background(), q); !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("query %q: got %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestInterpret_URLRejected(t *testing.T) {
	nlu := &fakeNLU{}
	i := app.NewInterpreter(nlu, nil, time.Minute)
	_, err := i.Interpret(context.Background(), "https://example.com/antalya-otelleri")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("got %v, want ErrInvalidQuery", err)
	}
	if nlu.calls != 0 {
		t.Fatal("backend must not be called for a URL query")
	}
}

func TestInterpret_BackendFailure(t *testing.T) {
	i := app.NewInterpreter(&fakeNLU{err: errors.New("boom")}, nil, time.Minute)
	_, err := i.Interpret(context.Background(), "antalya otel")
	if !errors.Is(err, domain.ErrInterpretationFailed) {
		t.Fatalf("got %v, want ErrInterpretationFailed", err)
	}
}

func TestInterpret_Success(t *testing.T) {
	nlu := &fakeNLU{payload: map[string]any{
		"city":          "Antalya",
		"property_type": "villa",
		"features":      []any{"havuzlu"},
	}}
	i := app.NewInterpreter(nlu, nil, time.Minute)
	f, err := i.Interpret(context.Background(), "  Antalya'da havuzlu villa  ")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if f.City == nil || *f.City != "Antalya" {
		t.Fatalf("city = %v", f.City)
	}
	if f.PropertyType == nil || *f.PropertyType != domain.TypeVilla {
		t.Fatalf("property_type = %v", f.PropertyType)
	}
	if len(f.Features) != 1 || f.Features[0] != "pool" {
		t.Fatalf("features = %v", f.Features)
	}
	if f.RawQuery != "Antalya'da havuzlu villa" {
		t.Fatalf("raw_query = %q, want trimmed input", f.RawQuery)
	}
	if f.Degraded {
		t.Fatal("unexpected degraded flag")
	}
}

func TestInterpret_CacheShortCircuits(t *testing.T) {
	nlu := &fakeNLU{payload: map[string]any{"city": "Bodrum"}}
	cache := newMemCache()
	i := app.NewInterpreter(nlu, cache, time.Minute)

	if _, err := i.Interpret(context.Background(), "Bodrum otelleri"); err != nil {
		t.Fatalf("first Interpret: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("sets = %d, want 1", cache.sets)
	}

	// same query modulo case and diacritics hits the same cache entry
	f, err := i.Interpret(context.Background(), "BODRUM otelleri")
	if err != nil {
		t.Fatalf("second Interpret: %v", err)
	}
	if nlu.calls != 1 {
		t.Fatalf("backend calls = %d, want 1 (cache hit expected)", nlu.calls)
	}
	if f.RawQuery != "BODRUM otelleri" {
		t.Fatalf("raw_query = %q, want the caller's own text", f.RawQuery)
	}
}

func TestInterpret_InvalidCombinationNotCached(t *testing.T) {
	nlu := &fakeNLU{payload: map[string]any{
		"city":      "Bodrum",
		"price_min": float64(9000),
		"price_max": float64(2000),
	}}
	cache := newMemCache()
	i := app.NewInterpreter(nlu, cache, time.Minute)

	_, err := i.Interpret(context.Background(), "Bodrum")
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("got %v, want ErrInvalidFilter", err)
	}
	if cache.sets != 0 {
		t.Fatal("failed interpretations must not be cached")
	}
}
