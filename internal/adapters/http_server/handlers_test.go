package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/domain"
)

type fakeInterp struct {
	f   domain.Filter
	err error
}

func (f *fakeInterp) Interpret(_ context.Context, _ string) (domain.Filter, error) {
	return f.f, f.err
}

type fakeSearcher struct {
	got  domain.Filter
	resp domain.SearchResponse
	err  error
}

func (f *fakeSearcher) Search(_ context.Context, fl domain.Filter) (domain.SearchResponse, error) {
	f.got = fl
	return f.resp, f.err
}

type fakeCatalog struct{ ls []domain.Listing }

func (f *fakeCatalog) Listings() []domain.Listing { return f.ls }

func newTestServer(h *httpserver.Handlers) *httptest.Server {
	s := httpserver.New([]string{"*"})
	s.MountHandlers(h)
	return httptest.NewServer(s.Mux())
}

func TestParse_OK(t *testing.T) {
	city := "Antalya"
	h := &httpserver.Handlers{
		Interp:  &fakeInterp{f: domain.Filter{City: &city, RawQuery: "antalya otel"}},
		Search:  &fakeSearcher{},
		Catalog: &fakeCatalog{},
	}
	ts := newTestServer(h)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/parse", "application/json", strings.NewReader(`{"query":"antalya otel"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var f domain.Filter
	if err := json.NewDecoder(res.Body).Decode(&f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.City == nil || *f.City != "Antalya" {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestParse_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty query", domain.ErrEmptyQuery, http.StatusBadRequest},
		{"url query", domain.ErrInvalidQuery, http.StatusBadRequest},
		{"backend failure", domain.ErrInterpretationFailed, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &httpserver.Handlers{
				Interp:  &fakeInterp{err: tc.err},
				Search:  &fakeSearcher{},
				Catalog: &fakeCatalog{},
			}
			ts := newTestServer(h)
			defer ts.Close()

			res, err := http.Post(ts.URL+"/api/parse", "application/json", strings.NewReader(`{"query":"x"}`))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer res.Body.Close()
			if res.StatusCode != tc.want {
				t.Fatalf("status %d, want %d", res.StatusCode, tc.want)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("content type %q", ct)
			}
		})
	}
}

func TestSearch_ManualRawQueryDefault(t *testing.T) {
	fs := &fakeSearcher{resp: domain.SearchResponse{Results: []domain.Result{}, Source: domain.SourceLocal}}
	h := &httpserver.Handlers{Interp: &fakeInterp{}, Search: fs, Catalog: &fakeCatalog{}}
	ts := newTestServer(h)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/search", "application/json",
		strings.NewReader(`{"filters":{"city":"Bodrum"}}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if fs.got.RawQuery != domain.ManualQuery {
		t.Fatalf("raw_query = %q, want %q", fs.got.RawQuery, domain.ManualQuery)
	}
}

func TestSearch_UnderspecifiedIs400(t *testing.T) {
	h := &httpserver.Handlers{
		Interp:  &fakeInterp{},
		Search:  &fakeSearcher{err: domain.ErrUnderspecifiedFilter},
		Catalog: &fakeCatalog{},
	}
	ts := newTestServer(h)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/search", "application/json", strings.NewReader(`{"filters":{}}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestSuggestionsAndAccommodations(t *testing.T) {
	d := "Kalkan"
	h := &httpserver.Handlers{
		Interp: &fakeInterp{},
		Search: &fakeSearcher{},
		Catalog: &fakeCatalog{ls: []domain.Listing{{
			ID: "1", Title: "Kalkan Villa", City: "Antalya", District: &d,
			PropertyType: domain.TypeVilla, Price: 9000, GuestCapacity: 6,
		}}},
	}
	ts := newTestServer(h)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/api/suggestions")
	if err != nil {
		t.Fatalf("GET suggestions: %v", err)
	}
	var sug map[string][]string
	if err := json.NewDecoder(res.Body).Decode(&sug); err != nil {
		t.Fatalf("decode suggestions: %v", err)
	}
	res.Body.Close()
	if len(sug["cities"]) == 0 || len(sug["features"]) == 0 || len(sug["property_types"]) == 0 {
		t.Fatalf("incomplete suggestions: %v", sug)
	}

	res, err = http.Get(ts.URL + "/api/accommodations")
	if err != nil {
		t.Fatalf("GET accommodations: %v", err)
	}
	defer res.Body.Close()
	var acc struct {
		Accommodations []domain.Listing `json:"accommodations"`
		Count          int              `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&acc); err != nil {
		t.Fatalf("decode accommodations: %v", err)
	}
	if acc.Count != 1 || len(acc.Accommodations) != 1 || acc.Accommodations[0].Title != "Kalkan Villa" {
		t.Fatalf("unexpected body: %+v", acc)
	}
}

func TestHealthz(t *testing.T) {
	h := &httpserver.Handlers{Interp: &fakeInterp{}, Search: &fakeSearcher{}, Catalog: &fakeCatalog{}}
	ts := newTestServer(h)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}
