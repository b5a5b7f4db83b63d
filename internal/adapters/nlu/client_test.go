package nlu_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayfinder/internal/adapters/nlu"
)

func chatPayload(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestClient_ExtractFilters_FencedCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(chatPayload(
			"```json\n{\"city\":\"Antalya\",\"guest_count\":4,\"features\":[\"havuzlu\"]}\n```"))
	}))
	defer ts.Close()

	cl, err := nlu.New(ts.URL, "test-key", "test-model", 100, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.ExtractFilters(ctx, "antalya'da havuzlu villa 4 kişi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["city"] != "Antalya" {
		t.Fatalf("city = %v", got["city"])
	}
	if n, ok := got["guest_count"].(float64); !ok || n != 4 {
		t.Fatalf("guest_count = %v", got["guest_count"])
	}
}

func TestClient_ExtractFilters_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	cl, _ := nlu.New(ts.URL, "test-key", "test-model", 100, time.Second)
	if _, err := cl.ExtractFilters(context.Background(), "sorgu"); err == nil {
		t.Fatal("expected error for 500")
	}
}

func TestClient_ExtractFilters_SchemaViolation(t *testing.T) {
	// features as a bare number violates the payload schema
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatPayload(`{"city":"Antalya","features":123}`))
	}))
	defer ts.Close()

	cl, _ := nlu.New(ts.URL, "test-key", "test-model", 100, time.Second)
	if _, err := cl.ExtractFilters(context.Background(), "sorgu"); err == nil {
		t.Fatal("expected schema check failure")
	}
}

func TestClient_New_RequiresKey(t *testing.T) {
	if _, err := nlu.New("http://x", "", "m", 5, time.Second); err == nil {
		t.Fatal("expected error for missing key")
	}
}
