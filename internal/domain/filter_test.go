package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayfinder/internal/domain"
)

func pf(f float64) *float64 { return &f }
func pi(i int) *int         { return &i }

func TestFilter_Validate_PriceBandInverted(t *testing.T) {
	f := domain.Filter{PriceMin: pf(5000), PriceMax: pf(1000)}
	if err := f.Validate(); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestFilter_Validate_DatesInverted(t *testing.T) {
	in := domain.NewDate(2026, time.September, 5)
	out := domain.NewDate(2026, time.September, 2)
	f := domain.Filter{CheckInDate: &in, CheckOutDate: &out}
	if err := f.Validate(); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}

	// equal dates are invalid too: check-in must strictly precede check-out
	f = domain.Filter{CheckInDate: &in, CheckOutDate: &in}
	if err := f.Validate(); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter for equal dates, got %v", err)
	}
}

func TestFilter_Validate_GuestCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		f := domain.Filter{GuestCount: pi(n)}
		if err := f.Validate(); !errors.Is(err, domain.ErrInvalidFilter) {
			t.Fatalf("guest_count=%d: expected ErrInvalidFilter, got %v", n, err)
		}
	}
}

func TestFilter_Validate_OK(t *testing.T) {
	city := "Antalya"
	pt := domain.TypeVilla
	in := domain.NewDate(2026, time.September, 2)
	out := domain.NewDate(2026, time.September, 5)
	f := domain.Filter{
		City:         &city,
		PriceMin:     pf(1000),
		PriceMax:     pf(8000),
		GuestCount:   pi(4),
		PropertyType: &pt,
		Features:     []string{"pool", "sea-view"},
		CheckInDate:  &in,
		CheckOutDate: &out,
		RawQuery:     "antalya'da havuzlu villa",
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestFilter_IsUnderspecified(t *testing.T) {
	f := domain.Filter{RawQuery: domain.ManualQuery}
	if !f.IsUnderspecified() {
		t.Fatal("raw_query-only filter should be underspecified")
	}
	city := "Sapanca"
	f.City = &city
	if f.IsUnderspecified() {
		t.Fatal("filter with a city should not be underspecified")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := domain.NewDate(2026, time.September, 2)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-09-02"` {
		t.Fatalf("unexpected date encoding: %s", b)
	}
	var got domain.Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != d {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
