package domain

import (
	"fmt"
	"strings"
	"time"
)

// ManualQuery is the raw_query sentinel set by form-driven callers that build
// a Filter themselves and skip the interpreter.
const ManualQuery = "manual"

type PropertyType string

const (
	TypeHotel         PropertyType = "hotel"
	TypeVilla         PropertyType = "villa"
	TypeApart         PropertyType = "apart"
	TypeBungalow      PropertyType = "bungalow"
	TypeResort        PropertyType = "resort"
	TypeBoutiqueHotel PropertyType = "boutique-hotel"
	TypeGuesthouse    PropertyType = "guesthouse"
)

var propertyTypes = map[PropertyType]bool{
	TypeHotel: true, TypeVilla: true, TypeApart: true, TypeBungalow: true,
	TypeResort: true, TypeBoutiqueHotel: true, TypeGuesthouse: true,
}

func ValidPropertyType(t PropertyType) bool { return propertyTypes[t] }

// Date is a calendar date without a time-of-day component. It marshals as
// "YYYY-MM-DD".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(y int, m time.Month, d int) Date { return Date{Year: y, Month: m, Day: d} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidFilter, s)
	}
	d.Year, d.Month, d.Day = t.Year(), t.Month(), t.Day()
	return nil
}

// Filter is the structured search intent shared by the interpreter and the
// manual form path. Every field is optional; Validate enforces the cross-field
// invariants, not presence.
type Filter struct {
	City         *string       `json:"city,omitempty"`
	District     *string       `json:"district,omitempty"`
	PriceMin     *float64      `json:"price_min,omitempty"`
	PriceMax     *float64      `json:"price_max,omitempty"`
	GuestCount   *int          `json:"guest_count,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	Features     []string      `json:"features,omitempty"`
	CheckInDate  *Date         `json:"check_in_date,omitempty"`
	CheckOutDate *Date         `json:"check_out_date,omitempty"`
	RawQuery     string        `json:"raw_query"`

	// Degraded marks a syntactically valid Filter that was only partially
	// extracted from the input text.
	Degraded bool `json:"degraded,omitempty"`
}

func (f Filter) Validate() error {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return fmt.Errorf("%w: price_min must be non-negative", ErrInvalidFilter)
	}
	if f.PriceMax != nil && *f.PriceMax < 0 {
		return fmt.Errorf("%w: price_max must be non-negative", ErrInvalidFilter)
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return fmt.Errorf("%w: price_min %.2f exceeds price_max %.2f", ErrInvalidFilter, *f.PriceMin, *f.PriceMax)
	}
	if f.GuestCount != nil && *f.GuestCount <= 0 {
		return fmt.Errorf("%w: guest_count must be positive", ErrInvalidFilter)
	}
	if f.PropertyType != nil && !ValidPropertyType(*f.PropertyType) {
		return fmt.Errorf("%w: unknown property_type %q", ErrInvalidFilter, *f.PropertyType)
	}
	if f.CheckInDate != nil && f.CheckOutDate != nil && !f.CheckInDate.Before(*f.CheckOutDate) {
		return fmt.Errorf("%w: check_in_date must precede check_out_date", ErrInvalidFilter)
	}
	return nil
}

// IsUnderspecified reports whether no constraining field is present. Dates
// don't count: they never narrow the local catalog on their own.
func (f Filter) IsUnderspecified() bool {
	return f.City == nil && f.District == nil &&
		f.PriceMin == nil && f.PriceMax == nil &&
		f.GuestCount == nil && f.PropertyType == nil &&
		len(f.Features) == 0
}
