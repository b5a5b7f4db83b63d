package app

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

/********** alias registries (single source of truth) **********/

// filterAliases maps canonical Filter fields to the key variants NLU backends
// have been observed to emit.
var filterAliases = map[string][]string{
	"city":          {"city", "sehir", "şehir", "location", "place"},
	"district":      {"district", "ilce", "ilçe", "region", "area"},
	"price_min":     {"price_min", "priceMin", "min_price", "fiyat_min"},
	"price_max":     {"price_max", "priceMax", "max_price", "fiyat_max", "budget"},
	"guest_count":   {"guest_count", "guestCount", "guests", "kisi_sayisi", "misafir_sayisi"},
	"property_type": {"property_type", "propertyType", "type", "konaklama_tipi"},
	"features":      {"features", "amenities", "ozellikler", "özellikler"},
	"check_in":      {"check_in_date", "checkin", "check_in", "giris_tarihi", "giriş_tarihi"},
	"check_out":     {"check_out_date", "checkout", "check_out", "cikis_tarihi", "çıkış_tarihi"},
}

// propertyTypeSynonyms keys are pre-folded (see shared.Fold). Turkish terms
// come straight from the extraction vocabulary; unknown tokens are dropped by
// the caller rather than failing the parse.
var propertyTypeSynonyms = map[string]domain.PropertyType{
	"hotel": domain.TypeHotel, "otel": domain.TypeHotel,
	"villa": domain.TypeVilla, "yazlik villa": domain.TypeVilla,
	"apart": domain.TypeApart, "apart otel": domain.TypeApart, "apartment": domain.TypeApart, "daire": domain.TypeApart,
	"bungalow": domain.TypeBungalow, "bungalov": domain.TypeBungalow,
	"resort": domain.TypeResort, "tatil koyu": domain.TypeResort,
	"boutique-hotel": domain.TypeBoutiqueHotel, "butik otel": domain.TypeBoutiqueHotel, "boutique hotel": domain.TypeBoutiqueHotel,
	"guesthouse": domain.TypeGuesthouse, "pansiyon": domain.TypeGuesthouse, "pension": domain.TypeGuesthouse,
}

// featureSynonyms canonicalizes amenity tags; keys are pre-folded.
var featureSynonyms = map[string]string{
	"havuzlu": "pool", "havuz": "pool", "pool": "pool", "swimming pool": "pool", "yuzme havuzu": "pool",
	"denize sifir": "sea-view", "deniz manzarali": "sea-view", "sea view": "sea-view", "sea-view": "sea-view", "beachfront": "sea-view",
	"somine": "fireplace", "somineli": "fireplace", "fireplace": "fireplace",
	"jakuzi": "jacuzzi", "jacuzzi": "jacuzzi",
	"spa": "spa", "sauna": "sauna",
	"fitness": "fitness", "gym": "fitness", "spor salonu": "fitness",
	"wifi": "wifi", "wi-fi": "wifi", "internet": "wifi",
	"balkon": "balcony", "balkonlu": "balcony", "balcony": "balcony", "teras": "balcony",
	"kahvalti dahil": "breakfast-included", "kahvalti": "breakfast-included", "breakfast": "breakfast-included", "breakfast included": "breakfast-included",
	"klimali": "air-conditioning", "klima": "air-conditioning", "air conditioning": "air-conditioning", "aircon": "air-conditioning",
	"otopark": "parking", "parking": "parking", "car park": "parking",
	"evcil hayvan kabul eder": "pet-friendly", "evcil hayvan": "pet-friendly", "pet friendly": "pet-friendly", "pet-friendly": "pet-friendly",
}

// CanonicalFeature folds a free-form amenity tag and maps known synonyms to
// their canonical form. Unknown tags are kept folded, not discarded: features
// are a free-form set.
func CanonicalFeature(s string) string {
	folded := shared.Fold(s)
	if c, ok := featureSynonyms[folded]; ok {
		return c
	}
	return folded
}

/********** tiny helpers **********/

func firstPresent(m map[string]any, key string) any {
	for _, k := range filterAliases[key] {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// floatAt coerces float64/int/json numbers and numeric strings ("3500",
// "3500,50", "3500 TL"). Second return is false when the field is present but
// unusable.
func floatAt(m map[string]any, key string) (*float64, bool) {
	switch v := firstPresent(m, key).(type) {
	case nil:
		return nil, true
	case float64:
		f := v
		return &f, true
	case int:
		f := float64(v)
		return &f, true
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		s = strings.TrimSuffix(strings.ToUpper(s), " TL")
		if s == "" {
			return nil, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func intAt(m map[string]any, key string) (*int, bool) {
	f, ok := floatAt(m, key)
	if f == nil {
		return nil, ok
	}
	n := int(*f)
	return &n, ok
}

func strAt(m map[string]any, key string) *string {
	if v, ok := firstPresent(m, key).(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return &s
		}
	}
	return nil
}

func strSliceAt(m map[string]any, key string) []string {
	switch v := firstPresent(m, key).(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

/********** date parsing **********/

// Turkish month names, folded.
var turkishMonths = map[string]time.Month{
	"ocak": time.January, "subat": time.February, "mart": time.March,
	"nisan": time.April, "mayis": time.May, "haziran": time.June,
	"temmuz": time.July, "agustos": time.August, "eylul": time.September,
	"ekim": time.October, "kasim": time.November, "aralik": time.December,
}

var dayMonthRe = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)$`)

// parseLocaleDate accepts ISO ("2025-09-02"), dotted ("02.09.2025") and
// Turkish day-month forms ("2 Eylül"). Day-month dates without a year resolve
// to the next occurrence relative to ref.
func parseLocaleDate(s string, ref time.Time) (domain.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Date{}, false
	}
	for _, layout := range []string{"2006-01-02", "02.01.2006", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.NewDate(t.Year(), t.Month(), t.Day()), true
		}
	}
	m := dayMonthRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return domain.Date{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return domain.Date{}, false
	}
	month, ok := turkishMonths[shared.Fold(m[2])]
	if !ok {
		return domain.Date{}, false
	}
	year := ref.Year()
	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if candidate.Before(time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)) {
		year++
	}
	return domain.NewDate(year, month, day), true
}

func dateAt(m map[string]any, key string, ref time.Time) (*domain.Date, bool) {
	s := strAt(m, key)
	if s == nil {
		return nil, true
	}
	d, ok := parseLocaleDate(*s, ref)
	if !ok {
		return nil, false
	}
	return &d, true
}

/********** the normalizer **********/

// NormalizeFilter maps a raw NLU payload into a Filter. It never fails: every
// unusable field is dropped and flagged through the returned degraded bool,
// so the caller can attach Degraded instead of handing out a silently
// half-populated Filter.
func NormalizeFilter(raw map[string]any, rawQuery string, ref time.Time) (domain.Filter, bool) {
	f := domain.Filter{RawQuery: rawQuery}
	degraded := false

	f.City = strAt(raw, "city")
	f.District = strAt(raw, "district")

	var ok bool
	if f.PriceMin, ok = floatAt(raw, "price_min"); !ok {
		degraded = true
	}
	if f.PriceMax, ok = floatAt(raw, "price_max"); !ok {
		degraded = true
	}
	if f.GuestCount, ok = intAt(raw, "guest_count"); !ok {
		degraded = true
	}

	if s := strAt(raw, "property_type"); s != nil {
		if pt, found := propertyTypeSynonyms[shared.Fold(*s)]; found {
			f.PropertyType = &pt
		} else {
			// unrecognized token: drop it, keep the rest of the parse
			degraded = true
		}
	}

	if tags := strSliceAt(raw, "features"); len(tags) > 0 {
		seen := make(map[string]bool, len(tags))
		for _, tag := range tags {
			c := CanonicalFeature(tag)
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			f.Features = append(f.Features, c)
		}
	}

	if f.CheckInDate, ok = dateAt(raw, "check_in", ref); !ok {
		degraded = true
	}
	if f.CheckOutDate, ok = dateAt(raw, "check_out", ref); !ok {
		degraded = true
	}

	return f, degraded
}
