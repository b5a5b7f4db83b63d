package websearch

import (
	"regexp"
	"strings"

	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
)

const maxDescriptionRunes = 250

// accommodationTerms gates obviously off-topic hits (news articles, forums).
// Matched against the folded title and content.
var accommodationTerms = []string{
	"hotel", "otel", "villa", "apart", "resort", "konaklama",
	"tatil", "booking", "accommodation", "stay", "lodging",
	"pension", "pansiyon", "bungalov", "bungalow",
}

var priceRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(TL|₺|USD|EUR)`)

// normalizeHit maps one raw provider hit onto the Result shape. A hit lacking
// both a title and a URL is unusable and dropped; so is anything that does not
// look like accommodation content. Missing fields stay absent, no
// placeholders.
func normalizeHit(hit map[string]any, f domain.Filter) (domain.Result, bool) {
	title := strAt(hit, "title")
	url := strAt(hit, "url")
	if title == "" && url == "" {
		return domain.Result{}, false
	}
	content := strAt(hit, "content")

	haystack := shared.Fold(title) + " " + shared.Fold(content)
	relevant := false
	for _, term := range accommodationTerms {
		if strings.Contains(haystack, term) {
			relevant = true
			break
		}
	}
	if !relevant {
		return domain.Result{}, false
	}

	r := domain.Result{Title: title}
	if url != "" {
		u := url
		r.URL = &u
	}
	if img := strAt(hit, "image"); img != "" {
		r.Image = &img
	}
	if content != "" {
		desc := truncateRunes(content, maxDescriptionRunes)
		r.Description = &desc
	}
	if m := priceRe.FindStringSubmatch(content); m != nil {
		p := m[1] + " " + m[2]
		r.Price = &p
	}

	// the provider doesn't structure location or amenities; carry the
	// filter's own context so the cards stay filterable client-side
	if f.City != nil {
		city := *f.City
		r.City = &city
	}
	if f.District != nil {
		d := *f.District
		r.District = &d
	}
	if len(f.Features) > 0 {
		r.Features = append([]string(nil), f.Features...)
	}
	return r, true
}

func strAt(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
