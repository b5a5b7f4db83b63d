package domain

// Listing is a local catalog entry. The catalog is read-only at query time:
// it is loaded once at process start and replaced wholesale on refresh.
type Listing struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	City          string       `json:"city"`
	District      *string      `json:"district,omitempty"`
	PropertyType  PropertyType `json:"property_type"`
	Price         float64      `json:"price"`
	GuestCapacity int          `json:"guest_capacity"`
	Features      []string     `json:"features"`
	Description   string       `json:"description"`
	ImageURL      *string      `json:"image_url,omitempty"`
	DetailURL     *string      `json:"detail_url,omitempty"`
}

// Result is the display-ready projection of either a catalog Listing or a web
// hit. Fields missing at the source stay absent rather than being filled with
// placeholders.
type Result struct {
	Title       string   `json:"title"`
	City        *string  `json:"city,omitempty"`
	District    *string  `json:"district,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Features    []string `json:"features,omitempty"`
	URL         *string  `json:"url,omitempty"`
}

// Source tags which strategy produced the final result set.
type Source string

const (
	SourceLocal Source = "local"
	SourceWeb   Source = "web"
)

type SearchResponse struct {
	Results []Result `json:"results"`
	Count   int      `json:"count"`
	Source  Source   `json:"source"`
}
