package validators

import (
	"net/http"
	"strings"

	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
)

// ListingQuery extracts the filter predicates from the request query.
func ListingQuery(r *http.Request) catalog.Query {
	q := r.URL.Query()
	return catalog.Query{
		Type:     strings.TrimSpace(q.Get("type")),
		Location: strings.TrimSpace(q.Get("location")),
		MinPrice: strings.TrimSpace(q.Get("minPrice")),
		MaxPrice: strings.TrimSpace(q.Get("maxPrice")),
		Beds:     strings.TrimSpace(q.Get("beds")),
		Search:   strings.TrimSpace(q.Get("q")),
	}
}
