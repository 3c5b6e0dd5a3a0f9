package catalog

import (
	"strconv"
	"strings"
)

// Query is the predicate set applied in-memory after the scope-gated
// fetch. All active predicates combine with AND; a zero Query is the
// identity filter.
type Query struct {
	Type     string
	Location string
	MinPrice string
	MaxPrice string
	Beds     string
	Search   string
}

// FilterRecords returns the records matching every active predicate,
// preserving the repository's newest-first order. The substring search is
// honored for admin scope only.
func FilterRecords(schema *Schema, scope Scope, recs []Record, q Query) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if matches(schema, scope, rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(schema *Schema, scope Scope, rec Record, q Query) bool {
	core := rec.Core()

	if q.Type != "" {
		if schema.PropertyType == nil || !strings.EqualFold(q.Type, schema.PropertyType(rec)) {
			return false
		}
	}
	if q.Location != "" && !strings.EqualFold(q.Location, core.Location) {
		return false
	}
	if !matchesPriceRange(core.Price, q.MinPrice, q.MaxPrice) {
		return false
	}
	if q.Beds != "" {
		if schema.Beds == nil {
			return false
		}
		beds, ok := schema.Beds(rec)
		if !ok || !matchesBeds(beds, q.Beds) {
			return false
		}
	}
	if q.Search != "" && scope == ScopeAdmin && !matchesSearch(schema, rec, q.Search) {
		return false
	}
	return true
}

// matchesPriceRange strips every non-digit character before comparing.
// A price that fails to parse never matches an active range filter.
func matchesPriceRange(price, minRaw, maxRaw string) bool {
	min, hasMin := parsePrice(minRaw)
	max, hasMax := parsePrice(maxRaw)
	if !hasMin && !hasMax {
		return true
	}

	value, ok := parsePrice(price)
	if !ok {
		return false
	}
	if hasMin && value < min {
		return false
	}
	if hasMax && value > max {
		return false
	}
	return true
}

func parsePrice(raw string) (int64, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	value, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// matchesBeds treats 1-4 as exact counts and "5+" as at-least-five.
func matchesBeds(beds, token string) bool {
	count, err := strconv.Atoi(strings.TrimSpace(beds))
	if err != nil {
		return false
	}
	if strings.TrimSpace(token) == "5+" {
		return count >= 5
	}
	want, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return false
	}
	return count == want
}

func matchesSearch(schema *Schema, rec Record, term string) bool {
	if schema.SearchText == nil {
		return false
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, field := range schema.SearchText(rec) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
