package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
	"github.com/repfy/repfy-tui/pkg/fp"
)

// unpricedSentinel sorts professionals without a published rate after every
// priced one.
var unpricedSentinel = decimal.NewFromInt(999999)

// ProfessionalFilter selects professionals from an in-memory directory.
// Zero-valued fields are inactive; active fields combine with AND.
type ProfessionalFilter struct {
	Search       string
	CategoryID   string
	City         string
	MinRating    float64
	VerifiedOnly bool
}

// Apply returns the professionals matching every active predicate,
// preserving input order.
func (f ProfessionalFilter) Apply(items []api.Professional) []api.Professional {
	out := make([]api.Professional, 0, len(items))
	for _, p := range items {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f ProfessionalFilter) matches(p api.Professional) bool {
	if f.Search != "" && !matchesProfessionalSearch(p, f.Search) {
		return false
	}
	if f.CategoryID != "" && !hasCategory(p.Categories, f.CategoryID) {
		return false
	}
	if f.City != "" && !containsFold(p.City, f.City) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.VerifiedOnly && !p.Verified {
		return false
	}
	return true
}

func matchesProfessionalSearch(p api.Professional, query string) bool {
	if containsFold(p.Name, query) || containsFold(p.Bio, query) {
		return true
	}
	for _, c := range p.Categories {
		if containsFold(c.Name, query) {
			return true
		}
	}
	return false
}

func hasCategory(categories []api.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// RequestFilter selects service requests from an in-memory list.
type RequestFilter struct {
	// Status filters by exact lifecycle state; StatusAll (or empty) disables it.
	Status string
	Search string
}

// Apply returns the requests matching every active predicate,
// preserving input order.
func (f RequestFilter) Apply(items []api.ServiceRequest) []api.ServiceRequest {
	out := make([]api.ServiceRequest, 0, len(items))
	for _, r := range items {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f RequestFilter) matches(r api.ServiceRequest) bool {
	if f.Status != "" && f.Status != StatusAll {
		if ParseStatus(r.Status) != ParseStatus(f.Status) {
			return false
		}
	}
	if f.Search != "" && !matchesRequestSearch(r, f.Search) {
		return false
	}
	return true
}

func matchesRequestSearch(r api.ServiceRequest, query string) bool {
	if containsFold(r.Title, query) || containsFold(r.Description, query) {
		return true
	}
	if r.Category != nil && containsFold(r.Category.Name, query) {
		return true
	}
	if r.Client != nil && containsFold(r.Client.User.Name, query) {
		return true
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ProfessionalSort names the available directory orderings.
type ProfessionalSort int

const (
	SortByRating ProfessionalSort = iota
	SortByReviews
	SortByPrice
)

// SortProfessionals returns a sorted copy of the directory.
// Rating and review counts sort descending; price sorts ascending with
// unpriced profiles last. Ties break on ID so the ordering is stable
// across refreshes.
func SortProfessionals(items []api.Professional, by ProfessionalSort) []api.Professional {
	out := make([]api.Professional, len(items))
	copy(out, items)

	rate := func(p api.Professional) decimal.Decimal {
		return fp.GetOrElseOpt(unpricedSentinel)(fp.FromPointer(p.HourlyRate))
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case SortByReviews:
			if a.ReviewCount != b.ReviewCount {
				return a.ReviewCount > b.ReviewCount
			}
		case SortByPrice:
			if cmp := rate(a).Cmp(rate(b)); cmp != 0 {
				return cmp < 0
			}
		default:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		}
		return a.ID < b.ID
	})
	return out
}

// SortQuotesByRating returns a copy of quotes ordered by the submitting
// professional's rating, best first. Quotes without professional data sink
// to the end; ties break on quote ID.
func SortQuotesByRating(quotes []api.Quote) []api.Quote {
	out := make([]api.Quote, len(quotes))
	copy(out, quotes)

	rating := func(q api.Quote) float64 {
		if q.Professional == nil {
			return -1
		}
		return q.Professional.Rating
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := rating(out[i]), rating(out[j])
		if a != b {
			return a > b
		}
		return out[i].ID < out[j].ID
	})
	return out
}
