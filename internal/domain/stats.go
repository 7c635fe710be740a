package domain

import (
	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
)

// RequestSummary carries the per-card numbers a request list renders.
type RequestSummary struct {
	QuoteCount int
	// HasNewQuotes flags a still-open request that already has offers
	// waiting for the client's decision.
	HasNewQuotes bool
}

// SummarizeRequest computes the card summary for one request.
func SummarizeRequest(r api.ServiceRequest) RequestSummary {
	count := len(r.Quotes)
	return RequestSummary{
		QuoteCount:   count,
		HasNewQuotes: ParseStatus(r.Status) == StatusPending && count > 0,
	}
}

// QuoteComparison marks the standout quotes on a request: the cheapest
// offer and the best-rated professional, which may be different quotes.
type QuoteComparison struct {
	LowestPrice   decimal.Decimal
	HighestRating float64
	hasQuotes     bool
}

// CompareQuotes scans a request's quotes for the comparison extremes.
func CompareQuotes(quotes []api.Quote) QuoteComparison {
	var cmp QuoteComparison
	for _, q := range quotes {
		if !cmp.hasQuotes {
			cmp.LowestPrice = q.Price
			cmp.HighestRating = quoteRating(q)
			cmp.hasQuotes = true
			continue
		}
		if q.Price.LessThan(cmp.LowestPrice) {
			cmp.LowestPrice = q.Price
		}
		if r := quoteRating(q); r > cmp.HighestRating {
			cmp.HighestRating = r
		}
	}
	return cmp
}

func quoteRating(q api.Quote) float64 {
	if q.Professional == nil {
		return 0
	}
	return q.Professional.Rating
}

// IsLowestPrice reports whether q carries the cheapest price seen.
func (c QuoteComparison) IsLowestPrice(q api.Quote) bool {
	return c.hasQuotes && q.Price.Equal(c.LowestPrice)
}

// IsHighestRating reports whether q's professional has the best rating seen.
func (c QuoteComparison) IsHighestRating(q api.Quote) bool {
	return c.hasQuotes && c.HighestRating > 0 && quoteRating(q) == c.HighestRating
}

// JobStats summarizes a professional's job list for the dashboard.
type JobStats struct {
	InProgress int
	Completed  int
	// TotalValue sums the agreed quote price across all listed jobs.
	TotalValue decimal.Decimal
}

// SummarizeJobs computes dashboard stats over a professional's jobs.
func SummarizeJobs(jobs []api.ServiceRequest) JobStats {
	var stats JobStats
	for _, j := range jobs {
		switch ParseStatus(j.Status) {
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
		if j.AgreedQuote != nil {
			stats.TotalValue = stats.TotalValue.Add(j.AgreedQuote.Price)
		}
	}
	return stats
}

// UnreadTotal sums unread message counts across conversations for the
// sidebar badge.
func UnreadTotal(conversations []api.Conversation) int {
	total := 0
	for _, c := range conversations {
		total += c.UnreadCount
	}
	return total
}
