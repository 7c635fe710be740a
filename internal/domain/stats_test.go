package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
)

func TestSummarizeRequest(t *testing.T) {
	tests := []struct {
		name    string
		request api.ServiceRequest
		want    RequestSummary
	}{
		{
			"pending with quotes flags new",
			api.ServiceRequest{Status: "PENDING", Quotes: []api.Quote{{ID: "q1"}, {ID: "q2"}}},
			RequestSummary{QuoteCount: 2, HasNewQuotes: true},
		},
		{
			"pending without quotes",
			api.ServiceRequest{Status: "PENDING"},
			RequestSummary{QuoteCount: 0, HasNewQuotes: false},
		},
		{
			"accepted request no longer flags",
			api.ServiceRequest{Status: "ACCEPTED", Quotes: []api.Quote{{ID: "q1"}}},
			RequestSummary{QuoteCount: 1, HasNewQuotes: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummarizeRequest(tt.request); got != tt.want {
				t.Errorf("SummarizeRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCompareQuotes(t *testing.T) {
	quotes := []api.Quote{
		{ID: "q1", Price: decimal.RequireFromString("300.00"),
			Professional: &api.ProfessionalSummary{Rating: 4.9}},
		{ID: "q2", Price: decimal.RequireFromString("250.00"),
			Professional: &api.ProfessionalSummary{Rating: 4.1}},
		{ID: "q3", Price: decimal.RequireFromString("400.00"),
			Professional: &api.ProfessionalSummary{Rating: 4.5}},
	}

	cmp := CompareQuotes(quotes)

	if !cmp.IsLowestPrice(quotes[1]) {
		t.Error("q2 should be the lowest price")
	}
	if cmp.IsLowestPrice(quotes[0]) {
		t.Error("q1 should not be the lowest price")
	}
	if !cmp.IsHighestRating(quotes[0]) {
		t.Error("q1 should have the highest rating")
	}
	if cmp.IsHighestRating(quotes[1]) {
		t.Error("q2 should not have the highest rating")
	}
}

func TestCompareQuotesEmpty(t *testing.T) {
	cmp := CompareQuotes(nil)
	if cmp.IsLowestPrice(api.Quote{}) || cmp.IsHighestRating(api.Quote{}) {
		t.Error("empty comparison should mark nothing")
	}
}

func TestCompareQuotesEqualPrices(t *testing.T) {
	price := decimal.RequireFromString("100.00")
	quotes := []api.Quote{
		{ID: "q1", Price: price},
		{ID: "q2", Price: decimal.RequireFromString("100")},
	}
	cmp := CompareQuotes(quotes)
	if !cmp.IsLowestPrice(quotes[0]) || !cmp.IsLowestPrice(quotes[1]) {
		t.Error("equal prices should both be marked lowest")
	}
}

func TestSummarizeJobs(t *testing.T) {
	jobs := []api.ServiceRequest{
		{Status: "IN_PROGRESS", AgreedQuote: &api.Quote{Price: decimal.RequireFromString("200.00")}},
		{Status: "COMPLETED", AgreedQuote: &api.Quote{Price: decimal.RequireFromString("350.50")}},
		{Status: "COMPLETED"},
		{Status: "ACCEPTED", AgreedQuote: &api.Quote{Price: decimal.RequireFromString("100.00")}},
	}

	stats := SummarizeJobs(jobs)

	if stats.InProgress != 1 {
		t.Errorf("InProgress = %d, want 1", stats.InProgress)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, want 2", stats.Completed)
	}
	if want := decimal.RequireFromString("650.50"); !stats.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %s, want %s", stats.TotalValue, want)
	}
}

func TestUnreadTotal(t *testing.T) {
	conversations := []api.Conversation{
		{UnreadCount: 2},
		{UnreadCount: 0},
		{UnreadCount: 5},
	}
	if got := UnreadTotal(conversations); got != 7 {
		t.Errorf("UnreadTotal() = %d, want 7", got)
	}
	if got := UnreadTotal(nil); got != 0 {
		t.Errorf("UnreadTotal(nil) = %d, want 0", got)
	}
}
