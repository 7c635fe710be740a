package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleProfessionals() []api.Professional {
	return []api.Professional{
		{
			ID: "p1", Name: "Ana Souza", Bio: "Eletricista residencial",
			City: "São Paulo", Rating: 4.8, ReviewCount: 120, Verified: true,
			HourlyRate: dec("150.00"),
			Categories: []api.Category{{ID: "c1", Name: "Elétrica"}},
		},
		{
			ID: "p2", Name: "Bruno Lima", Bio: "Encanador",
			City: "Campinas", Rating: 4.8, ReviewCount: 45, Verified: false,
			HourlyRate: dec("90.00"),
			Categories: []api.Category{{ID: "c2", Name: "Hidráulica"}},
		},
		{
			ID: "p3", Name: "Carla Dias", Bio: "Pintora e eletricista",
			City: "São Paulo", Rating: 4.2, ReviewCount: 200, Verified: true,
			Categories: []api.Category{{ID: "c1", Name: "Elétrica"}, {ID: "c3", Name: "Pintura"}},
		},
	}
}

func idsOf(items []api.Professional) []string {
	ids := make([]string, len(items))
	for i, p := range items {
		ids[i] = p.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []api.Professional, want ...string) {
	t.Helper()
	ids := idsOf(got)
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestProfessionalFilter(t *testing.T) {
	pros := sampleProfessionals()

	tests := []struct {
		name   string
		filter ProfessionalFilter
		want   []string
	}{
		{"empty filter keeps all", ProfessionalFilter{}, []string{"p1", "p2", "p3"}},
		{"search matches name", ProfessionalFilter{Search: "ana"}, []string{"p1"}},
		{"search matches bio", ProfessionalFilter{Search: "ENCANADOR"}, []string{"p2"}},
		{"search matches category", ProfessionalFilter{Search: "pintura"}, []string{"p3"}},
		{"category id", ProfessionalFilter{CategoryID: "c1"}, []string{"p1", "p3"}},
		{"city substring", ProfessionalFilter{City: "paulo"}, []string{"p1", "p3"}},
		{"min rating", ProfessionalFilter{MinRating: 4.5}, []string{"p1", "p2"}},
		{"verified only", ProfessionalFilter{VerifiedOnly: true}, []string{"p1", "p3"}},
		{
			"predicates combine with AND",
			ProfessionalFilter{CategoryID: "c1", MinRating: 4.5, VerifiedOnly: true},
			[]string{"p1"},
		},
		{"no match", ProfessionalFilter{Search: "marceneiro"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, tt.filter.Apply(pros), tt.want...)
		})
	}
}

func TestRequestFilter(t *testing.T) {
	reqs := []api.ServiceRequest{
		{ID: "r1", Title: "Trocar chuveiro", Description: "Chuveiro queimado", Status: "PENDING",
			Client: &api.ClientSummary{User: api.User{Name: "Marcos"}}},
		{ID: "r2", Title: "Pintar sala", Status: "COMPLETED",
			Category: &api.Category{Name: "Pintura"}},
		{ID: "r3", Title: "Vazamento", Status: "pending"},
	}

	ids := func(items []api.ServiceRequest) []string {
		out := make([]string, len(items))
		for i, r := range items {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name   string
		filter RequestFilter
		want   []string
	}{
		{"all keeps everything", RequestFilter{Status: StatusAll}, []string{"r1", "r2", "r3"}},
		{"empty status keeps everything", RequestFilter{}, []string{"r1", "r2", "r3"}},
		{"status normalizes case", RequestFilter{Status: "PENDING"}, []string{"r1", "r3"}},
		{"search in title", RequestFilter{Search: "chuveiro"}, []string{"r1"}},
		{"search in category", RequestFilter{Search: "pintura"}, []string{"r2"}},
		{"search in client name", RequestFilter{Search: "marcos"}, []string{"r1"}},
		{"status and search combine", RequestFilter{Status: "PENDING", Search: "vaza"}, []string{"r3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(reqs))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortProfessionals(t *testing.T) {
	pros := sampleProfessionals()

	t.Run("rating desc with id tie-break", func(t *testing.T) {
		assertIDs(t, SortProfessionals(pros, SortByRating), "p1", "p2", "p3")
	})

	t.Run("reviews desc", func(t *testing.T) {
		assertIDs(t, SortProfessionals(pros, SortByReviews), "p3", "p1", "p2")
	})

	t.Run("price asc with unpriced last", func(t *testing.T) {
		assertIDs(t, SortProfessionals(pros, SortByPrice), "p2", "p1", "p3")
	})

	t.Run("input order untouched", func(t *testing.T) {
		SortProfessionals(pros, SortByPrice)
		assertIDs(t, pros, "p1", "p2", "p3")
	})
}

func TestSortQuotesByRating(t *testing.T) {
	quotes := []api.Quote{
		{ID: "q1", Professional: &api.ProfessionalSummary{Rating: 4.0}},
		{ID: "q2", Professional: &api.ProfessionalSummary{Rating: 4.9}},
		{ID: "q3"},
		{ID: "q4", Professional: &api.ProfessionalSummary{Rating: 4.9}},
	}

	got := SortQuotesByRating(quotes)
	want := []string{"q2", "q4", "q1", "q3"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("order = %v, want %v", []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}, want)
		}
	}
}
