package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
)

func TestQuoteDraftBuild(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("valid draft", func(t *testing.T) {
		draft := QuoteDraft{
			Price:             "350.50",
			Message:           "Posso começar na segunda",
			EstimatedDuration: "2 dias",
			ValidDays:         7,
		}
		req, err := draft.Build("r1", now)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if req.RequestID != "r1" {
			t.Errorf("RequestID = %q, want r1", req.RequestID)
		}
		if !req.Price.Equal(decimal.RequireFromString("350.50")) {
			t.Errorf("Price = %s, want 350.50", req.Price)
		}
		if want := now.AddDate(0, 0, 7); !req.ValidUntil.Equal(want) {
			t.Errorf("ValidUntil = %v, want %v", req.ValidUntil, want)
		}
	})

	tests := []struct {
		name  string
		draft QuoteDraft
	}{
		{"empty price", QuoteDraft{Price: "", ValidDays: 7}},
		{"malformed price", QuoteDraft{Price: "abc", ValidDays: 7}},
		{"zero price", QuoteDraft{Price: "0", ValidDays: 7}},
		{"negative price", QuoteDraft{Price: "-10", ValidDays: 7}},
		{"zero valid days", QuoteDraft{Price: "100", ValidDays: 0}},
		{"negative valid days", QuoteDraft{Price: "100", ValidDays: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.draft.Build("r1", now); err == nil {
				t.Error("Build() expected error, got nil")
			}
		})
	}
}

func TestRequestDraftBuild(t *testing.T) {
	categories := []api.Category{
		{ID: "c1", Name: "Elétrica", Slug: "eletrica"},
		{ID: "c2", Name: "Hidráulica", Slug: "hidraulica"},
	}

	t.Run("valid draft resolves the category", func(t *testing.T) {
		draft := RequestDraft{
			Title:       "Trocar chuveiro",
			Description: "Chuveiro elétrico queimado",
			Category:    "elétrica",
			City:        "Campinas",
			State:       "sp",
		}
		req, err := draft.Build(categories)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if req.CategoryID != "c1" {
			t.Errorf("CategoryID = %q, want c1", req.CategoryID)
		}
		if req.State != "SP" {
			t.Errorf("State = %q, want SP", req.State)
		}
	})

	t.Run("slug also matches", func(t *testing.T) {
		draft := RequestDraft{
			Title: "Vazamento", Description: "Cano furado",
			Category: "hidraulica", City: "Campinas", State: "SP",
		}
		req, err := draft.Build(categories)
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if req.CategoryID != "c2" {
			t.Errorf("CategoryID = %q, want c2", req.CategoryID)
		}
	})

	invalid := []struct {
		name  string
		draft RequestDraft
	}{
		{"missing title", RequestDraft{Description: "d", Category: "Elétrica", City: "c", State: "SP"}},
		{"missing description", RequestDraft{Title: "t", Category: "Elétrica", City: "c", State: "SP"}},
		{"missing city", RequestDraft{Title: "t", Description: "d", Category: "Elétrica", State: "SP"}},
		{"unknown category", RequestDraft{Title: "t", Description: "d", Category: "Jardinagem", City: "c", State: "SP"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.draft.Build(categories); err == nil {
				t.Error("Build() expected error, got nil")
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "ana@example.com", "secret", false},
		{"empty email", "", "secret", true},
		{"malformed email", "not-an-email", "secret", true},
		{"empty password", "ana@example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogin() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  bool
	}{
		{"valid", "Senha123", "Senha123", false},
		{"too short", "Ab1", "Ab1", true},
		{"missing upper", "senha123", "senha123", true},
		{"missing lower", "SENHA123", "SENHA123", true},
		{"missing digit", "SenhaForte", "SenhaForte", true},
		{"confirmation mismatch", "Senha123", "Senha124", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
