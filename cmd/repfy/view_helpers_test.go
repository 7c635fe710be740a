package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/domain"
	"github.com/repfy/repfy-tui/internal/session"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "150", "R$ 150,00"},
		{"cents", "120.5", "R$ 120,50"},
		{"thousands", "1234.56", "R$ 1.234,56"},
		{"millions", "1234567.89", "R$ 1.234.567,89"},
		{"zero", "0", "R$ 0,00"},
		{"negative", "-42.10", "-R$ 42,10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			if got := formatBRL(d); got != tt.want {
				t.Errorf("formatBRL(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatOptionalBRL(t *testing.T) {
	if got := formatOptionalBRL(nil, "a combinar"); got != "a combinar" {
		t.Errorf("nil amount = %q, want fallback", got)
	}
	d := decimal.RequireFromString("99.90")
	if got := formatOptionalBRL(&d, "a combinar"); got != "R$ 99,90" {
		t.Errorf("present amount = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "oi", 10, "oi"},
		{"exactly max", "12345", 5, "12345"},
		{"cut with ellipsis", "instalação elétrica completa", 10, "instala..."},
		{"tiny max", "abcdef", 2, "ab"},
		{"zero max", "abc", 0, ""},
		{"multibyte", "não corta errado", 7, "não ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty", "", "(não definido)"},
		{"short", "abc123", "****"},
		{"long", "eyJhbGciOiJIUzI1NiJ9", "eyJh...NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskToken(tt.token); got != tt.want {
				t.Errorf("maskToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestRenderTimelineShowsEveryStage(t *testing.T) {
	out := renderTimeline(domain.ClientTimeline(), domain.StatusInProgress)
	for _, label := range []string{"Pendente", "Aceito", "Em Andamento", "Concluido"} {
		if !strings.Contains(out, label) {
			t.Errorf("timeline missing stage %q: %s", label, out)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	tests := []struct {
		role session.Role
		want string
	}{
		{session.RoleClient, "Cliente"},
		{session.RoleProfessional, "Profissional"},
		{session.RoleAdmin, "Administrador"},
		{session.Role("whatever"), "Cliente"},
	}
	for _, tt := range tests {
		if got := roleLabel(tt.role); got != tt.want {
			t.Errorf("roleLabel(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestNextStatusFilterCycles(t *testing.T) {
	seen := map[string]bool{}
	current := domain.StatusAll
	for i := 0; i < 6; i++ {
		current = nextStatusFilter(current)
		if seen[current] {
			t.Fatalf("filter cycle revisited %q before completing", current)
		}
		seen[current] = true
	}
	if current != domain.StatusAll {
		t.Errorf("cycle should return to %q, ended at %q", domain.StatusAll, current)
	}
	if got := nextStatusFilter("garbage"); got != domain.StatusAll {
		t.Errorf("unknown filter value should reset to all, got %q", got)
	}
}
