package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/domain"
	"github.com/repfy/repfy-tui/internal/session"
)

// formatBRL renders a decimal amount as Brazilian currency: "R$ 1.234,56".
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// formatOptionalBRL formats a nullable amount, with a fallback for absent values.
func formatOptionalBRL(d *decimal.Decimal, fallback string) string {
	if d == nil {
		return fallback
	}
	return formatBRL(*d)
}

// formatOptionalDate formats a nullable date with a fallback.
func formatOptionalDate(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format(dateFormat)
}

// renderTimeline renders a stage progression as a single line, with completed
// stages, the current stage and upcoming stages styled differently.
func renderTimeline(timeline []domain.Status, current domain.Status) string {
	idx := domain.StageIndex(timeline, current)

	parts := make([]string, 0, len(timeline))
	for i, s := range timeline {
		d := domain.Describe(s)
		var style lipgloss.Style
		switch {
		case i < idx:
			style = ui.TimelineDoneStyle
		case i == idx:
			style = ui.TimelineCurrentStyle
		default:
			style = ui.TimelineUpcomingStyle
		}
		parts = append(parts, style.Render(d.Icon+" "+d.Label))
	}
	return strings.Join(parts, ui.TimelineConnectorStyle.Render(" ─── "))
}

// truncate shortens a string to max runes, appending "..." when it cuts.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		if max <= 0 {
			return ""
		}
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// roleLabel translates an account role for display.
func roleLabel(role session.Role) string {
	switch role {
	case session.RoleProfessional:
		return "Profissional"
	case session.RoleAdmin:
		return "Administrador"
	default:
		return "Cliente"
	}
}

// maskToken hides the bulk of a bearer token for the settings view.
func maskToken(token string) string {
	if token == "" {
		return "(não definido)"
	}
	if len(token) < 10 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
