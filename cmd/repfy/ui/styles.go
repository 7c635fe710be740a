package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/repfy/repfy-tui/internal/domain"
)

// Message type constants for consistent UI messaging
const (
	// MessageTypeError indicates an error message style.
	MessageTypeError = "error"
	// MessageTypeSuccess indicates a success message style.
	MessageTypeSuccess = "success"
	// MessageTypeInfo indicates an informational message style.
	MessageTypeInfo = "info"
)

// ╔═══════════════════════════════════════════════════════════════════════════╗
// ║  REPFY TERMINAL: warm amber on deep navy                                   ║
// ╚═══════════════════════════════════════════════════════════════════════════╝
var (
	// Backgrounds
	bgDeep     = lipgloss.Color("#0b1020") // deepest navy
	bgPrimary  = lipgloss.Color("#101728") // main workspace
	bgPanel    = lipgloss.Color("#18213a") // panels, sidebar
	bgElevated = lipgloss.Color("#222e4d") // selected rows, cards

	// Brand accents
	brandAmber = lipgloss.Color("#e0a82e") // primary accent
	brandGold  = lipgloss.Color("#f5c453") // hover, highlights
	brandTeal  = lipgloss.Color("#2ec4b6") // secondary accent, links

	// Semantic colors
	colorSuccess = lipgloss.Color("#4caf7d")
	colorWarning = lipgloss.Color("#e0a82e")
	colorDanger  = lipgloss.Color("#e05c5c")
	colorInfo    = lipgloss.Color("#5ea8e0")
	colorActive  = lipgloss.Color("#2ec4b6")

	// Text
	textPrimary   = lipgloss.Color("#eef1f8")
	textSecondary = lipgloss.Color("#c3cadb")
	textMuted     = lipgloss.Color("#828ba3")
	textDim       = lipgloss.Color("#4e576f")

	// Borders
	borderDefault = lipgloss.Color("#2a3454")
	borderSubtle  = lipgloss.Color("#1d2640")

	// ═══════════════════════════════════════════════════════════════════════
	// LAYOUT DIMENSIONS
	// ═══════════════════════════════════════════════════════════════════════

	// SidebarWidth is the expanded sidebar width in character cells.
	SidebarWidth = 28
	// SidebarCollapsedW is the collapsed sidebar width in character cells.
	SidebarCollapsedW = 4
	// HeaderHeight is the header height in terminal rows.
	HeaderHeight = 3
	// FooterHeight is the footer height in terminal rows.
	FooterHeight = 2

	// ═══════════════════════════════════════════════════════════════════════
	// HEADER
	// ═══════════════════════════════════════════════════════════════════════

	HeaderStyle = lipgloss.NewStyle().
			Background(bgPanel).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 2).
			Height(HeaderHeight).
			BorderBottom(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderBottomForeground(brandAmber)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(brandAmber).
				Bold(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	BreadcrumbSeparatorStyle = lipgloss.NewStyle().
					Foreground(brandTeal)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(brandAmber).
				Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// SIDEBAR
	// ═══════════════════════════════════════════════════════════════════════

	SidebarStyle = lipgloss.NewStyle().
			Background(bgDeep).
			Padding(1, 0).
			BorderRight(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderRightForeground(brandTeal)

	SidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(brandTeal).
				Bold(true).
				Padding(0, 2).
				MarginBottom(1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(textSecondary).
				Padding(0, 2)

	SidebarItemHoverStyle = lipgloss.NewStyle().
				Background(bgPanel).
				Foreground(brandGold).
				Padding(0, 2)

	SidebarItemSelectedStyle = lipgloss.NewStyle().
					Background(bgElevated).
					Foreground(brandAmber).
					Bold(true).
					Padding(0, 2)

	SidebarToggleStyle = lipgloss.NewStyle().
				Foreground(brandTeal).
				Padding(0, 1)

	SidebarBadgeStyle = lipgloss.NewStyle().
				Background(colorDanger).
				Foreground(textPrimary).
				Padding(0, 1).
				Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// FOOTER
	// ═══════════════════════════════════════════════════════════════════════

	FooterStyle = lipgloss.NewStyle().
			Background(bgDeep).
			Foreground(textSecondary).
			Padding(0, 2).
			Height(FooterHeight).
			BorderTop(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderTopForeground(brandAmber)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(brandGold).
			Bold(true)

	FooterLabelStyle = lipgloss.NewStyle().
				Foreground(textPrimary)

	FooterHelpStyle = lipgloss.NewStyle().
			Foreground(brandTeal)

	// ═══════════════════════════════════════════════════════════════════════
	// CONTENT AREA
	// ═══════════════════════════════════════════════════════════════════════

	ContentStyle = lipgloss.NewStyle().
			Background(bgPrimary).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brandAmber).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(brandTeal).
			MarginBottom(1)

	// ═══════════════════════════════════════════════════════════════════════
	// MENU / LIST
	// ═══════════════════════════════════════════════════════════════════════

	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(textSecondary)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(brandAmber).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(brandTeal).
			Bold(true)

	// ═══════════════════════════════════════════════════════════════════════
	// STATUS / TONES
	// ═══════════════════════════════════════════════════════════════════════

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	StatusOfflineStyle = lipgloss.NewStyle().
				Foreground(textDim)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(brandGold).
			Bold(true)

	VerifiedStyle = lipgloss.NewStyle().
			Foreground(brandTeal).
			Bold(true)

	RatingStyle = lipgloss.NewStyle().
			Foreground(brandGold)

	// ═══════════════════════════════════════════════════════════════════════
	// FORMS
	// ═══════════════════════════════════════════════════════════════════════

	LabelStyle = lipgloss.NewStyle().
			Foreground(brandTeal)

	// ═══════════════════════════════════════════════════════════════════════
	// MESSAGES
	// ═══════════════════════════════════════════════════════════════════════

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true).
			MarginTop(1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			MarginTop(1)

	// ═══════════════════════════════════════════════════════════════════════
	// BOX / CARD
	// ═══════════════════════════════════════════════════════════════════════

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(brandAmber).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderDefault).
			Padding(1, 2).
			MarginBottom(1)

	CardHeaderStyle = lipgloss.NewStyle().
			Foreground(brandAmber).
			Bold(true).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderSubtle).
			MarginBottom(1).
			PaddingBottom(1)

	CardSectionStyle = lipgloss.NewStyle().
				Foreground(brandTeal).
				Bold(true).
				MarginTop(1).
				MarginBottom(1)

	CardFieldLabelStyle = lipgloss.NewStyle().
				Foreground(textMuted).
				Width(16)

	CardFieldValueStyle = lipgloss.NewStyle().
				Foreground(textPrimary)

	CardDividerStyle = lipgloss.NewStyle().
				Foreground(borderSubtle)

	// ═══════════════════════════════════════════════════════════════════════
	// CHAT
	// ═══════════════════════════════════════════════════════════════════════

	ChatMineStyle = lipgloss.NewStyle().
			Foreground(brandGold)

	ChatTheirsStyle = lipgloss.NewStyle().
			Foreground(textPrimary)

	ChatTimeStyle = lipgloss.NewStyle().
			Foreground(textDim)

	// ═══════════════════════════════════════════════════════════════════════
	// TIMELINE
	// ═══════════════════════════════════════════════════════════════════════

	TimelineDoneStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	TimelineCurrentStyle = lipgloss.NewStyle().
				Foreground(brandAmber).
				Bold(true)

	TimelineUpcomingStyle = lipgloss.NewStyle().
				Foreground(textDim)

	TimelineConnectorStyle = lipgloss.NewStyle().
				Foreground(borderDefault)
)

// toneStyles maps domain tones to their display style.
var toneStyles = map[domain.Tone]lipgloss.Style{
	domain.ToneMuted:   lipgloss.NewStyle().Foreground(textDim).Bold(true),
	domain.ToneWarning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
	domain.ToneInfo:    lipgloss.NewStyle().Foreground(colorInfo).Bold(true),
	domain.ToneActive:  lipgloss.NewStyle().Foreground(colorActive).Bold(true),
	domain.ToneSuccess: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
	domain.ToneDanger:  lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
}

// ToneStyle returns the style for a domain tone.
func ToneStyle(t domain.Tone) lipgloss.Style {
	if s, ok := toneStyles[t]; ok {
		return s
	}
	return toneStyles[domain.ToneMuted]
}

// FormatStatus renders a request status as a colored badge with its icon.
func FormatStatus(status string) string {
	d := domain.Describe(domain.ParseStatus(status))
	return ToneStyle(d.Tone).Render(d.Icon + " " + d.Label)
}

// FormatQuoteStatus renders a quote status badge.
func FormatQuoteStatus(status string) string {
	d := domain.DescribeQuote(status)
	return ToneStyle(d.Tone).Render(d.Icon + " " + d.Label)
}

// FormatVerified renders the verification mark for professional listings.
func FormatVerified(verified bool) string {
	if verified {
		return VerifiedStyle.Render("✓ Verificado")
	}
	return ""
}

// FormatRating renders "★ 4.8 (120)" for a rating with its review count.
func FormatRating(rating float64, reviews int) string {
	if reviews == 0 {
		return RatingStyle.Render("★ sem avaliações")
	}
	return RatingStyle.Render("★ " + strconv.FormatFloat(rating, 'f', 1, 64) + " (" + strconv.Itoa(reviews) + ")")
}

// FormatHelpItem renders a help item as "Key Label"
func FormatHelpItem(key, label string) string {
	return FooterKeyStyle.Render(key) + " " + FooterLabelStyle.Render(label)
}

// ═══════════════════════════════════════════════════════════════════════════
// CARD RENDERING HELPERS
// ═══════════════════════════════════════════════════════════════════════════

// CardField represents a field in a detail card
type CardField struct {
	Label string
	Value string
}

// CardSection represents a section with multiple fields
type CardSection struct {
	Title  string
	Icon   string
	Fields []CardField
}

// RenderCardHeader renders a card header with icon and title
func RenderCardHeader(icon, title string) string {
	return CardHeaderStyle.Render(icon + " " + title)
}

// RenderCardField renders a single field row
func RenderCardField(f CardField) string {
	label := CardFieldLabelStyle.Render(f.Label)
	value := CardFieldValueStyle.Render(f.Value)
	return "  " + label + value
}

// RenderCardSection renders a section with title and fields
func RenderCardSection(s CardSection) string {
	var b strings.Builder
	if s.Title != "" {
		title := s.Title
		if s.Icon != "" {
			title = s.Icon + " " + title
		}
		b.WriteString(CardSectionStyle.Render(title) + "\n")
	}
	for _, f := range s.Fields {
		b.WriteString(RenderCardField(f) + "\n")
	}
	return b.String()
}

// RenderCardDivider renders a horizontal divider
func RenderCardDivider(width int) string {
	return CardDividerStyle.Render(strings.Repeat("─", width))
}

// RenderCard renders a complete card with sections
func RenderCard(header string, sections []CardSection, width int) string {
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, s := range sections {
		b.WriteString(RenderCardSection(s))
		if i < len(sections)-1 {
			b.WriteString(RenderCardDivider(width-6) + "\n")
		}
	}
	return CardStyle.Width(width).Render(b.String())
}
