package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/domain"
)

// renderLayout renders the full application layout with header, sidebar, content, and footer
func (m Model) renderLayout() string {
	sidebarWidth := ui.SidebarCollapsedW
	if m.sidebarOpen {
		sidebarWidth = ui.SidebarWidth
	}

	contentWidth := m.width - sidebarWidth
	if contentWidth < 20 {
		contentWidth = 20
	}

	contentHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if contentHeight < 5 {
		contentHeight = 5
	}

	header := m.renderHeader(m.width)
	sidebar := m.renderSidebar(sidebarWidth, contentHeight)
	content := m.renderContent(contentWidth, contentHeight)
	footer := m.renderFooter(m.width)

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)
}

// renderHeader renders the fixed top header with breadcrumb and user status
func (m Model) renderHeader(width int) string {
	logo := ui.HeaderTitleStyle.Render("◆ Repfy")

	breadcrumb := m.getBreadcrumb()
	crumbParts := make([]string, 0, len(breadcrumb))
	for i, crumb := range breadcrumb {
		if i == len(breadcrumb)-1 {
			crumbParts = append(crumbParts, ui.BreadcrumbActiveStyle.Render(crumb))
		} else {
			crumbParts = append(crumbParts, ui.BreadcrumbStyle.Render(crumb))
		}
	}
	sep := ui.BreadcrumbSeparatorStyle.Render(" ▸ ")
	crumbStr := strings.Join(crumbParts, sep)

	status := ui.StatusOfflineStyle.Render("○ Desconectado")
	if m.sess != nil {
		status = ui.StatusActiveStyle.Render("◉") + " " +
			ui.FooterLabelStyle.Render(m.sess.Name+" · "+roleLabel(m.sess.Role))
	}

	leftPart := logo + "  " + crumbStr
	rightPart := status

	// Subtract 4 to account for HeaderStyle's horizontal padding
	spacing := width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 4
	if spacing < 1 {
		spacing = 1
	}

	headerContent := leftPart + strings.Repeat(" ", spacing) + rightPart

	return ui.HeaderStyle.Width(width).Render(headerContent)
}

// sidebarItemState determines the visual state of a sidebar item
type sidebarItemState struct {
	style  lipgloss.Style
	cursor string
}

func (m Model) getSidebarItemState(index int, isCurrentView bool) sidebarItemState {
	isHovered := m.focusOnSidebar && m.sidebarCursor == index

	switch {
	case isHovered:
		return sidebarItemState{ui.SidebarItemSelectedStyle, "▸ "}
	case isCurrentView:
		return sidebarItemState{ui.SidebarItemHoverStyle, "▹ "}
	default:
		return sidebarItemState{ui.SidebarItemStyle, "  "}
	}
}

// sidebarBadge returns the unread badge text for a menu item, or "".
func (m Model) sidebarBadge(view ui.ViewState) string {
	switch view {
	case ui.ViewConversations:
		if total := domain.UnreadTotal(m.conversations); total > 0 {
			return ui.SidebarBadgeStyle.Render(fmt.Sprintf("%d", total))
		}
	case ui.ViewNotifications:
		if count := m.unreadNotifications(); count > 0 {
			return ui.SidebarBadgeStyle.Render(fmt.Sprintf("%d", count))
		}
	}
	return ""
}

// renderSidebarOpen renders the expanded sidebar
func (m Model) renderSidebarOpen(items []ui.MenuItem, width int) string {
	var b strings.Builder

	toggleHint := ui.SidebarToggleStyle.Render("[Ctrl+B]")
	b.WriteString(ui.SidebarHeaderStyle.Render("MENU") + " " + toggleHint + "\n\n")

	currentIdx := m.getSidebarIndexForView()
	for i, item := range items {
		state := m.getSidebarItemState(i, currentIdx == i)
		line := fmt.Sprintf("%s%s %s", state.cursor, item.Icon, item.Title)
		if badge := m.sidebarBadge(item.View); badge != "" {
			line += " " + badge
		}
		b.WriteString(state.style.Width(width-2).Render(line) + "\n")
	}
	return b.String()
}

// renderSidebarCollapsed renders the collapsed sidebar (icons only)
func (m Model) renderSidebarCollapsed(items []ui.MenuItem) string {
	var b strings.Builder
	b.WriteString(ui.SidebarToggleStyle.Render("≡\n\n"))

	currentIdx := m.getSidebarIndexForView()
	for i, item := range items {
		state := m.getSidebarItemState(i, currentIdx == i)
		b.WriteString(state.style.Render(item.Icon) + "\n")
	}
	return b.String()
}

// renderSidebar renders the collapsible sidebar menu
func (m Model) renderSidebar(width, height int) string {
	items := ui.MenuForRole(m.role())

	var content string
	if m.sidebarOpen {
		content = m.renderSidebarOpen(items, width)
	} else {
		content = m.renderSidebarCollapsed(items)
	}

	// Fill remaining height
	lines := strings.Count(content, "\n")
	padding := strings.Repeat("\n", max(0, height-1-lines))

	return ui.SidebarStyle.Width(width).Height(height).Render(content + padding)
}

// renderContent renders the main content area
func (m Model) renderContent(width, height int) string {
	var content string

	switch m.view {
	case ui.ViewDashboard:
		content = m.renderDashboard()
	case ui.ViewRequests:
		content = m.renderRequestList()
	case ui.ViewRequestForm:
		content = m.renderRequestForm()
	case ui.ViewRequestDetail:
		content = m.renderRequestDetail()
	case ui.ViewQuotes:
		content = m.renderQuotes()
	case ui.ViewOpportunities:
		content = m.renderOpportunities()
	case ui.ViewOpportunityDetail:
		content = m.renderOpportunityDetail()
	case ui.ViewQuoteForm:
		content = m.renderQuoteForm()
	case ui.ViewJobs:
		content = m.renderJobList()
	case ui.ViewJobDetail:
		content = m.renderJobDetail()
	case ui.ViewCompleteForm:
		content = m.renderCompleteForm()
	case ui.ViewSearch:
		content = m.renderSearch()
	case ui.ViewProfessionalDetail:
		content = m.renderProfessionalDetail()
	case ui.ViewConversations:
		content = m.renderConversationList()
	case ui.ViewChat:
		content = m.renderChat()
	case ui.ViewNotifications:
		content = m.renderNotifications()
	case ui.ViewSettings:
		content = m.renderSettings()
	default:
		content = m.renderDashboard()
	}

	// Add message if present
	if m.message != "" {
		content += "\n" + m.styledMessage()
	}

	return ui.ContentStyle.Width(width).Height(height).Render(content)
}

// renderFooter renders the fixed bottom footer with help and connection info
func (m Model) renderFooter(width int) string {
	help := m.getContextualHelp()

	statusIcon := ui.StatusActiveStyle.Render("●")
	if m.sess == nil {
		statusIcon = ui.StatusOfflineStyle.Render("○")
	}
	apiInfo := statusIcon + " " + ui.FooterLabelStyle.Render(m.cfg.API.BaseURL)

	spacing := width - lipgloss.Width(help) - lipgloss.Width(apiInfo) - 4
	if spacing < 1 {
		spacing = 1
	}

	footerContent := help + strings.Repeat(" ", spacing) + apiInfo

	return ui.FooterStyle.Width(width).Render(footerContent)
}

// getContextualHelp returns styled help text based on current context
func (m Model) getContextualHelp() string {
	item := ui.FormatHelpItem
	sep := ui.FooterHelpStyle.Render(" │ ")

	base := item("Ctrl+B", "Menu")

	if m.focusOnSidebar {
		return base + sep + item("↑↓", "Navegar") + sep + item("Enter", "Abrir") + sep + item("→", "Conteúdo")
	}

	switch m.view {
	case ui.ViewDashboard:
		return base + sep + item("←", "Menu") + sep + item("r", "Atualizar") + sep + item("q", "Sair")
	case ui.ViewRequests:
		return base + sep + item("n", "Novo") + sep + item("f", "Filtrar") + sep + item("r", "Atualizar") + sep + item("Esc", "Voltar")
	case ui.ViewQuotes:
		return base + sep + item("Enter", "Aceitar") + sep + item("r", "Atualizar") + sep + item("Esc", "Voltar")
	case ui.ViewOpportunities, ui.ViewJobs, ui.ViewConversations, ui.ViewNotifications:
		return base + sep + item("Enter", "Abrir") + sep + item("r", "Atualizar") + sep + item("Esc", "Voltar")
	case ui.ViewOpportunityDetail:
		return base + sep + item("n", "Orçamento") + sep + item("Esc", "Voltar")
	case ui.ViewSearch:
		return base + sep + item("/", "Buscar") + sep + item("s", "Ordenar") + sep + item("v", "Verificados") + sep + item("Esc", "Voltar")
	case ui.ViewChat:
		return item("Enter", "Enviar") + sep + item("Esc", "Voltar")
	case ui.ViewRequestForm, ui.ViewQuoteForm, ui.ViewCompleteForm:
		return item("Tab", "Próximo") + sep + item("⇧Tab", "Anterior") + sep + item("Enter", "Enviar") + sep + item("Esc", "Cancelar")
	default:
		return base + sep + item("Esc", "Voltar") + sep + item("q", "Sair")
	}
}
