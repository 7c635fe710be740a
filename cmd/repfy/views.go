package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/domain"
)

// Format string constants to avoid duplication
const (
	fmtCursorItem = "%s%s\n"
	fmtLabelInput = "%s\n%s\n\n"
)

// listConfig holds configuration for rendering a list view
type listConfig struct {
	title        string
	statusLine   string // optional filter/sort summary under the title
	emptyMessage string
	itemCount    int
	cursor       int
	renderRow    func(idx int, selected bool) string
}

// renderList renders a standardized list view
func renderList(cfg listConfig) string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render(cfg.title) + "\n")
	if cfg.statusLine != "" {
		b.WriteString(ui.InfoStyle.Render(cfg.statusLine) + "\n")
	}
	b.WriteString("\n")

	if cfg.itemCount == 0 {
		b.WriteString(ui.InfoStyle.Render(cfg.emptyMessage) + "\n")
		return b.String()
	}

	for i := 0; i < cfg.itemCount; i++ {
		b.WriteString(cfg.renderRow(i, cfg.cursor == i))
	}
	return b.String()
}

// renderCursor returns cursor string and style based on selection state
func renderCursor(selected bool) (string, lipgloss.Style) {
	if selected {
		return ui.CursorStyle.Render("▸ "), ui.SelectedMenuItemStyle
	}
	return "  ", ui.MenuItemStyle
}

// renderActionMenu renders a vertical action menu with cursor support
func renderActionMenu(actions []string, cursor int) string {
	var b strings.Builder
	b.WriteString("\n" + ui.CardSectionStyle.Render("Ações") + "\n")
	for i, action := range actions {
		c, style := renderCursor(cursor == i)
		b.WriteString(fmt.Sprintf(fmtCursorItem, c, style.Render(action)))
	}
	return b.String()
}

// renderForm renders a labelled input form
func (m Model) renderForm(title string, labels []string, help string) string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render(title) + "\n\n")

	maxItems := len(labels)
	if len(m.inputs) < maxItems {
		maxItems = len(m.inputs)
	}
	for i := 0; i < maxItems; i++ {
		label := ui.LabelStyle.Render(labels[i] + ":")
		b.WriteString(fmt.Sprintf(fmtLabelInput, label, m.inputs[i].View()))
	}

	if help == "" {
		help = formSaveCancel
	}
	b.WriteString(ui.InfoStyle.Render(help))
	return b.String()
}

// View renders the entire UI
func (m Model) View() string {
	// Auth views are full screen, everything else gets the app layout
	switch m.view {
	case ui.ViewLogin:
		return m.renderAuthView("Entrar", []string{"E-mail", "Senha"},
			"Enter entra, Ctrl+R redefine a senha, Ctrl+C sai")
	case ui.ViewResetPassword:
		return m.renderAuthView("Redefinir Senha", []string{"Código", "Nova senha", "Confirmação"},
			"Mínimo de 8 caracteres, com maiúscula, minúscula e número\nEnter confirma, Esc volta ao login")
	}
	return m.renderLayout()
}

// renderAuthView renders a centered full-screen auth form
func (m Model) renderAuthView(title string, labels []string, help string) string {
	boxWidth := 50

	var b strings.Builder
	b.WriteString(ui.HeaderTitleStyle.Render("◆ R E P F Y") + "\n")
	b.WriteString(ui.SubtitleStyle.Render("Serviços para sua casa, sem complicação") + "\n\n")
	b.WriteString(ui.TitleStyle.Render(title) + "\n\n")

	if len(m.inputs) >= len(labels) {
		for i, label := range labels {
			b.WriteString(ui.LabelStyle.Render(label) + "\n")
			b.WriteString(m.inputs[i].View() + "\n\n")
		}
		b.WriteString(ui.FooterHelpStyle.Render(help) + "\n")
	} else {
		b.WriteString(ui.InfoStyle.Render("Carregando...") + "\n")
	}

	if m.message != "" {
		b.WriteString("\n" + m.styledMessage())
	}

	b.WriteString("\n\n" + ui.FooterHelpStyle.Render("Servidor: "+m.cfg.API.BaseURL))

	box := ui.BoxStyle.Width(boxWidth).Render(b.String())

	// Center horizontally and vertically
	boxHeight := strings.Count(box, "\n") + 1
	topPadding := (m.height - boxHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	leftPadding := (m.width - boxWidth - 4) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	result.WriteString(strings.Repeat("\n", topPadding))
	for _, line := range strings.Split(box, "\n") {
		result.WriteString(strings.Repeat(" ", leftPadding) + line + "\n")
	}
	return result.String()
}

func (m Model) styledMessage() string {
	var msgStyle lipgloss.Style
	switch m.messageType {
	case ui.MessageTypeError:
		msgStyle = ui.ErrorStyle
	case ui.MessageTypeSuccess:
		msgStyle = ui.SuccessStyle
	default:
		msgStyle = ui.InfoStyle
	}
	return msgStyle.Render(m.message)
}

// renderDashboard renders the role-specific landing view
func (m Model) renderDashboard() string {
	if m.isProfessional() {
		return m.renderProfessionalDashboard()
	}
	return m.renderClientDashboard()
}

func (m Model) renderClientDashboard() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Painel") + "\n\n")

	withQuotes := 0
	for _, r := range m.requests {
		if domain.SummarizeRequest(r).HasNewQuotes {
			withQuotes++
		}
	}

	stats := []struct {
		icon  string
		label string
		value string
	}{
		{"◆", "Pedidos", fmt.Sprintf("%d", len(m.requests))},
		{"○", "Com orçamentos aguardando", fmt.Sprintf("%d", withQuotes)},
		{"✉", "Mensagens não lidas", fmt.Sprintf("%d", domain.UnreadTotal(m.conversations))},
		{"◉", "Notificações não lidas", fmt.Sprintf("%d", m.unreadNotifications())},
	}
	for _, stat := range stats {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			ui.CursorStyle.Render(stat.icon),
			ui.CardFieldLabelStyle.Render(stat.label),
			ui.HighlightStyle.Render(stat.value)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("Use ← ou Ctrl+B para acessar o menu"))
	return b.String()
}

func (m Model) renderProfessionalDashboard() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Painel Profissional") + "\n\n")

	jobStats := domain.SummarizeJobs(m.jobs)

	stats := []struct {
		icon  string
		label string
		value string
	}{
		{"◇", "Oportunidades abertas", fmt.Sprintf("%d", len(m.available))},
		{"◑", "Trabalhos em andamento", fmt.Sprintf("%d", jobStats.InProgress)},
		{"●", "Trabalhos concluídos", fmt.Sprintf("%d", jobStats.Completed)},
		{"$", "Valor contratado", formatBRL(jobStats.TotalValue)},
		{"✉", "Mensagens não lidas", fmt.Sprintf("%d", domain.UnreadTotal(m.conversations))},
	}
	for _, stat := range stats {
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			ui.CursorStyle.Render(stat.icon),
			ui.CardFieldLabelStyle.Render(stat.label),
			ui.HighlightStyle.Render(stat.value)))
	}

	b.WriteString("\n" + ui.InfoStyle.Render("Use ← ou Ctrl+B para acessar o menu"))
	return b.String()
}

func (m Model) renderRequestList() string {
	items := m.filteredRequests()
	filterLabel := "todos"
	if m.requestFilter.Status != "" && m.requestFilter.Status != domain.StatusAll {
		filterLabel = domain.Describe(domain.ParseStatus(m.requestFilter.Status)).Label
	}

	return renderList(listConfig{
		title:        "Meus Pedidos",
		statusLine:   fmt.Sprintf("Filtro: %s (n novo, f alterna, r atualiza)", filterLabel),
		emptyMessage: "Nenhum pedido encontrado",
		itemCount:    len(items),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			r := items[idx]
			cursor, style := renderCursor(selected)
			summary := domain.SummarizeRequest(r)
			quoteInfo := fmt.Sprintf("%d orçamentos", summary.QuoteCount)
			if summary.HasNewQuotes {
				quoteInfo = ui.HighlightStyle.Render(quoteInfo + " ●")
			}
			return fmt.Sprintf("%s%s | %s | %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-32s", truncate(r.Title, 32))),
				ui.FormatStatus(r.Status),
				quoteInfo)
		},
	})
}

func (m Model) renderRequestForm() string {
	return m.renderForm("Novo Pedido",
		[]string{"Título", "Descrição", "Categoria", "Cidade", "Estado", "Endereço"}, "")
}

func (m Model) renderRequestDetail() string {
	if m.selectedRequest == nil {
		return "Nenhum pedido selecionado"
	}
	r := m.selectedRequest
	status := domain.ParseStatus(r.Status)

	var b strings.Builder

	header := ui.RenderCardHeader("◆", truncate(r.Title, 40)+" "+ui.FormatStatus(r.Status))

	category := ""
	if r.Category != nil {
		category = r.Category.Name
	}
	sections := []ui.CardSection{
		{
			Title: "Pedido",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Descrição", Value: truncate(r.Description, 35)},
				{Label: "Categoria", Value: category},
				{Label: "Cidade", Value: r.City},
				{Label: "Orçamento", Value: formatOptionalBRL(r.Budget, "a combinar")},
				{Label: "Data desejada", Value: formatOptionalDate(r.PreferredDate, "flexível")},
				{Label: "Criado em", Value: r.CreatedAt.Format(dateTimeFormat)},
			},
		},
		{
			Title: "Orçamentos",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Recebidos", Value: fmt.Sprintf("%d", len(r.Quotes))},
			},
		},
	}

	cardWidth := 56
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")

	if domain.ShowTimeline(status) {
		b.WriteString(renderTimeline(domain.ClientTimeline(), status) + "\n")
	} else {
		b.WriteString(ui.ToneStyle(domain.ToneDanger).Render("Pedido cancelado") + "\n")
	}

	b.WriteString(renderActionMenu(m.requestDetailActions(), m.cursor))
	return b.String()
}

func (m Model) renderQuotes() string {
	quotes := m.sortedQuotes()
	comparison := domain.CompareQuotes(quotes)

	canAccept := m.selectedRequest != nil &&
		domain.CanAcceptQuote(domain.ParseStatus(m.selectedRequest.Status))
	statusLine := "Enter aceita o orçamento selecionado"
	if !canAccept {
		statusLine = "Este pedido não aceita mais orçamentos"
	}

	return renderList(listConfig{
		title:        "Orçamentos Recebidos",
		statusLine:   statusLine,
		emptyMessage: "Nenhum orçamento recebido ainda",
		itemCount:    len(quotes),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			q := quotes[idx]
			cursor, style := renderCursor(selected)

			name := "Profissional"
			rating := ""
			if q.Professional != nil {
				name = q.Professional.Name
				rating = ui.FormatRating(q.Professional.Rating, q.Professional.ReviewCount)
			}

			var marks []string
			if comparison.IsLowestPrice(q) {
				marks = append(marks, ui.HighlightStyle.Render("Menor preço"))
			}
			if comparison.IsHighestRating(q) {
				marks = append(marks, ui.VerifiedStyle.Render("Melhor avaliação"))
			}
			markStr := ""
			if len(marks) > 0 {
				markStr = " " + strings.Join(marks, " ")
			}

			row := fmt.Sprintf("%s%s | %s | %s | %s%s\n",
				cursor,
				style.Render(fmt.Sprintf("%-20s", truncate(name, 20))),
				formatBRL(q.Price),
				rating,
				ui.FormatQuoteStatus(q.Status),
				markStr)

			if selected && q.Message != "" {
				row += "      " + ui.ChatTimeStyle.Render(truncate(q.Message, 60)) + "\n"
			}
			return row
		},
	})
}

func (m Model) renderOpportunities() string {
	return renderList(listConfig{
		title:        "Oportunidades",
		statusLine:   "Pedidos abertos na sua área de atuação",
		emptyMessage: "Nenhuma oportunidade no momento",
		itemCount:    len(m.available),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			r := m.available[idx]
			cursor, style := renderCursor(selected)
			category := ""
			if r.Category != nil {
				category = r.Category.Name
			}
			return fmt.Sprintf("%s%s | %s | %s | %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-30s", truncate(r.Title, 30))),
				fmt.Sprintf("%-14s", truncate(category, 14)),
				truncate(r.City, 16),
				formatOptionalBRL(r.Budget, "a combinar"))
		},
	})
}

func (m Model) renderOpportunityDetail() string {
	if m.selectedRequest == nil {
		return "Nenhum pedido selecionado"
	}
	r := m.selectedRequest

	var b strings.Builder

	header := ui.RenderCardHeader("◇", truncate(r.Title, 44))

	category := ""
	if r.Category != nil {
		category = r.Category.Name
	}
	clientName := ""
	if r.Client != nil {
		clientName = r.Client.User.Name
	}
	sections := []ui.CardSection{
		{
			Title: "Pedido",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Descrição", Value: truncate(r.Description, 35)},
				{Label: "Categoria", Value: category},
				{Label: "Cidade", Value: r.City},
				{Label: "Orçamento", Value: formatOptionalBRL(r.Budget, "a combinar")},
				{Label: "Data desejada", Value: formatOptionalDate(r.PreferredDate, "flexível")},
			},
		},
		{
			Title: "Cliente",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Nome", Value: clientName},
				{Label: "Publicado em", Value: r.CreatedAt.Format(dateTimeFormat)},
			},
		},
	}

	cardWidth := 56
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString(renderActionMenu([]string{"Enviar Orçamento", "Voltar"}, m.cursor))
	return b.String()
}

func (m Model) renderQuoteForm() string {
	title := "Novo Orçamento"
	if m.selectedRequest != nil {
		title = "Orçamento para: " + truncate(m.selectedRequest.Title, 30)
	}
	return m.renderForm(title,
		[]string{"Valor", "Mensagem", "Prazo estimado", "Validade (dias)"}, "")
}

func (m Model) renderJobList() string {
	return renderList(listConfig{
		title:        "Meus Trabalhos",
		statusLine:   "Pedidos em que seu orçamento foi aceito",
		emptyMessage: "Nenhum trabalho contratado ainda",
		itemCount:    len(m.jobs),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			j := m.jobs[idx]
			cursor, style := renderCursor(selected)
			price := ""
			if j.AgreedQuote != nil {
				price = formatBRL(j.AgreedQuote.Price)
			}
			clientName := ""
			if j.Client != nil {
				clientName = j.Client.User.Name
			}
			return fmt.Sprintf("%s%s | %s | %s | %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-28s", truncate(j.Title, 28))),
				fmt.Sprintf("%-16s", truncate(clientName, 16)),
				price,
				ui.FormatStatus(j.Status))
		},
	})
}

func (m Model) renderJobDetail() string {
	if m.selectedRequest == nil {
		return "Nenhum trabalho selecionado"
	}
	j := m.selectedRequest
	status := domain.ParseStatus(j.Status)

	var b strings.Builder

	header := ui.RenderCardHeader("◆", truncate(j.Title, 40)+" "+ui.FormatStatus(j.Status))

	clientName := ""
	if j.Client != nil {
		clientName = j.Client.User.Name
	}
	agreedPrice := ""
	agreedDuration := ""
	if j.AgreedQuote != nil {
		agreedPrice = formatBRL(j.AgreedQuote.Price)
		agreedDuration = j.AgreedQuote.EstimatedDuration
	}
	sections := []ui.CardSection{
		{
			Title: "Trabalho",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Descrição", Value: truncate(j.Description, 35)},
				{Label: "Cliente", Value: clientName},
				{Label: "Cidade", Value: j.City},
			},
		},
		{
			Title: "Contratação",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Valor acordado", Value: agreedPrice},
				{Label: "Prazo", Value: agreedDuration},
			},
		},
	}

	cardWidth := 56
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")

	if domain.ShowTimeline(status) {
		b.WriteString(renderTimeline(domain.ProfessionalTimeline(), status) + "\n")
	} else {
		b.WriteString(ui.ToneStyle(domain.ToneDanger).Render("Pedido cancelado") + "\n")
	}

	b.WriteString(renderActionMenu(m.jobDetailActions(), m.cursor))
	return b.String()
}

func (m Model) renderCompleteForm() string {
	title := "Concluir Trabalho"
	if m.selectedRequest != nil {
		title = "Concluir: " + truncate(m.selectedRequest.Title, 30)
	}
	return m.renderForm(title, []string{"Observações"}, "Enter conclui, Esc cancela")
}

func (m Model) sortLabel() string {
	switch m.searchSort {
	case domain.SortByReviews:
		return "nº de avaliações"
	case domain.SortByPrice:
		return "preço"
	default:
		return "avaliação"
	}
}

func (m Model) renderSearch() string {
	items := m.filteredProfessionals()

	var filters []string
	if m.searchFilter.Search != "" {
		filters = append(filters, fmt.Sprintf("busca %q", m.searchFilter.Search))
	}
	if m.searchFilter.VerifiedOnly {
		filters = append(filters, "só verificados")
	}
	filterStr := ""
	if len(filters) > 0 {
		filterStr = " | " + strings.Join(filters, ", ")
	}

	var b strings.Builder
	b.WriteString(renderList(listConfig{
		title:        "Buscar Profissionais",
		statusLine:   fmt.Sprintf("Ordenado por %s%s (/ busca, s ordena, v verificados)", m.sortLabel(), filterStr),
		emptyMessage: "Nenhum profissional encontrado",
		itemCount:    len(items),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			p := items[idx]
			cursor, style := renderCursor(selected)
			verified := ""
			if p.Verified {
				verified = " " + ui.FormatVerified(true)
			}
			rate := "a combinar"
			if p.HourlyRate != nil {
				rate = formatBRL(*p.HourlyRate) + "/h"
			}
			return fmt.Sprintf("%s%s | %s | %s | %s%s\n",
				cursor,
				style.Render(fmt.Sprintf("%-22s", truncate(p.Name, 22))),
				ui.FormatRating(p.Rating, p.ReviewCount),
				fmt.Sprintf("%-14s", truncate(p.City, 14)),
				rate,
				verified)
		},
	}))

	if m.searching {
		b.WriteString("\n" + ui.LabelStyle.Render("Busca:") + "\n" + m.searchInput.View() + "\n")
	}
	return b.String()
}

func (m Model) renderProfessionalDetail() string {
	if m.selectedProfessional == nil {
		return "Nenhum profissional selecionado"
	}
	p := m.selectedProfessional

	var b strings.Builder

	title := p.Name
	if p.Verified {
		title += " " + ui.FormatVerified(true)
	}
	header := ui.RenderCardHeader("◆", title)

	var categoryNames []string
	for _, c := range p.Categories {
		categoryNames = append(categoryNames, c.Name)
	}
	location := p.City
	if p.State != "" {
		location += " - " + p.State
	}
	rate := "a combinar"
	if p.HourlyRate != nil {
		rate = formatBRL(*p.HourlyRate) + "/h"
	}
	sections := []ui.CardSection{
		{
			Title: "Perfil",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Sobre", Value: truncate(p.Bio, 35)},
				{Label: "Serviços", Value: truncate(strings.Join(categoryNames, ", "), 35)},
				{Label: "Local", Value: location},
				{Label: "Avaliação", Value: ui.FormatRating(p.Rating, p.ReviewCount)},
				{Label: "Valor/hora", Value: rate},
			},
		},
	}

	cardWidth := 56
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString("\n")

	if len(p.Portfolio) > 0 {
		b.WriteString(ui.CardSectionStyle.Render("Portfólio") + "\n")
		for _, item := range p.Portfolio {
			b.WriteString("  ◈ " + truncate(item.Title, 48) + "\n")
		}
		b.WriteString("\n")
	}

	if len(p.Reviews) > 0 {
		b.WriteString(ui.CardSectionStyle.Render("Avaliações Recentes") + "\n")
		shown := p.Reviews
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, rv := range shown {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				ui.FormatRating(rv.Rating, 1),
				ui.ChatTimeStyle.Render(rv.ClientName+" em "+rv.CreatedAt.Format(dateFormat))))
			if rv.Comment != "" {
				b.WriteString("    " + truncate(rv.Comment, 56) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(renderActionMenu([]string{"Voltar"}, m.cursor))
	return b.String()
}

func (m Model) renderConversationList() string {
	total := domain.UnreadTotal(m.conversations)
	statusLine := "Nenhuma mensagem não lida"
	if total > 0 {
		statusLine = fmt.Sprintf("%d mensagens não lidas", total)
	}

	userID := ""
	if m.sess != nil {
		userID = m.sess.UserID
	}

	return renderList(listConfig{
		title:        "Mensagens",
		statusLine:   statusLine,
		emptyMessage: "Nenhuma conversa ainda",
		itemCount:    len(m.conversations),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			c := m.conversations[idx]
			cursor, style := renderCursor(selected)

			partner := "Conversa"
			for _, p := range c.Participants {
				if p.ID != userID {
					partner = p.Name
					break
				}
			}

			preview := ""
			if c.LastMessage != nil {
				preview = truncate(c.LastMessage.Content, 36)
			}
			badge := "  "
			if c.UnreadCount > 0 {
				badge = ui.SidebarBadgeStyle.Render(fmt.Sprintf("%d", c.UnreadCount))
			}
			return fmt.Sprintf("%s%s %s | %s | %s\n",
				cursor,
				style.Render(fmt.Sprintf("%-20s", truncate(partner, 20))),
				badge,
				ui.ChatTimeStyle.Render(c.UpdatedAt.Format(dateTimeFormat)),
				preview)
		},
	})
}

func (m Model) renderChat() string {
	var b strings.Builder
	b.WriteString(ui.SubtitleStyle.Render("Conversa com "+m.chatPartnerName()) + "\n\n")

	if len(m.chatMessages) == 0 {
		b.WriteString(ui.InfoStyle.Render("Nenhuma mensagem ainda, comece a conversa") + "\n")
	}

	userID := ""
	if m.sess != nil {
		userID = m.sess.UserID
	}

	// Keep only the tail that fits the content area
	messages := m.chatMessages
	maxLines := m.height - ui.HeaderHeight - ui.FooterHeight - 8
	if maxLines > 0 && len(messages) > maxLines {
		messages = messages[len(messages)-maxLines:]
	}

	for _, msg := range messages {
		ts := ui.ChatTimeStyle.Render(msg.CreatedAt.Format("15:04"))
		if msg.SenderID == userID {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", ts,
				ui.ChatMineStyle.Render("você:"),
				ui.ChatMineStyle.Render(msg.Content)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", ts,
				ui.ChatTheirsStyle.Render(msg.Content)))
		}
	}

	b.WriteString("\n" + m.chatInput.View() + "\n")
	b.WriteString(ui.FooterHelpStyle.Render("Enter envia, Esc volta"))
	return b.String()
}

func (m Model) renderNotifications() string {
	return renderList(listConfig{
		title:        "Notificações",
		emptyMessage: "Nenhuma notificação",
		itemCount:    len(m.notifications),
		cursor:       m.cursor,
		renderRow: func(idx int, selected bool) string {
			n := m.notifications[idx]
			cursor, style := renderCursor(selected)
			icon := ui.StatusOfflineStyle.Render("○")
			if !n.Read {
				icon = ui.HighlightStyle.Render("●")
			}
			row := fmt.Sprintf("%s%s %s | %s\n",
				cursor,
				icon,
				style.Render(truncate(n.Title, 40)),
				ui.ChatTimeStyle.Render(n.CreatedAt.Format(dateTimeFormat)))
			if selected && n.Message != "" {
				row += "      " + ui.ChatTimeStyle.Render(truncate(n.Message, 60)) + "\n"
			}
			return row
		},
	})
}

func (m Model) unreadNotifications() int {
	count := 0
	for _, n := range m.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (m Model) renderSettings() string {
	var b strings.Builder

	header := ui.RenderCardHeader("◆", "Configurações")

	name, email, role, savedAt := "", "", "", ""
	token := ""
	if m.sess != nil {
		name = m.sess.Name
		email = m.sess.Email
		role = roleLabel(m.sess.Role)
		savedAt = m.sess.SavedAt.Format(dateTimeFormat)
		token = m.sess.Token
	}

	sections := []ui.CardSection{
		{
			Title: "Conexão",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "API", Value: m.cfg.API.BaseURL},
				{Label: "Token", Value: maskToken(token)},
			},
		},
		{
			Title: "Sessão",
			Icon:  "◈",
			Fields: []ui.CardField{
				{Label: "Usuário", Value: name},
				{Label: "E-mail", Value: email},
				{Label: "Perfil", Value: role},
				{Label: "Entrou em", Value: savedAt},
			},
		},
	}

	cardWidth := 56
	b.WriteString(ui.RenderCard(header, sections, cardWidth))
	b.WriteString(renderActionMenu(settingsActions(), m.cursor))
	b.WriteString("\n" + ui.InfoStyle.Render("Defina REPFY_API_URL para apontar para outro servidor"))
	return b.String()
}
