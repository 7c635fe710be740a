package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/api"
	"github.com/repfy/repfy-tui/internal/domain"
	"github.com/repfy/repfy-tui/internal/session"
)

// filteredRequests applies the active status/search filter to the client's
// request list.
func (m Model) filteredRequests() []api.ServiceRequest {
	return m.requestFilter.Apply(m.requests)
}

// filteredProfessionals applies the directory filter and the active ordering.
func (m Model) filteredProfessionals() []api.Professional {
	return domain.SortProfessionals(m.searchFilter.Apply(m.professionals), m.searchSort)
}

// sortedQuotes orders the open request's quotes best-rated first.
func (m Model) sortedQuotes() []api.Quote {
	return domain.SortQuotesByRating(m.quotes)
}

// handleLoginMsg processes the login response
func (m Model) handleLoginMsg(msg loginMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.message = msg.err.Error()
		m.messageType = ui.MessageTypeError
		return m, nil
	}
	if msg.resp == nil {
		m.message = "Login falhou: resposta vazia do servidor"
		m.messageType = ui.MessageTypeError
		return m, nil
	}

	sess := &session.Session{
		Token:  msg.resp.AccessToken,
		UserID: msg.resp.User.ID,
		Name:   msg.resp.User.Name,
		Email:  msg.resp.User.Email,
		Role:   session.Role(msg.resp.User.Role),
	}
	if err := m.store.Save(sess); err != nil {
		log.Warn("failed to persist session", "error", err)
	}

	m.sess = sess
	m.inputs = nil
	m.formEntity = ""
	m.view = ui.ViewDashboard
	m.cursor = 0
	m.message = "Bem-vindo, " + sess.Name + "!"
	m.messageType = ui.MessageTypeSuccess
	return m, m.fetchAllData()
}

// handleResetDone returns to the login form after a completed password reset
func (m Model) handleResetDone() Model {
	m.submitting = false
	m = m.initLoginForm()
	m.message = "Senha redefinida, entre com a nova senha"
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleRequestCreated puts the new request on top of the list
func (m Model) handleRequestCreated(msg requestCreatedMsg) Model {
	m.submitting = false
	if msg.request != nil {
		m.requests = append([]api.ServiceRequest{*msg.request}, m.requests...)
	}
	m.inputs = nil
	m.formEntity = ""
	m.view = ui.ViewRequests
	m.cursor = 0
	m.message = "Pedido publicado"
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleRequestCancelled marks the request cancelled locally
func (m Model) handleRequestCancelled(msg requestCancelledMsg) Model {
	m.submitting = false
	for i := range m.requests {
		if m.requests[i].ID == msg.id {
			m.requests[i].Status = string(domain.StatusCancelled)
		}
	}
	if m.selectedRequest != nil && m.selectedRequest.ID == msg.id {
		m.selectedRequest.Status = string(domain.StatusCancelled)
	}
	m.cursor = 0
	m.message = "Pedido cancelado"
	m.messageType = ui.MessageTypeInfo
	return m
}

// handleQuoteSubmitted removes the quoted request from the opportunity list
func (m Model) handleQuoteSubmitted(msg quoteSubmittedMsg) Model {
	m.submitting = false
	if m.selectedRequest != nil {
		id := m.selectedRequest.ID
		out := m.available[:0]
		for _, r := range m.available {
			if r.ID != id {
				out = append(out, r)
			}
		}
		m.available = out
	}
	m.inputs = nil
	m.formEntity = ""
	m.selectedRequest = nil
	m.view = ui.ViewOpportunities
	m.cursor = 0
	m.message = "Orçamento enviado"
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleQuoteAccepted applies the backend's accept side effects locally:
// the request moves to ACCEPTED and its other pending quotes are rejected.
func (m Model) handleQuoteAccepted(msg quoteAcceptedMsg) Model {
	m.submitting = false

	patch := func(quotes []api.Quote) {
		for i := range quotes {
			switch {
			case quotes[i].ID == msg.quoteID:
				quotes[i].Status = domain.QuoteStatusAccepted
			case quotes[i].Status == domain.QuoteStatusPending:
				quotes[i].Status = domain.QuoteStatusRejected
			}
		}
	}
	patch(m.quotes)

	if m.selectedRequest != nil {
		m.selectedRequest.Status = string(domain.StatusAccepted)
		patch(m.selectedRequest.Quotes)
		for i := range m.requests {
			if m.requests[i].ID == m.selectedRequest.ID {
				m.requests[i].Status = string(domain.StatusAccepted)
				patch(m.requests[i].Quotes)
			}
		}
	}

	m.message = "Orçamento aceito"
	m.messageType = ui.MessageTypeSuccess
	return m
}

func (m Model) patchJobStatus(id string, status domain.Status) Model {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i].Status = string(status)
		}
	}
	if m.selectedRequest != nil && m.selectedRequest.ID == id {
		m.selectedRequest.Status = string(status)
	}
	return m
}

// handleJobStarted marks the job in progress locally
func (m Model) handleJobStarted(msg jobStartedMsg) Model {
	m.submitting = false
	m = m.patchJobStatus(msg.id, domain.StatusInProgress)
	m.message = "Trabalho iniciado"
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleJobCompleted marks the job complete locally
func (m Model) handleJobCompleted(msg jobCompletedMsg) Model {
	m.submitting = false
	m = m.patchJobStatus(msg.id, domain.StatusCompleted)
	m.inputs = nil
	m.formEntity = ""
	if m.view == ui.ViewCompleteForm {
		m.view = ui.ViewJobDetail
	}
	m.message = "Trabalho concluído"
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleSentMessage appends the stored message and resets the composer
func (m Model) handleSentMessage(msg sentMessageMsg) Model {
	m.submitting = false
	if msg.message != nil {
		m.chatMessages = append(m.chatMessages, *msg.message)
		if m.selectedConversation != nil {
			for i := range m.conversations {
				if m.conversations[i].ID == m.selectedConversation.ID {
					m.conversations[i].LastMessage = msg.message
				}
			}
		}
	}
	m.chatInput.SetValue("")
	return m
}

// handleChatKey routes keys inside the chat view: the composer owns
// everything except esc, enter and quit.
func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.chatInput.Blur()
		m.chatInput.SetValue("")
		m.selectedConversation = nil
		m.chatMessages = nil
		m.view = ui.ViewConversations
		m.cursor = 0
		return m, m.fetchConversations()
	case "enter":
		content := m.chatInput.Value()
		if content == "" || m.submitting || m.selectedConversation == nil {
			return m, nil
		}
		m.submitting = true
		return m, m.sendMessage(m.selectedConversation.ID, content)
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// handleSearchInputKey routes keys while the directory search box is focused
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Cancel the edit, keeping the filter as it was
		m.searchInput.SetValue(m.searchFilter.Search)
		m.searchInput.Blur()
		m.searching = false
		return m, nil
	case "enter":
		m.searchFilter.Search = m.searchInput.Value()
		m.searchInput.Blur()
		m.searching = false
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// getParentView returns the parent sidebar view for a given view
func getParentView(v ui.ViewState) ui.ViewState {
	switch v {
	case ui.ViewRequestDetail, ui.ViewQuotes, ui.ViewRequestForm:
		return ui.ViewRequests
	case ui.ViewOpportunityDetail, ui.ViewQuoteForm:
		return ui.ViewOpportunities
	case ui.ViewJobDetail, ui.ViewCompleteForm:
		return ui.ViewJobs
	case ui.ViewProfessionalDetail:
		return ui.ViewSearch
	case ui.ViewChat:
		return ui.ViewConversations
	default:
		return v
	}
}

// getSidebarIndexForView returns the sidebar index for the current view
func (m Model) getSidebarIndexForView() int {
	targetView := getParentView(m.view)
	for i, item := range ui.MenuForRole(m.role()) {
		if item.View == targetView {
			return i
		}
	}
	return 0
}

// handleSidebarSelect handles selection from the sidebar
func (m Model) handleSidebarSelect() (tea.Model, tea.Cmd) {
	items := ui.MenuForRole(m.role())
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(items) {
		return m, nil
	}
	selectedView := items[m.sidebarCursor].View
	m.view = selectedView
	m.cursor = 0
	m.focusOnSidebar = false

	// Fetch data for the new view
	switch selectedView {
	case ui.ViewDashboard:
		return m, m.fetchAllData()
	case ui.ViewRequests:
		return m, m.fetchRequests()
	case ui.ViewOpportunities:
		return m, m.fetchAvailable()
	case ui.ViewJobs:
		return m, m.fetchJobs()
	case ui.ViewSearch:
		return m, tea.Batch(m.fetchProfessionals(), m.fetchCategories())
	case ui.ViewConversations:
		return m, m.fetchConversations()
	case ui.ViewNotifications:
		return m, m.fetchNotifications()
	}
	return m, nil
}

// getBreadcrumb returns the breadcrumb path for the current view
func (m Model) getBreadcrumb() []string {
	switch m.view {
	case ui.ViewLogin:
		return []string{"Entrar"}
	case ui.ViewResetPassword:
		return []string{"Entrar", "Redefinir Senha"}
	case ui.ViewDashboard:
		return []string{"Painel"}
	case ui.ViewRequests:
		return []string{"Painel", "Meus Pedidos"}
	case ui.ViewRequestForm:
		return []string{"Painel", "Meus Pedidos", "Novo Pedido"}
	case ui.ViewRequestDetail:
		if m.selectedRequest != nil {
			return []string{"Painel", "Meus Pedidos", truncate(m.selectedRequest.Title, 24)}
		}
		return []string{"Painel", "Meus Pedidos", "Detalhe"}
	case ui.ViewQuotes:
		return []string{"Painel", "Meus Pedidos", "Orçamentos"}
	case ui.ViewOpportunities:
		return []string{"Painel", "Oportunidades"}
	case ui.ViewOpportunityDetail:
		if m.selectedRequest != nil {
			return []string{"Painel", "Oportunidades", truncate(m.selectedRequest.Title, 24)}
		}
		return []string{"Painel", "Oportunidades", "Detalhe"}
	case ui.ViewQuoteForm:
		return []string{"Painel", "Oportunidades", "Novo Orçamento"}
	case ui.ViewJobs:
		return []string{"Painel", "Meus Trabalhos"}
	case ui.ViewJobDetail:
		if m.selectedRequest != nil {
			return []string{"Painel", "Meus Trabalhos", truncate(m.selectedRequest.Title, 24)}
		}
		return []string{"Painel", "Meus Trabalhos", "Detalhe"}
	case ui.ViewCompleteForm:
		return []string{"Painel", "Meus Trabalhos", "Concluir"}
	case ui.ViewSearch:
		return []string{"Painel", "Buscar Profissionais"}
	case ui.ViewProfessionalDetail:
		if m.selectedProfessional != nil {
			return []string{"Painel", "Buscar Profissionais", m.selectedProfessional.Name}
		}
		return []string{"Painel", "Buscar Profissionais", "Perfil"}
	case ui.ViewConversations:
		return []string{"Painel", "Mensagens"}
	case ui.ViewChat:
		return []string{"Painel", "Mensagens", m.chatPartnerName()}
	case ui.ViewNotifications:
		return []string{"Painel", "Notificações"}
	case ui.ViewSettings:
		return []string{"Painel", "Configurações"}
	default:
		return []string{"Painel"}
	}
}

// chatPartnerName names the other side of the open conversation.
func (m Model) chatPartnerName() string {
	if m.selectedConversation == nil {
		return "Conversa"
	}
	userID := ""
	if m.sess != nil {
		userID = m.sess.UserID
	}
	for _, p := range m.selectedConversation.Participants {
		if p.ID != userID {
			return p.Name
		}
	}
	return "Conversa"
}

func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	// Cannot escape from login if not authenticated
	if m.view == ui.ViewLogin {
		return m, nil
	}

	// If focused on sidebar, unfocus
	if m.focusOnSidebar {
		m.focusOnSidebar = false
		return m, nil
	}

	switch m.view {
	case ui.ViewResetPassword:
		m = m.initLoginForm()
		return m, nil
	case ui.ViewRequestForm:
		m.view = ui.ViewRequests
	case ui.ViewRequestDetail:
		m.view = ui.ViewRequests
		m.selectedRequest = nil
	case ui.ViewQuotes:
		m.view = ui.ViewRequestDetail
		m.quotes = nil
	case ui.ViewOpportunityDetail:
		m.view = ui.ViewOpportunities
		m.selectedRequest = nil
	case ui.ViewQuoteForm:
		m.view = ui.ViewOpportunityDetail
	case ui.ViewJobDetail:
		m.view = ui.ViewJobs
		m.selectedRequest = nil
	case ui.ViewCompleteForm:
		m.view = ui.ViewJobDetail
	case ui.ViewProfessionalDetail:
		m.view = ui.ViewSearch
		m.selectedProfessional = nil
	default:
		m.view = ui.ViewDashboard
	}
	m.cursor = 0
	m.inputs = nil
	m.formEntity = ""
	return m, nil
}

func (m Model) handleDown() int {
	if m.focusOnSidebar {
		items := ui.MenuForRole(m.role())
		if m.sidebarCursor < len(items)-1 {
			return m.sidebarCursor + 1
		}
		return m.sidebarCursor
	}
	maxItems := m.getMaxItems()
	if m.cursor < maxItems-1 {
		return m.cursor + 1
	}
	return m.cursor
}

func (m Model) handleUp() int {
	if m.focusOnSidebar {
		if m.sidebarCursor > 0 {
			return m.sidebarCursor - 1
		}
		return m.sidebarCursor
	}
	if m.cursor > 0 {
		return m.cursor - 1
	}
	return m.cursor
}

// requestDetailActions lists the actions available on the open request.
func (m Model) requestDetailActions() []string {
	actions := []string{}
	if m.selectedRequest != nil {
		if len(m.selectedRequest.Quotes) > 0 {
			actions = append(actions, "Ver Orçamentos")
		}
		if domain.CanCancel(domain.ParseStatus(m.selectedRequest.Status)) {
			actions = append(actions, "Cancelar Pedido")
		}
	}
	return append(actions, "Voltar")
}

// jobDetailActions lists the transitions the job's state allows.
func (m Model) jobDetailActions() []string {
	actions := []string{}
	if m.selectedRequest != nil {
		status := domain.ParseStatus(m.selectedRequest.Status)
		if domain.CanStart(status) {
			actions = append(actions, "Iniciar Trabalho")
		}
		if domain.CanComplete(status) {
			actions = append(actions, "Concluir Trabalho")
		}
	}
	return append(actions, "Voltar")
}

func settingsActions() []string {
	return []string{"Encerrar Sessão", "Voltar"}
}

func (m Model) getMaxItems() int {
	switch m.view {
	case ui.ViewRequests:
		return max(1, len(m.filteredRequests()))
	case ui.ViewRequestDetail:
		return len(m.requestDetailActions())
	case ui.ViewQuotes:
		return max(1, len(m.quotes))
	case ui.ViewOpportunities:
		return max(1, len(m.available))
	case ui.ViewOpportunityDetail:
		return 2 // Enviar Orçamento, Voltar
	case ui.ViewJobs:
		return max(1, len(m.jobs))
	case ui.ViewJobDetail:
		return len(m.jobDetailActions())
	case ui.ViewSearch:
		return max(1, len(m.filteredProfessionals()))
	case ui.ViewConversations:
		return max(1, len(m.conversations))
	case ui.ViewNotifications:
		return max(1, len(m.notifications))
	case ui.ViewSettings:
		return len(settingsActions())
	default:
		return 1
	}
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewLogin:
		return m.handleLoginSubmit()
	case ui.ViewResetPassword:
		return m.handleResetSubmit()
	case ui.ViewRequestForm:
		return m.handleRequestFormSubmit()
	case ui.ViewQuoteForm:
		return m.handleQuoteFormSubmit()
	case ui.ViewCompleteForm:
		return m.handleCompleteFormSubmit()
	case ui.ViewRequests:
		return m.handleRequestSelect()
	case ui.ViewRequestDetail:
		return m.handleRequestDetailAction()
	case ui.ViewQuotes:
		return m.handleQuoteAccept()
	case ui.ViewOpportunities:
		return m.handleOpportunitySelect()
	case ui.ViewOpportunityDetail:
		return m.handleOpportunityDetailAction()
	case ui.ViewJobs:
		return m.handleJobSelect()
	case ui.ViewJobDetail:
		return m.handleJobDetailAction()
	case ui.ViewSearch:
		return m.handleProfessionalSelect()
	case ui.ViewConversations:
		return m.handleConversationSelect()
	case ui.ViewSettings:
		return m.handleSettingsAction()
	}
	return m, nil
}

func (m Model) handleRequestSelect() (tea.Model, tea.Cmd) {
	items := m.filteredRequests()
	if m.cursor < 0 || m.cursor >= len(items) {
		return m, nil
	}
	req := items[m.cursor]
	m.selectedRequest = &req
	m.view = ui.ViewRequestDetail
	m.cursor = 0
	// Refresh the detail so the quote list is current
	return m, m.fetchRequest(req.ID)
}

func (m Model) handleRequestDetailAction() (tea.Model, tea.Cmd) {
	if m.selectedRequest == nil {
		m.view = ui.ViewRequests
		m.cursor = 0
		return m, nil
	}

	actions := m.requestDetailActions()
	if m.cursor < 0 || m.cursor >= len(actions) {
		return m, nil
	}

	switch actions[m.cursor] {
	case "Ver Orçamentos":
		m.view = ui.ViewQuotes
		m.cursor = 0
		return m, m.fetchQuotes(m.selectedRequest.ID)
	case "Cancelar Pedido":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cancelRequest(m.selectedRequest.ID)
	case "Voltar":
		m.view = ui.ViewRequests
		m.cursor = 0
		m.selectedRequest = nil
	}
	return m, nil
}

// handleQuoteAccept accepts the highlighted quote when the request is still open
func (m Model) handleQuoteAccept() (tea.Model, tea.Cmd) {
	quotes := m.sortedQuotes()
	if m.cursor < 0 || m.cursor >= len(quotes) || m.submitting {
		return m, nil
	}
	if m.selectedRequest == nil || !domain.CanAcceptQuote(domain.ParseStatus(m.selectedRequest.Status)) {
		m.message = "Este pedido não aceita mais orçamentos"
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	quote := quotes[m.cursor]
	if quote.Status != domain.QuoteStatusPending {
		m.message = "Só orçamentos pendentes podem ser aceitos"
		m.messageType = ui.MessageTypeInfo
		return m, nil
	}
	m.submitting = true
	return m, m.acceptQuote(quote.ID)
}

func (m Model) handleOpportunitySelect() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.available) {
		return m, nil
	}
	req := m.available[m.cursor]
	m.selectedRequest = &req
	m.view = ui.ViewOpportunityDetail
	m.cursor = 0
	return m, nil
}

func (m Model) handleOpportunityDetailAction() (tea.Model, tea.Cmd) {
	if m.selectedRequest == nil {
		m.view = ui.ViewOpportunities
		m.cursor = 0
		return m, nil
	}

	actions := []string{"Enviar Orçamento", "Voltar"}
	if m.cursor < 0 || m.cursor >= len(actions) {
		return m, nil
	}

	switch actions[m.cursor] {
	case "Enviar Orçamento":
		return m.initQuoteForm()
	case "Voltar":
		m.view = ui.ViewOpportunities
		m.cursor = 0
		m.selectedRequest = nil
	}
	return m, nil
}

func (m Model) handleJobSelect() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.jobs) {
		return m, nil
	}
	job := m.jobs[m.cursor]
	m.selectedRequest = &job
	m.view = ui.ViewJobDetail
	m.cursor = 0
	return m, nil
}

func (m Model) handleJobDetailAction() (tea.Model, tea.Cmd) {
	if m.selectedRequest == nil {
		m.view = ui.ViewJobs
		m.cursor = 0
		return m, nil
	}

	actions := m.jobDetailActions()
	if m.cursor < 0 || m.cursor >= len(actions) {
		return m, nil
	}

	switch actions[m.cursor] {
	case "Iniciar Trabalho":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.startJob(m.selectedRequest.ID)
	case "Concluir Trabalho":
		return m.initCompleteForm()
	case "Voltar":
		m.view = ui.ViewJobs
		m.cursor = 0
		m.selectedRequest = nil
	}
	return m, nil
}

func (m Model) handleProfessionalSelect() (tea.Model, tea.Cmd) {
	items := m.filteredProfessionals()
	if m.cursor < 0 || m.cursor >= len(items) {
		return m, nil
	}
	p := items[m.cursor]
	m.selectedProfessional = &p
	m.view = ui.ViewProfessionalDetail
	m.cursor = 0
	// The list shape omits portfolio and reviews; fetch the full profile
	return m, m.fetchProfessional(p.ID)
}

func (m Model) handleConversationSelect() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.conversations) {
		return m, nil
	}
	conv := m.conversations[m.cursor]
	m.selectedConversation = &conv
	m.view = ui.ViewChat
	m.cursor = 0
	m.chatInput.SetValue("")
	m.chatInput.Focus()
	return m, tea.Batch(m.fetchMessages(conv.ID), textinput.Blink)
}

func (m Model) handleSettingsAction() (tea.Model, tea.Cmd) {
	actions := settingsActions()
	if m.cursor < 0 || m.cursor >= len(actions) {
		return m, nil
	}

	switch actions[m.cursor] {
	case "Encerrar Sessão":
		return m.handleLogout()
	case "Voltar":
		m.view = ui.ViewDashboard
		m.cursor = 0
	}
	return m, nil
}

// handleLogout clears the stored session and returns to the login form
func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	if err := m.store.Clear(); err != nil {
		log.Warn("failed to clear stored session", "error", err)
	}
	m.client.ClearToken()
	m.sess = nil
	m.requests = nil
	m.available = nil
	m.jobs = nil
	m.quotes = nil
	m.conversations = nil
	m.chatMessages = nil
	m.notifications = nil
	m.selectedRequest = nil
	m.selectedProfessional = nil
	m.selectedConversation = nil
	m = m.initLoginForm()
	m.message = "Sessão encerrada"
	m.messageType = ui.MessageTypeInfo
	return m, textinput.Blink
}

func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	switch m.view {
	case ui.ViewDashboard:
		return m, m.fetchAllData()
	case ui.ViewRequests:
		return m, m.fetchRequests()
	case ui.ViewRequestDetail:
		if m.selectedRequest != nil {
			return m, m.fetchRequest(m.selectedRequest.ID)
		}
	case ui.ViewQuotes:
		if m.selectedRequest != nil {
			return m, m.fetchQuotes(m.selectedRequest.ID)
		}
	case ui.ViewOpportunities:
		return m, m.fetchAvailable()
	case ui.ViewJobs:
		return m, m.fetchJobs()
	case ui.ViewSearch:
		return m, m.fetchProfessionals()
	case ui.ViewConversations:
		return m, m.fetchConversations()
	case ui.ViewNotifications:
		return m, m.fetchNotifications()
	}
	return m, nil
}

// updateInputFocus updates which form input is focused
func (m Model) updateInputFocus() Model {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}
