package main

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/domain"
)

func newChatInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Escreva uma mensagem..."
	ti.CharLimit = 500
	return ti
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Buscar por nome, serviço..."
	ti.CharLimit = 80
	return ti
}

// initLoginForm puts the model on the login view with fresh inputs.
func (m Model) initLoginForm() Model {
	m.inputs = make([]textinput.Model, 2)

	email := textinput.New()
	email.Placeholder = "E-mail"
	email.Focus()
	m.inputs[0] = email

	password := textinput.New()
	password.Placeholder = "Senha"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.inputs[1] = password

	m.focusIndex = 0
	m.view = ui.ViewLogin
	m.formEntity = "login"
	m.cursor = 0
	return m
}

// initResetPasswordForm opens the password reset form. The reset token is
// delivered out of band (e-mail) and pasted into the first field.
func (m Model) initResetPasswordForm() (tea.Model, tea.Cmd) {
	m.inputs = make([]textinput.Model, 3)

	token := textinput.New()
	token.Placeholder = "Código recebido por e-mail"
	token.Focus()
	m.inputs[0] = token

	password := textinput.New()
	password.Placeholder = "Nova senha"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.inputs[1] = password

	confirm := textinput.New()
	confirm.Placeholder = "Confirme a nova senha"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	m.inputs[2] = confirm

	m.focusIndex = 0
	m.view = ui.ViewResetPassword
	m.formEntity = "reset"
	m.message = ""
	return m, textinput.Blink
}

// initRequestForm opens the new service request form
func (m Model) initRequestForm() (tea.Model, tea.Cmd) {
	m.inputs = make([]textinput.Model, 6)

	placeholders := []string{
		"Título do pedido",
		"Descreva o que precisa",
		"Categoria (ex: Elétrica)",
		"Cidade",
		"Estado (UF)",
		"Endereço (opcional)",
	}
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}

	m.focusIndex = 0
	m.view = ui.ViewRequestForm
	m.formEntity = "request"
	return m, textinput.Blink
}

// initQuoteForm opens the quote submission form for the selected opportunity
func (m Model) initQuoteForm() (tea.Model, tea.Cmd) {
	m.inputs = make([]textinput.Model, 4)

	fields := []struct {
		placeholder string
		value       string
	}{
		{"Valor (ex: 350.00)", ""},
		{"Mensagem para o cliente", ""},
		{"Prazo estimado (ex: 2 dias)", ""},
		{"Validade em dias", "7"},
	}

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.SetValue(f.value)
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}

	m.focusIndex = 0
	m.view = ui.ViewQuoteForm
	m.formEntity = "quote"
	return m, textinput.Blink
}

// initCompleteForm opens the completion form with its optional note
func (m Model) initCompleteForm() (tea.Model, tea.Cmd) {
	m.inputs = make([]textinput.Model, 1)

	note := textinput.New()
	note.Placeholder = "Observações finais (opcional)"
	note.Focus()
	m.inputs[0] = note

	m.focusIndex = 0
	m.view = ui.ViewCompleteForm
	m.formEntity = "complete"
	return m, textinput.Blink
}

// Form submission handlers

func (m Model) handleLoginSubmit() (tea.Model, tea.Cmd) {
	if m.submitting || len(m.inputs) < 2 {
		return m, nil
	}
	email := m.inputs[0].Value()
	password := m.inputs[1].Value()

	if err := domain.ValidateLogin(email, password); err != nil {
		m.message = err.Error()
		m.messageType = ui.MessageTypeError
		m.focusIndex = 0
		m = m.updateInputFocus()
		return m, nil
	}

	m.submitting = true
	return m, m.doLogin(email, password)
}

func (m Model) handleResetSubmit() (tea.Model, tea.Cmd) {
	if m.submitting || len(m.inputs) < 3 {
		return m, nil
	}
	token := m.inputs[0].Value()
	password := m.inputs[1].Value()
	confirm := m.inputs[2].Value()

	if token == "" {
		m.message = "Informe o código de redefinição"
		m.messageType = ui.MessageTypeError
		m.focusIndex = 0
		m = m.updateInputFocus()
		return m, nil
	}
	if err := domain.ValidatePassword(password, confirm); err != nil {
		m.message = err.Error()
		m.messageType = ui.MessageTypeError
		m.focusIndex = 1
		m = m.updateInputFocus()
		return m, nil
	}

	m.submitting = true
	return m, m.doResetPassword(token, password)
}

func (m Model) handleRequestFormSubmit() (tea.Model, tea.Cmd) {
	if m.submitting || len(m.inputs) < 6 {
		return m, nil
	}

	draft := domain.RequestDraft{
		Title:       m.inputs[0].Value(),
		Description: m.inputs[1].Value(),
		Category:    m.inputs[2].Value(),
		City:        m.inputs[3].Value(),
		State:       m.inputs[4].Value(),
		Address:     m.inputs[5].Value(),
	}
	req, err := draft.Build(m.categories)
	if err != nil {
		m.message = err.Error()
		m.messageType = ui.MessageTypeError
		m.focusIndex = 0
		m = m.updateInputFocus()
		return m, nil
	}

	m.submitting = true
	return m, m.createRequest(req)
}

func (m Model) handleQuoteFormSubmit() (tea.Model, tea.Cmd) {
	if m.submitting || len(m.inputs) < 4 {
		return m, nil
	}
	if m.selectedRequest == nil {
		m.message = "Nenhum pedido selecionado"
		m.messageType = ui.MessageTypeError
		return m, nil
	}

	validDays, err := strconv.Atoi(m.inputs[3].Value())
	if err != nil {
		m.message = "Validade deve ser um número de dias"
		m.messageType = ui.MessageTypeError
		m.focusIndex = 3
		m = m.updateInputFocus()
		return m, nil
	}

	draft := domain.QuoteDraft{
		Price:             m.inputs[0].Value(),
		Message:           m.inputs[1].Value(),
		EstimatedDuration: m.inputs[2].Value(),
		ValidDays:         validDays,
	}
	req, err := draft.Build(m.selectedRequest.ID, time.Now())
	if err != nil {
		m.message = err.Error()
		m.messageType = ui.MessageTypeError
		m.focusIndex = 0
		m = m.updateInputFocus()
		return m, nil
	}

	m.submitting = true
	return m, m.submitQuote(req)
}

func (m Model) handleCompleteFormSubmit() (tea.Model, tea.Cmd) {
	if m.submitting || len(m.inputs) < 1 {
		return m, nil
	}
	if m.selectedRequest == nil {
		m.message = "Nenhum trabalho selecionado"
		m.messageType = ui.MessageTypeError
		return m, nil
	}

	m.submitting = true
	return m, m.completeJob(m.selectedRequest.ID, m.inputs[0].Value())
}
