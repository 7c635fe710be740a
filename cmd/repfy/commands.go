package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repfy/repfy-tui/internal/api"
)

// fetchTimeout is the maximum time to wait for API fetch operations
const fetchTimeout = 10 * time.Second

func (m Model) timeout() time.Duration {
	if m.cfg != nil && m.cfg.API.Timeout > 0 {
		return m.cfg.API.Timeout
	}
	return fetchTimeout
}

// fetchAllData returns a batch command that fetches the role's working set
// in parallel.
func (m Model) fetchAllData() tea.Cmd {
	shared := []tea.Cmd{
		m.fetchCategories(),
		m.fetchConversations(),
		m.fetchNotifications(),
	}
	if m.isProfessional() {
		return tea.Batch(append(shared,
			m.fetchAvailable(),
			m.fetchJobs(),
		)...)
	}
	return tea.Batch(append(shared,
		m.fetchRequests(),
		m.fetchProfessionals(),
	)...)
}

// API fetch commands with timeout support
func (m Model) fetchRequests() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		requests, err := client.ListRequests(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchRequestsMsg{requests}
	}
}

func (m Model) fetchRequest(id string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		request, err := client.GetRequest(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return fetchRequestMsg{request}
	}
}

func (m Model) fetchAvailable() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		requests, err := client.ListAvailableRequests(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchAvailableMsg{requests}
	}
}

func (m Model) fetchJobs() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		jobs, err := client.ListMyJobs(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchJobsMsg{jobs}
	}
}

func (m Model) fetchProfessionals() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		professionals, err := client.ListProfessionals(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchProfessionalsMsg{professionals}
	}
}

func (m Model) fetchProfessional(id string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		professional, err := client.GetProfessional(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return fetchProfessionalMsg{professional}
	}
}

func (m Model) fetchCategories() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		categories, err := client.ListCategories(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchCategoriesMsg{categories}
	}
}

func (m Model) fetchQuotes(requestID string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		quotes, err := client.ListQuotesForRequest(ctx, requestID)
		if err != nil {
			return errMsg{err}
		}
		return fetchQuotesMsg{quotes}
	}
}

func (m Model) fetchConversations() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		conversations, err := client.ListConversations(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchConversationsMsg{conversations}
	}
}

func (m Model) fetchMessages(conversationID string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		messages, err := client.ListMessages(ctx, conversationID)
		if err != nil {
			return errMsg{err}
		}
		return fetchMessagesMsg{messages}
	}
}

func (m Model) fetchNotifications() tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		notifications, err := client.ListNotifications(ctx)
		if err != nil {
			return errMsg{err}
		}
		return fetchNotificationsMsg{notifications}
	}
}

// Mutating commands

func (m Model) doLogin(email, password string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		return loginMsg{resp: resp, err: err}
	}
}

func (m Model) doResetPassword(token, password string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.ResetPassword(ctx, token, password); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

func (m Model) createRequest(req *api.CreateServiceRequestRequest) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		request, err := client.CreateRequest(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return requestCreatedMsg{request}
	}
}

func (m Model) cancelRequest(id string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.CancelRequest(ctx, id); err != nil {
			return errMsg{err}
		}
		return requestCancelledMsg{id: id}
	}
}

func (m Model) submitQuote(req *api.CreateQuoteRequest) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		quote, err := client.CreateQuote(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return quoteSubmittedMsg{quote}
	}
}

func (m Model) acceptQuote(id string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.AcceptQuote(ctx, id); err != nil {
			return errMsg{err}
		}
		return quoteAcceptedMsg{quoteID: id}
	}
}

func (m Model) startJob(id string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.StartJob(ctx, id); err != nil {
			return errMsg{err}
		}
		return jobStartedMsg{id: id}
	}
}

func (m Model) completeJob(id, note string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.CompleteJob(ctx, id, note); err != nil {
			return errMsg{err}
		}
		return jobCompletedMsg{id: id}
	}
}

func (m Model) sendMessage(conversationID, content string) tea.Cmd {
	client, timeout := m.client, m.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		message, err := client.SendMessage(ctx, conversationID, content)
		if err != nil {
			return errMsg{err}
		}
		return sentMessageMsg{message}
	}
}
