package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/repfy/repfy-tui/cmd/repfy/ui"
	"github.com/repfy/repfy-tui/internal/api"
	"github.com/repfy/repfy-tui/internal/config"
	"github.com/repfy/repfy-tui/internal/domain"
	"github.com/repfy/repfy-tui/internal/session"
)

// UI string constants to avoid duplication
const (
	dateTimeFormat = "02/01/2006 15:04"
	dateFormat     = "02/01/2006"
	formSaveCancel = "Enter envia, Esc cancela"
)

// Model is the main application model
type Model struct {
	client *api.Client
	cfg    *config.Config
	store  *session.Store
	sess   *session.Session

	view        ui.ViewState
	cursor      int
	message     string
	messageType string // "error", "success", "info"

	// Data
	requests      []api.ServiceRequest
	available     []api.ServiceRequest
	jobs          []api.ServiceRequest
	professionals []api.Professional
	categories    []api.Category
	quotes        []api.Quote
	conversations []api.Conversation
	chatMessages  []api.Message
	notifications []api.Notification

	// Selected items
	selectedRequest      *api.ServiceRequest
	selectedProfessional *api.Professional
	selectedConversation *api.Conversation

	// Directory filter/sort state
	searchFilter  domain.ProfessionalFilter
	searchSort    domain.ProfessionalSort
	requestFilter domain.RequestFilter
	searchInput   textinput.Model
	searching     bool

	// Chat composer
	chatInput textinput.Model

	// Form inputs
	inputs     []textinput.Model
	focusIndex int
	formEntity string
	submitting bool

	// UI state
	sidebarOpen    bool
	sidebarCursor  int
	focusOnSidebar bool

	// Window size
	width  int
	height int
}

// role returns the logged-in role, defaulting to client before login.
func (m Model) role() session.Role {
	if m.sess == nil {
		return session.RoleClient
	}
	return m.sess.Role
}

func (m Model) isProfessional() bool {
	return m.role() == session.RoleProfessional
}

func initialModel(cfg *config.Config, store *session.Store) Model {
	m, err := newModel(cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m
}

func newModel(cfg *config.Config, store *session.Store) (Model, error) {
	client, err := api.NewClient(cfg.API.BaseURL)
	if err != nil {
		return Model{}, fmt.Errorf("invalid API URL %q: %w", cfg.API.BaseURL, err)
	}

	m := Model{
		client:        client,
		cfg:           cfg,
		store:         store,
		view:          ui.ViewLogin,
		requestFilter: domain.RequestFilter{Status: domain.StatusAll},
		sidebarOpen:   true,
		width:         80,
		height:        24,
	}

	sess, err := store.Load()
	switch {
	case err == nil:
		client.SetToken(sess.Token)
		m.sess = sess
		m.view = ui.ViewDashboard
	case err == session.ErrSessionExpired:
		m.message = "Sessão expirada, entre novamente"
		m.messageType = ui.MessageTypeInfo
		m = m.initLoginForm()
	case err == session.ErrNoSession:
		if sess := sessionFromEnvToken(cfg.API.Token); sess != nil {
			client.SetToken(sess.Token)
			m.sess = sess
			m.view = ui.ViewDashboard
			break
		}
		m = m.initLoginForm()
	default:
		log.Warn("failed to load stored session", "error", err)
		m = m.initLoginForm()
	}

	m.chatInput = newChatInput()
	m.searchInput = newSearchInput()
	return m, nil
}

// sessionFromEnvToken builds a session from a token supplied through the
// environment, skipping the login flow. Unusable tokens fall back to login.
func sessionFromEnvToken(token string) *session.Session {
	if token == "" {
		return nil
	}
	sess, err := session.FromToken(token)
	if err != nil {
		log.Warn("ignoring unparseable token from environment", "error", err)
		return nil
	}
	if sess.Expired() {
		log.Warn("ignoring expired token from environment")
		return nil
	}
	return sess
}

func (m Model) Init() tea.Cmd {
	// A restored session skips login and loads data right away
	if m.sess != nil {
		return tea.Batch(textinput.Blink, m.fetchAllData())
	}
	return textinput.Blink
}

// Messages for async operations
type loginMsg struct {
	resp *api.LoginResponse
	err  error
}
type resetDoneMsg struct{}
type fetchRequestsMsg struct{ requests []api.ServiceRequest }
type fetchRequestMsg struct{ request *api.ServiceRequest }
type fetchAvailableMsg struct{ requests []api.ServiceRequest }
type fetchJobsMsg struct{ jobs []api.ServiceRequest }
type fetchProfessionalsMsg struct{ professionals []api.Professional }
type fetchProfessionalMsg struct{ professional *api.Professional }
type fetchCategoriesMsg struct{ categories []api.Category }
type fetchQuotesMsg struct{ quotes []api.Quote }
type fetchConversationsMsg struct{ conversations []api.Conversation }
type fetchMessagesMsg struct{ messages []api.Message }
type fetchNotificationsMsg struct{ notifications []api.Notification }
type requestCreatedMsg struct{ request *api.ServiceRequest }
type requestCancelledMsg struct{ id string }
type quoteSubmittedMsg struct{ quote *api.Quote }
type quoteAcceptedMsg struct{ quoteID string }
type jobStartedMsg struct{ id string }
type jobCompletedMsg struct{ id string }
type sentMessageMsg struct{ message *api.Message }
type errMsg struct{ err error }
type successMsg struct{ message string }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case loginMsg:
		return m.handleLoginMsg(msg)
	case resetDoneMsg:
		return m.handleResetDone(), nil
	case fetchRequestsMsg:
		m.requests = msg.requests
		return m, nil
	case fetchRequestMsg:
		m.selectedRequest = msg.request
		return m, nil
	case fetchAvailableMsg:
		m.available = msg.requests
		return m, nil
	case fetchJobsMsg:
		m.jobs = msg.jobs
		return m, nil
	case fetchProfessionalsMsg:
		m.professionals = msg.professionals
		return m, nil
	case fetchProfessionalMsg:
		m.selectedProfessional = msg.professional
		return m, nil
	case fetchCategoriesMsg:
		m.categories = msg.categories
		return m, nil
	case fetchQuotesMsg:
		m.quotes = msg.quotes
		return m, nil
	case fetchConversationsMsg:
		m.conversations = msg.conversations
		return m, nil
	case fetchMessagesMsg:
		m.chatMessages = msg.messages
		return m, nil
	case fetchNotificationsMsg:
		m.notifications = msg.notifications
		return m, nil
	case requestCreatedMsg:
		return m.handleRequestCreated(msg), nil
	case requestCancelledMsg:
		return m.handleRequestCancelled(msg), nil
	case quoteSubmittedMsg:
		return m.handleQuoteSubmitted(msg), nil
	case quoteAcceptedMsg:
		return m.handleQuoteAccepted(msg), nil
	case jobStartedMsg:
		return m.handleJobStarted(msg), nil
	case jobCompletedMsg:
		return m.handleJobCompleted(msg), nil
	case sentMessageMsg:
		return m.handleSentMessage(msg), nil
	case errMsg:
		return m.handleError(msg), nil
	case successMsg:
		return m.handleSuccess(msg), nil
	}

	// Update text inputs if in form mode
	if len(m.inputs) > 0 {
		return m.updateInputs(msg)
	}

	return m, nil
}

// handleError processes error messages
func (m Model) handleError(msg errMsg) Model {
	m.submitting = false
	m.message = msg.err.Error()
	m.messageType = ui.MessageTypeError
	return m
}

// handleSuccess processes success messages
func (m Model) handleSuccess(msg successMsg) Model {
	m.submitting = false
	m.message = msg.message
	m.messageType = ui.MessageTypeSuccess
	return m
}

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear message on any key except enter
	if m.message != "" && msg.String() != "enter" {
		m.message = ""
	}

	// The chat composer and the directory search box swallow most keys
	if m.view == ui.ViewChat {
		return m.handleChatKey(msg)
	}
	if m.searching {
		return m.handleSearchInputKey(msg)
	}

	inFormMode := len(m.inputs) > 0

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		return m.handleQuitKey(msg, inFormMode)
	case "esc":
		return m.handleEscKey()
	case "up", "k":
		return m.handleUpKey(msg.String(), inFormMode)
	case "down", "j":
		return m.handleDownKey(msg.String(), inFormMode)
	case "enter":
		return m.handleEnterKey()
	case "tab":
		return m.handleTabKey(inFormMode, 1)
	case "shift+tab":
		return m.handleTabKey(inFormMode, -1)
	case "n", "r", "s", "v", "f", "/":
		// Only handle shortcuts when NOT in form mode - let form inputs receive these keys
		if !inFormMode {
			return m.handleShortcutKey(msg.String())
		}
	case "ctrl+r":
		if m.view == ui.ViewLogin {
			return m.initResetPasswordForm()
		}
	case "ctrl+b":
		m.sidebarOpen = !m.sidebarOpen
		return m, nil
	case "left", "h":
		return m.handleLeftKey(inFormMode)
	case "right", "l":
		return m.handleRightKey(inFormMode)
	}

	// Pass through to text input handling
	if inFormMode {
		return m.updateInputs(msg)
	}
	return m, nil
}

// handleQuitKey handles the 'q' key
func (m Model) handleQuitKey(msg tea.KeyMsg, inFormMode bool) (tea.Model, tea.Cmd) {
	if inFormMode {
		return m.updateInputs(msg)
	}
	if m.view == ui.ViewDashboard || m.view == ui.ViewLogin {
		return m, tea.Quit
	}
	m.view = ui.ViewDashboard
	m.cursor = 0
	return m, nil
}

// handleEscKey handles the escape key
func (m Model) handleEscKey() (tea.Model, tea.Cmd) {
	if m.view == ui.ViewLogin {
		return m, nil
	}
	return m.handleEscape()
}

// handleUpKey handles up/k keys
func (m Model) handleUpKey(key string, inFormMode bool) (tea.Model, tea.Cmd) {
	if inFormMode {
		if key == "up" {
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs) - 1
			}
			return m.updateInputFocus(), nil
		}
		return m, nil // Let 'k' through for typing
	}
	if m.focusOnSidebar {
		m.sidebarCursor = m.handleUp()
	} else {
		m.cursor = m.handleUp()
	}
	return m, nil
}

// handleDownKey handles down/j keys
func (m Model) handleDownKey(key string, inFormMode bool) (tea.Model, tea.Cmd) {
	if inFormMode {
		if key == "down" {
			m.focusIndex++
			if m.focusIndex >= len(m.inputs) {
				m.focusIndex = 0
			}
			return m.updateInputFocus(), nil
		}
		return m, nil // Let 'j' through for typing
	}
	if m.focusOnSidebar {
		m.sidebarCursor = m.handleDown()
	} else {
		m.cursor = m.handleDown()
	}
	return m, nil
}

// handleEnterKey handles the enter key
func (m Model) handleEnterKey() (tea.Model, tea.Cmd) {
	if m.focusOnSidebar {
		return m.handleSidebarSelect()
	}
	return m.handleEnter()
}

// handleTabKey handles tab/shift+tab navigation
func (m Model) handleTabKey(inFormMode bool, direction int) (tea.Model, tea.Cmd) {
	if !inFormMode {
		return m, nil
	}
	m.focusIndex += direction
	if m.focusIndex >= len(m.inputs) {
		m.focusIndex = 0
	} else if m.focusIndex < 0 {
		m.focusIndex = len(m.inputs) - 1
	}
	return m.updateInputFocus(), nil
}

// handleShortcutKey handles single-letter shortcuts (only called when not in form mode)
func (m Model) handleShortcutKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n":
		if m.view == ui.ViewOpportunityDetail && m.selectedRequest != nil {
			return m.initQuoteForm()
		}
		if m.view == ui.ViewRequests && !m.isProfessional() {
			return m.initRequestForm()
		}
	case "r":
		return m.handleRefresh()
	case "s":
		if m.view == ui.ViewSearch {
			m.searchSort = (m.searchSort + 1) % 3
			m.cursor = 0
		}
	case "v":
		if m.view == ui.ViewSearch {
			m.searchFilter.VerifiedOnly = !m.searchFilter.VerifiedOnly
			m.cursor = 0
		}
	case "f":
		if m.view == ui.ViewRequests {
			m.requestFilter.Status = nextStatusFilter(m.requestFilter.Status)
			m.cursor = 0
		}
	case "/":
		if m.view == ui.ViewSearch {
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// nextStatusFilter cycles the request status filter through every state.
func nextStatusFilter(current string) string {
	cycle := []string{
		domain.StatusAll,
		string(domain.StatusPending),
		string(domain.StatusAccepted),
		string(domain.StatusInProgress),
		string(domain.StatusCompleted),
		string(domain.StatusCancelled),
	}
	for i, s := range cycle {
		if s == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return domain.StatusAll
}

// handleLeftKey handles left/h keys for sidebar focus
func (m Model) handleLeftKey(inFormMode bool) (tea.Model, tea.Cmd) {
	if inFormMode {
		return m, nil
	}
	if m.sidebarOpen && !m.focusOnSidebar {
		m.focusOnSidebar = true
		m.sidebarCursor = m.getSidebarIndexForView()
	}
	return m, nil
}

// handleRightKey handles right/l keys for content focus
func (m Model) handleRightKey(inFormMode bool) (tea.Model, tea.Cmd) {
	if inFormMode {
		return m, nil
	}
	if m.focusOnSidebar {
		m.focusOnSidebar = false
	}
	return m, nil
}

func main() {
	cfg := config.Load()

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if len(os.Args) > 1 && os.Args[1] == "ssh" {
		sshMain(cfg)
		return
	}

	store, err := session.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
