package ui

import "github.com/repfy/repfy-tui/internal/session"

// ViewState represents the current view
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewResetPassword
	ViewDashboard
	ViewRequests
	ViewRequestForm
	ViewRequestDetail
	ViewQuotes
	ViewOpportunities
	ViewOpportunityDetail
	ViewQuoteForm
	ViewJobs
	ViewJobDetail
	ViewCompleteForm
	ViewSearch
	ViewProfessionalDetail
	ViewConversations
	ViewChat
	ViewNotifications
	ViewSettings
)

// MenuItem represents a sidebar menu item
type MenuItem struct {
	Icon  string
	Title string
	View  ViewState
}

var clientMenuItems = []MenuItem{
	{Icon: "⌂", Title: "Painel", View: ViewDashboard},
	{Icon: "◆", Title: "Meus Pedidos", View: ViewRequests},
	{Icon: "⌕", Title: "Buscar Profissionais", View: ViewSearch},
	{Icon: "✉", Title: "Mensagens", View: ViewConversations},
	{Icon: "◉", Title: "Notificações", View: ViewNotifications},
	{Icon: "⚙", Title: "Configurações", View: ViewSettings},
}

var professionalMenuItems = []MenuItem{
	{Icon: "⌂", Title: "Painel", View: ViewDashboard},
	{Icon: "◇", Title: "Oportunidades", View: ViewOpportunities},
	{Icon: "◆", Title: "Meus Trabalhos", View: ViewJobs},
	{Icon: "✉", Title: "Mensagens", View: ViewConversations},
	{Icon: "◉", Title: "Notificações", View: ViewNotifications},
	{Icon: "⚙", Title: "Configurações", View: ViewSettings},
}

// MenuForRole returns a copy of the sidebar menu for the given role.
// Professionals see opportunities and jobs; everyone else gets the
// client menu.
func MenuForRole(role session.Role) []MenuItem {
	src := clientMenuItems
	if role == session.RoleProfessional {
		src = professionalMenuItems
	}
	items := make([]MenuItem, len(src))
	copy(items, src)
	return items
}
