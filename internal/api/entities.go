package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptyResponse is returned when the API returns an empty data field
var ErrEmptyResponse = errors.New("empty response data from API")

// API path constants
const (
	apiErrorFmt           = "API error: %s"
	loginPath             = "/api/auth/login"
	resetPasswordPath     = "/api/auth/reset-password"
	professionalsPath     = "/api/professionals"
	professionalByIDFmt   = "/api/professionals/%s"
	categoriesPath        = "/api/categories"
	requestsPath          = "/api/service-requests"
	requestByIDFmt        = "/api/service-requests/%s"
	availableRequestsPath = "/api/service-requests/available"
	myJobsPath            = "/api/service-requests/my-jobs"
	cancelRequestFmt      = "/api/service-requests/%s/cancel"
	startJobFmt           = "/api/service-requests/%s/start"
	completeJobFmt        = "/api/service-requests/%s/complete"
	quotesPath            = "/api/quotes"
	quotesForRequestFmt   = "/api/quotes/request/%s"
	acceptQuoteFmt        = "/api/quotes/%s/accept"
	conversationsPath     = "/api/conversations"
	messagesFmt           = "/api/conversations/%s/messages"
	notificationsPath     = "/api/notifications"
)

// User represents an account on the platform
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category represents a service category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// PortfolioItem is one entry in a professional's portfolio
type PortfolioItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Review is a client review left on a professional's profile
type Review struct {
	ID         string    `json:"id"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ClientName string    `json:"clientName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Professional represents a service professional's full profile.
// HourlyRate is optional: profiles without a published rate omit it.
type Professional struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Bio         string           `json:"bio,omitempty"`
	Avatar      string           `json:"avatar,omitempty"`
	City        string           `json:"city,omitempty"`
	State       string           `json:"state,omitempty"`
	Rating      float64          `json:"rating"`
	ReviewCount int              `json:"reviewCount"`
	Verified    bool             `json:"verified"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate,omitempty"`
	Categories  []Category       `json:"categories,omitempty"`
	Portfolio   []PortfolioItem  `json:"portfolio,omitempty"`
	Reviews     []Review         `json:"reviews,omitempty"`
}

// ProfessionalSummary is the compact professional shape embedded in quotes
type ProfessionalSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Verified    bool    `json:"verified"`
}

// Quote represents a professional's offer on a service request
type Quote struct {
	ID                string               `json:"id"`
	RequestID         string               `json:"requestId,omitempty"`
	Price             decimal.Decimal      `json:"price"`
	Message           string               `json:"message,omitempty"`
	EstimatedDuration string               `json:"estimatedDuration,omitempty"`
	ValidUntil        time.Time            `json:"validUntil"`
	Status            string               `json:"status"`
	Professional      *ProfessionalSummary `json:"professional,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// ClientSummary is the client shape embedded in professional-facing requests
type ClientSummary struct {
	ID   string `json:"id"`
	User User   `json:"user"`
}

// ServiceRequest represents a client's service request.
// AgreedQuote is only populated on professional job listings, under the
// API's "quote" key. Budget is optional.
type ServiceRequest struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Status        string           `json:"status"`
	Budget        *decimal.Decimal `json:"budget,omitempty"`
	City          string           `json:"city,omitempty"`
	Category      *Category        `json:"category,omitempty"`
	PreferredDate *time.Time       `json:"preferredDate,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	Quotes        []Quote          `json:"quotes,omitempty"`
	Client        *ClientSummary   `json:"client,omitempty"`
	AgreedQuote   *Quote           `json:"quote,omitempty"`
}

// Participant is one side of a conversation
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Message is a single chat message
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId,omitempty"`
	SenderID       string    `json:"senderId"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Conversation is a message thread between a client and a professional
type Conversation struct {
	ID           string        `json:"id"`
	Participants []Participant `json:"participants,omitempty"`
	LastMessage  *Message      `json:"lastMessage,omitempty"`
	UnreadCount  int           `json:"unreadCount"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Notification is a platform notification for the logged-in user
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response from the API
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         User   `json:"user"`
}

// Login authenticates with the API and stores the returned token on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.doRequestWithContext(ctx, "POST", loginPath, req)
	if err != nil {
		return nil, err
	}

	loginResp, err := parseResponseData[LoginResponse](resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(loginResp.AccessToken)
	return loginResp, nil
}

// ResetPasswordRequest is the payload for completing a password reset
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword completes a password reset with a token issued out of band
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	req := ResetPasswordRequest{Token: token, Password: password}
	resp, err := c.doRequestWithContext(ctx, "POST", resetPasswordPath, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf(apiErrorFmt, resp.ErrorString())
	}
	return nil
}

// CreateQuoteRequest is the request payload for submitting a quote.
// The backend keys the target request under serviceRequestId.
type CreateQuoteRequest struct {
	RequestID         string          `json:"serviceRequestId"`
	Price             decimal.Decimal `json:"price"`
	Message           string          `json:"message,omitempty"`
	EstimatedDuration string          `json:"estimatedDuration,omitempty"`
	ValidUntil        time.Time       `json:"validUntil"`
}

// MarshalJSON emits the price as a JSON number. The backend parses the
// outgoing price as a numeric field, not a string.
func (r CreateQuoteRequest) MarshalJSON() ([]byte, error) {
	type plain CreateQuoteRequest
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain(r), json.Number(r.Price.String())})
}

// CreateServiceRequestRequest is the request payload for opening a service request
type CreateServiceRequestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
	City        string `json:"city"`
	State       string `json:"state"`
	Address     string `json:"address,omitempty"`
}

// CompleteJobRequest is the request payload for marking a job complete
type CompleteJobRequest struct {
	Note string `json:"note,omitempty"`
}

// SendMessageRequest is the request payload for posting a chat message
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ListProfessionals fetches the professional directory
func (c *Client) ListProfessionals(ctx context.Context) ([]Professional, error) {
	return listKeyed[Professional](ctx, c, professionalsPath, "professionals")
}

// GetProfessional fetches a professional's full profile by ID
func (c *Client) GetProfessional(ctx context.Context, id string) (*Professional, error) {
	resp, err := c.GetWithContext(ctx, fmt.Sprintf(professionalByIDFmt, id))
	if err != nil {
		return nil, err
	}
	return parseResponseData[Professional](resp)
}

// ListCategories fetches all service categories.
// Unlike the other collections, categories arrive as a bare array in data.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	resp, err := c.GetWithContext(ctx, categoriesPath)
	if err != nil {
		return nil, err
	}
	return parseResponseList[Category](resp)
}

// ListRequests fetches the logged-in client's service requests
func (c *Client) ListRequests(ctx context.Context) ([]ServiceRequest, error) {
	return listKeyed[ServiceRequest](ctx, c, requestsPath, "requests")
}

// CreateRequest opens a new service request for the logged-in client
func (c *Client) CreateRequest(ctx context.Context, req *CreateServiceRequestRequest) (*ServiceRequest, error) {
	resp, err := c.doRequestWithContext(ctx, "POST", requestsPath, req)
	if err != nil {
		return nil, err
	}
	return parseResponseData[ServiceRequest](resp)
}

// CancelRequest cancels a pending service request
func (c *Client) CancelRequest(ctx context.Context, id string) error {
	return c.putAction(ctx, fmt.Sprintf(cancelRequestFmt, id), nil)
}

// GetRequest fetches a single service request with its quotes
func (c *Client) GetRequest(ctx context.Context, id string) (*ServiceRequest, error) {
	resp, err := c.GetWithContext(ctx, fmt.Sprintf(requestByIDFmt, id))
	if err != nil {
		return nil, err
	}
	return parseResponseData[ServiceRequest](resp)
}

// ListAvailableRequests fetches open requests a professional can quote on
func (c *Client) ListAvailableRequests(ctx context.Context) ([]ServiceRequest, error) {
	return listKeyed[ServiceRequest](ctx, c, availableRequestsPath, "requests")
}

// ListMyJobs fetches the professional's accepted jobs
func (c *Client) ListMyJobs(ctx context.Context) ([]ServiceRequest, error) {
	return listKeyed[ServiceRequest](ctx, c, myJobsPath, "requests")
}

// StartJob transitions an accepted job to in progress
func (c *Client) StartJob(ctx context.Context, id string) error {
	return c.putAction(ctx, fmt.Sprintf(startJobFmt, id), nil)
}

// CompleteJob marks an in-progress job complete, with an optional note
func (c *Client) CompleteJob(ctx context.Context, id, note string) error {
	return c.putAction(ctx, fmt.Sprintf(completeJobFmt, id), &CompleteJobRequest{Note: note})
}

// CreateQuote submits a quote on an open service request
func (c *Client) CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*Quote, error) {
	resp, err := c.doRequestWithContext(ctx, "POST", quotesPath, req)
	if err != nil {
		return nil, err
	}
	return parseResponseData[Quote](resp)
}

// ListQuotesForRequest fetches all quotes submitted on a request
func (c *Client) ListQuotesForRequest(ctx context.Context, requestID string) ([]Quote, error) {
	return listKeyed[Quote](ctx, c, fmt.Sprintf(quotesForRequestFmt, requestID), "quotes")
}

// AcceptQuote accepts a quote on behalf of the client.
// The backend rejects the request's other quotes as a side effect.
func (c *Client) AcceptQuote(ctx context.Context, id string) error {
	return c.putAction(ctx, fmt.Sprintf(acceptQuoteFmt, id), nil)
}

// ListConversations fetches the logged-in user's conversations
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	return listKeyed[Conversation](ctx, c, conversationsPath, "conversations")
}

// ListMessages fetches the messages of one conversation
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	return listKeyed[Message](ctx, c, fmt.Sprintf(messagesFmt, conversationID), "messages")
}

// SendMessage posts a message to a conversation and returns the stored message
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*Message, error) {
	resp, err := c.doRequestWithContext(ctx, "POST", fmt.Sprintf(messagesFmt, conversationID), &SendMessageRequest{Content: content})
	if err != nil {
		return nil, err
	}
	return parseResponseData[Message](resp)
}

// ListNotifications fetches the logged-in user's notifications
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return listKeyed[Notification](ctx, c, notificationsPath, "notifications")
}

// listKeyed fetches a collection wrapped under a named key inside data,
// e.g. {"success":true,"data":{"requests":[...]}}.
func listKeyed[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	resp, err := c.GetWithContext(ctx, path)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf(apiErrorFmt, resp.ErrorString())
	}
	if len(resp.Data) == 0 {
		return nil, ErrEmptyResponse
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(resp.Data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse response data: %w", err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("response data missing %q", key)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return items, nil
}
