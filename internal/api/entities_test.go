package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLoginStoresToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Email != "ana@example.com" {
			t.Errorf("email = %q", req.Email)
		}
		w.Write([]byte(`{"success":true,"data":{
			"accessToken":"tok-abc",
			"user":{"id":"u1","name":"Ana","email":"ana@example.com","role":"CLIENT"}
		}}`))
	})

	resp, err := c.Login(context.Background(), "ana@example.com", "Senha123")
	if err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken != "tok-abc" {
		t.Errorf("AccessToken = %q", resp.AccessToken)
	}
	if resp.User.Role != "CLIENT" {
		t.Errorf("Role = %q", resp.User.Role)
	}
	if got := c.getToken(); got != "tok-abc" {
		t.Errorf("client token = %q, want tok-abc", got)
	}
}

func TestLoginFailure(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"invalid credentials"}`))
	})

	if _, err := c.Login(context.Background(), "ana@example.com", "wrong"); err == nil {
		t.Fatal("expected error")
	}
	if got := c.getToken(); got != "" {
		t.Errorf("token should stay empty after failed login, got %q", got)
	}
}

func TestListRequestsDecodesWrappedCollection(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service-requests" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"requests":[
			{"id":"r1","title":"Trocar chuveiro","status":"PENDING","budget":"150.00",
			 "quotes":[{"id":"q1","price":"120.50","status":"PENDING"}]},
			{"id":"r2","title":"Pintar sala","status":"COMPLETED"}
		]}}`))
	})

	requests, err := c.ListRequests(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 2 {
		t.Fatalf("len = %d, want 2", len(requests))
	}
	if requests[0].Budget == nil || !requests[0].Budget.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("budget = %v, want 150.00", requests[0].Budget)
	}
	if requests[1].Budget != nil {
		t.Error("absent budget should decode to nil")
	}
	if len(requests[0].Quotes) != 1 || !requests[0].Quotes[0].Price.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("quotes = %+v", requests[0].Quotes)
	}
}

func TestListCategoriesDecodesBareArray(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":"c1","name":"Elétrica"},
			{"id":"c2","name":"Hidráulica"}
		]}`))
	})

	categories, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 || categories[0].Name != "Elétrica" {
		t.Errorf("categories = %+v", categories)
	}
}

func TestListKeyedMissingKey(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"items":[]}}`))
	})

	if _, err := c.ListRequests(context.Background()); err == nil {
		t.Fatal("expected error for missing collection key")
	}
}

func TestMyJobsDecodesAgreedQuoteAndClient(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service-requests/my-jobs" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"requests":[
			{"id":"r1","title":"Instalar tomadas","status":"IN_PROGRESS",
			 "quote":{"id":"q9","price":"300.00","estimatedDuration":"1 dia","status":"ACCEPTED"},
			 "client":{"id":"cl1","user":{"id":"u2","name":"Marcos","avatar":"/m.png"}}}
		]}}`))
	})

	jobs, err := c.ListMyJobs(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	job := jobs[0]
	if job.AgreedQuote == nil || !job.AgreedQuote.Price.Equal(decimal.RequireFromString("300.00")) {
		t.Errorf("agreed quote = %+v", job.AgreedQuote)
	}
	if job.Client == nil || job.Client.User.Name != "Marcos" {
		t.Errorf("client = %+v", job.Client)
	}
}

func TestCompleteJobSendsNote(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service-requests/r1/complete" || r.Method != http.MethodPut {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req CompleteJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Note != "tudo pronto" {
			t.Errorf("note = %q", req.Note)
		}
		w.Write([]byte(`{"success":true}`))
	})

	if err := c.CompleteJob(context.Background(), "r1", "tudo pronto"); err != nil {
		t.Fatal(err)
	}
}

func TestCreateQuoteWireFormat(t *testing.T) {
	var raw []byte
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quotes" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var err error
		if raw, err = io.ReadAll(r.Body); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(`{"success":true,"data":{"id":"q1","price":"150.5","status":"PENDING"}}`))
	})

	req := &CreateQuoteRequest{
		RequestID:  "r1",
		Price:      decimal.RequireFromString("150.5"),
		Message:    "Posso começar na segunda",
		ValidUntil: time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
	}
	if _, err := c.CreateQuote(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if got := string(body["serviceRequestId"]); got != `"r1"` {
		t.Errorf("serviceRequestId = %s, want \"r1\"", got)
	}
	if _, ok := body["requestId"]; ok {
		t.Error("body must not carry a requestId key")
	}
	if got := string(body["price"]); got != "150.5" {
		t.Errorf("price = %s, want the unquoted number 150.5", got)
	}
}

func TestCreateRequestPostsPayload(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service-requests" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req CreateServiceRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Title != "Trocar chuveiro" || req.CategoryID != "c1" || req.State != "SP" {
			t.Errorf("payload = %+v", req)
		}
		w.Write([]byte(`{"success":true,"data":{"id":"r9","title":"Trocar chuveiro","status":"PENDING"}}`))
	})

	created, err := c.CreateRequest(context.Background(), &CreateServiceRequestRequest{
		Title:       "Trocar chuveiro",
		Description: "Chuveiro elétrico queimado",
		CategoryID:  "c1",
		City:        "Campinas",
		State:       "SP",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "r9" {
		t.Errorf("created = %+v", created)
	}
}

func TestCancelRequest(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service-requests/r1/cancel" || r.Method != http.MethodPut {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	})

	if err := c.CancelRequest(context.Background(), "r1"); err != nil {
		t.Fatal(err)
	}
}

func TestAcceptQuote(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quotes/q1/accept" || r.Method != http.MethodPut {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true}`))
	})

	if err := c.AcceptQuote(context.Background(), "q1"); err != nil {
		t.Fatal(err)
	}
}

func TestSendMessageReturnsStoredMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/conversations/cv1/messages" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{
			"id":"m9","senderId":"u1","content":"Olá","read":false
		}}`))
	})

	msg, err := c.SendMessage(context.Background(), "cv1", "Olá")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID != "m9" || msg.Content != "Olá" {
		t.Errorf("message = %+v", msg)
	}
}
