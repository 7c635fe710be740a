package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{"valid", "http://localhost:3001", "http://localhost:3001", false},
		{"trims trailing slashes", "http://localhost:3001///", "http://localhost:3001", false},
		{"empty", "", "", true},
		{"missing scheme", "localhost:3001", "", true},
		{"missing host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.baseURL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && c.BaseURL != tt.want {
				t.Errorf("BaseURL = %q, want %q", c.BaseURL, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	c, err := NewClient("http://localhost:3001")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"leading slash", "/api/categories", "http://localhost:3001/api/categories"},
		{"missing leading slash", "api/categories", "http://localhost:3001/api/categories"},
		{"absolute http passes through", "http://cdn.example.com/a.png", "http://cdn.example.com/a.png"},
		{"absolute https passes through", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	c.SetToken("tok-123")

	if _, err := c.Get("/api/ping"); err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}

	c.ClearToken()
	if _, err := c.Get("/api/ping"); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization after ClearToken = %q, want empty", gotAuth)
	}
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{"error field wins", Response{Error: "boom", Message: "ignored"}, "boom"},
		{"message fallback", Response{Message: "not found"}, "not found"},
		{"neither", Response{}, "unknown error"},
		{"success is empty", Response{Success: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.ErrorString(); got != tt.want {
				t.Errorf("ErrorString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNon2xxResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"request not found"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.Get("/api/service-requests/missing")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "request not found") {
		t.Errorf("error = %v, want status and server message", err)
	}
}

func TestNoContentResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	resp, err := c.Put("/api/quotes/q1/accept", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Error("204 should decode as success")
	}
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.GetWithContext(ctx, "/api/ping"); err == nil {
		t.Error("expected error from cancelled context")
	}
}
