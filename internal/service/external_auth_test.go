package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestProviderClientExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Session-ID"); got != "sess-abc" {
			t.Errorf("Expected X-Session-ID 'sess-abc', got '%s'", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"judy@example.com","name":"Judy","picture":"https://img.example.com/judy.png","session_token":"provider-token-9"}`))
	}))
	defer server.Close()

	client := NewProviderClient(server.URL, 5*time.Second, zap.NewNop())
	identity, err := client.Exchange(context.Background(), "sess-abc")
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}

	if identity.Email != "judy@example.com" {
		t.Errorf("Expected email 'judy@example.com', got '%s'", identity.Email)
	}
	if identity.SessionToken != "provider-token-9" {
		t.Errorf("Expected session token 'provider-token-9', got '%s'", identity.SessionToken)
	}
}

func TestProviderClientNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewProviderClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.Exchange(context.Background(), "sess-abc")
	if !errors.Is(err, ErrExternalAuthFailure) {
		t.Errorf("Expected ErrExternalAuthFailure, got %v", err)
	}
}

func TestProviderClientMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewProviderClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.Exchange(context.Background(), "sess-abc")
	if !errors.Is(err, ErrExternalAuthFailure) {
		t.Errorf("Expected ErrExternalAuthFailure, got %v", err)
	}
}

func TestProviderClientMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"judy@example.com"}`))
	}))
	defer server.Close()

	client := NewProviderClient(server.URL, 5*time.Second, zap.NewNop())
	_, err := client.Exchange(context.Background(), "sess-abc")
	if !errors.Is(err, ErrExternalAuthFailure) {
		t.Errorf("Expected ErrExternalAuthFailure when session token is missing, got %v", err)
	}
}

func TestProviderClientUnreachable(t *testing.T) {
	client := NewProviderClient("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())
	_, err := client.Exchange(context.Background(), "sess-abc")
	if !errors.Is(err, ErrExternalAuthFailure) {
		t.Errorf("Expected ErrExternalAuthFailure for unreachable provider, got %v", err)
	}
}
