package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Тест: токен уходит в Authorization, тело сериализуется в JSON
func TestDo_SendsBearerAndJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("unexpected Authorization: %q", got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected Content-Type: %q", ct)
		}
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil || m["name"] != "Milk" {
			t.Fatalf("unexpected body: %v %v", m, err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer ts.Close()

	resp, body, err := Do(context.Background(), http.MethodPost, ts.URL, map[string]any{"name": "Milk"}, "tok-1")
	if err != nil {
		t.Fatalf("Do err: %v", err)
	}
	if resp.StatusCode != http.StatusCreated || string(body) != `{"id":"1"}` {
		t.Fatalf("unexpected response: %d %s", resp.StatusCode, body)
	}
}

// Тест: без токена и тела заголовки не ставятся
func TestDo_NoTokenNoBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("Authorization must be empty")
		}
		if r.Header.Get("Content-Type") != "" {
			t.Fatalf("Content-Type must be empty for a bodiless request")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	if _, _, err := Do(context.Background(), http.MethodGet, ts.URL, nil, ""); err != nil {
		t.Fatalf("Do err: %v", err)
	}
}

// Тест: сетевые ошибки и невалидный URL
func TestDo_Errors(t *testing.T) {
	if _, _, err := Do(context.Background(), http.MethodGet, "http://127.0.0.1:1", nil, ""); err == nil {
		t.Fatalf("expected network error for unreachable URL")
	}
	if _, _, err := Do(context.Background(), http.MethodGet, "http://[::1", nil, ""); err == nil {
		t.Fatalf("expected new request error for invalid URL")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage([]byte(`{"error":"User already exists"}`)); got != "User already exists" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := ErrorMessage([]byte("plain text\n")); got != "plain text" {
		t.Fatalf("unexpected message %q", got)
	}
}
