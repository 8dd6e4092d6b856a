package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itsmostafa/constbot/internal/articles"
	"github.com/itsmostafa/constbot/internal/query"
	"github.com/rs/zerolog"
)

func newTestServer() *Server {
	store := articles.NewStore(
		articles.Entry{ID: "21", Text: "Protection of life and personal liberty.\nNo person shall be deprived..."},
	)
	return New(query.NewResolver(store), zerolog.Nop())
}

func postChat(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, ChatResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return rec, resp
}

func TestChat(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResp   string
	}{
		{
			name:       "article found",
			body:       `{"message": "Article 21"}`,
			wantStatus: http.StatusOK,
			wantResp:   "Article 21\n\nProtection of life and personal liberty.\nNo person shall be deprived...",
		},
		{
			name:       "article missing",
			body:       `{"message": "article 400"}`,
			wantStatus: http.StatusOK,
			wantResp:   query.NotFoundMessage,
		},
		{
			name:       "topic question",
			body:       `{"message": "what is democracy"}`,
			wantStatus: http.StatusOK,
			wantResp:   query.NoInformationMessage,
		},
		{
			name:       "empty message",
			body:       `{"message": ""}`,
			wantStatus: http.StatusBadRequest,
			wantResp:   EmptyMessageResponse,
		},
		{
			name:       "whitespace message",
			body:       `{"message": "   "}`,
			wantStatus: http.StatusOK,
			wantResp:   query.NoInformationMessage,
		},
		{
			name:       "absent message",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantResp:   EmptyMessageResponse,
		},
		{
			name:       "malformed json",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
			wantResp:   EmptyMessageResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postChat(t, s, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Response != tt.wantResp {
				t.Errorf("response = %q, want %q", resp.Response, tt.wantResp)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer()

	t.Run("generated", func(t *testing.T) {
		rec, _ := postChat(t, s, `{"message": "21"}`)
		if rec.Header().Get(RequestIDHeader) == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{"message": "21"}`))
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("request id = %q, want %q", got, "abc-123")
		}
	})
}

func TestIndexAndHealth(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/chat") {
		t.Errorf("index: status %d body %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var health struct {
		Status   string `json:"status"`
		Articles int    `json:"articles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("health response is not JSON: %v", err)
	}
	if health.Status != "ok" || health.Articles != 1 {
		t.Errorf("health = %+v", health)
	}
}
