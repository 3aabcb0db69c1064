package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/auth"
)

func authTestRouter(t *testing.T) chi.Router {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(auth.TokenIssuerDeps{
		SigningSecret: "test-secret",
		SessionTTL:    time.Hour,
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	r := chi.NewRouter()
	NewAuthHandlers(issuer).Routes(r)
	return r
}

func TestLoginIssuesToken(t *testing.T) {
	r := authTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"demo@example.com","password":"anything"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Token     string `json:"token"`
		TokenType string `json:"tokenType"`
		Simulated bool   `json:"simulated"`
		User      struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Token == "" || body.TokenType != "Bearer" {
		t.Fatalf("unexpected token payload: %+v", body)
	}
	if !body.Simulated || body.User.ID != "demo-user" {
		t.Fatalf("unexpected session: %+v", body)
	}
}

func TestLoginValidation(t *testing.T) {
	cases := []string{
		`{"password":"x"}`,
		`{"email":"not-an-email","password":"x"}`,
		`{"email":"a@b.com"}`,
	}
	for _, payload := range cases {
		r := authTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", payload, rr.Code)
		}
	}
}
