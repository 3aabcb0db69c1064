package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func leadTestRouter() chi.Router {
	r := chi.NewRouter()
	NewLeadHandlers(nil).Routes(r)
	return r
}

func TestContactSuccess(t *testing.T) {
	r := leadTestRouter()

	payload := `{"name":"Olena","email":"olena@example.com","message":"Do you ship to Kyiv?"}`
	req := httptest.NewRequest(http.MethodPost, "/contact?locale=uk", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Status != "received" {
		t.Fatalf("status = %q", body.Status)
	}
	if !strings.Contains(body.Message, "Дякуємо") {
		t.Fatalf("expected Ukrainian acknowledgement, got %q", body.Message)
	}
}

func TestContactValidation(t *testing.T) {
	cases := []string{
		`{"email":"a@b.com","message":"hi"}`,
		`{"name":"A","message":"hi"}`,
		`{"name":"A","email":"nope","message":"hi"}`,
		`{"name":"A","email":"a@b.com"}`,
	}
	for _, payload := range cases {
		r := leadTestRouter()
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(payload))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", payload, rr.Code)
		}
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	r := leadTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(`{"email":"a@b.com"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.Status != "subscribed" {
		t.Fatalf("status = %q", body.Status)
	}
}

func TestNewsletterRejectsMissingEmail(t *testing.T) {
	r := leadTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(`{"email":" "}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
