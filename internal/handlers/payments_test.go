package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/payments"
)

type stubPaymentProvider struct {
	intent  payments.Intent
	err     error
	lastReq payments.IntentRequest
}

func (s *stubPaymentProvider) CreateIntent(_ context.Context, req payments.IntentRequest) (payments.Intent, error) {
	s.lastReq = req
	if s.err != nil {
		return payments.Intent{}, s.err
	}
	if err := func() error {
		if req.Amount <= 0 {
			return payments.ErrInvalidAmount
		}
		return nil
	}(); err != nil {
		return payments.Intent{}, err
	}
	return s.intent, nil
}

func (s *stubPaymentProvider) LookupIntent(context.Context, string) (payments.Intent, error) {
	return s.intent, s.err
}

func paymentTestRouter(provider payments.Provider) chi.Router {
	r := chi.NewRouter()
	NewPaymentHandlers(PaymentHandlersDeps{
		Provider: provider,
		Currency: "usd",
		Clock:    func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) },
		Seed:     3,
	}).Routes(r)
	return r
}

func TestCreatePaymentIntent(t *testing.T) {
	provider := &stubPaymentProvider{intent: payments.Intent{
		ID:           "pi_sim_X",
		Provider:     "simulated",
		ClientSecret: "pi_sim_X_secret_1",
		Status:       payments.StatusPending,
		Amount:       12500,
		Currency:     "USD",
	}}
	r := paymentTestRouter(provider)

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amount":12500}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if provider.lastReq.Currency != "USD" {
		t.Fatalf("default currency not applied: %q", provider.lastReq.Currency)
	}
	var body struct {
		PaymentIntent struct {
			ID           string `json:"id"`
			ClientSecret string `json:"clientSecret"`
			Status       string `json:"status"`
		} `json:"paymentIntent"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if body.PaymentIntent.ID != "pi_sim_X" || body.PaymentIntent.Status != "pending" {
		t.Fatalf("unexpected intent: %+v", body.PaymentIntent)
	}
}

func TestCreatePaymentIntentRejectsZeroAmount(t *testing.T) {
	r := paymentTestRouter(&stubPaymentProvider{})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amount":0}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreatePaymentIntentUpstreamFailure(t *testing.T) {
	r := paymentTestRouter(&stubPaymentProvider{err: errors.New("stripe down")})

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"amount":100}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestCreateOrderWithPayment(t *testing.T) {
	provider := &stubPaymentProvider{intent: payments.Intent{
		ID:       "pi_sim_Y",
		Status:   payments.StatusPending,
		Amount:   37800,
		Currency: "USD",
	}}
	r := paymentTestRouter(provider)

	payload := `{"email":"buyer@example.com","items":[{"productId":"sb-1","quantity":2,"price":18900}]}`
	req := httptest.NewRequest(http.MethodPost, "/create-order", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if provider.lastReq.Amount != 37800 {
		t.Fatalf("computed amount = %d", provider.lastReq.Amount)
	}
	var body struct {
		Order struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		} `json:"order"`
		PaymentIntent struct {
			ID string `json:"id"`
		} `json:"paymentIntent"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse body: %v", err)
	}
	if !strings.HasPrefix(body.Order.OrderID, "ord_") || body.Order.Status != "pending" {
		t.Fatalf("unexpected order: %+v", body.Order)
	}
	if provider.lastReq.Metadata["orderId"] != body.Order.OrderID {
		t.Fatalf("intent metadata orderId = %q, order = %q", provider.lastReq.Metadata["orderId"], body.Order.OrderID)
	}
	if body.PaymentIntent.ID != "pi_sim_Y" {
		t.Fatalf("unexpected intent: %+v", body.PaymentIntent)
	}
}

func TestCreateOrderWithPaymentRequiresEmail(t *testing.T) {
	r := paymentTestRouter(&stubPaymentProvider{})

	req := httptest.NewRequest(http.MethodPost, "/create-order", strings.NewReader(`{"amount":100}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
