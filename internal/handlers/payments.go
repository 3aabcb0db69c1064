package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/payments"
	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// PaymentHandlers exposes the checkout payment stubs backed by a payments
// provider, Stripe or simulated.
type PaymentHandlers struct {
	provider payments.Provider
	currency string
	clock    func() time.Time

	mu      sync.Mutex
	entropy *rand.Rand
}

const maxPaymentBodySize = 32 * 1024

// PaymentHandlersDeps groups constructor parameters for PaymentHandlers.
type PaymentHandlersDeps struct {
	Provider payments.Provider
	// Currency is the default when a request omits one.
	Currency string
	Clock    func() time.Time
	Seed     int64
}

func NewPaymentHandlers(deps PaymentHandlersDeps) *PaymentHandlers {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	currency := strings.ToUpper(strings.TrimSpace(deps.Currency))
	if currency == "" {
		currency = "USD"
	}
	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PaymentHandlers{
		provider: deps.Provider,
		currency: currency,
		clock:    func() time.Time { return clock().UTC() },
		entropy:  rand.New(rand.NewSource(seed)),
	}
}

// Routes registers the payment endpoints directly under the api prefix.
func (h *PaymentHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/create-payment-intent", h.createPaymentIntent)
	r.Post("/create-order", h.createOrderWithPayment)
}

type createIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Email    string `json:"email"`
}

type createOrderWithPaymentRequest struct {
	Amount   int64              `json:"amount"`
	Currency string             `json:"currency"`
	Email    string             `json:"email"`
	Items    []orderItemRequest `json:"items"`
}

func (h *PaymentHandlers) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.provider == nil {
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment provider is unavailable", http.StatusServiceUnavailable))
		return
	}

	var req createIntentRequest
	if err := decodeJSONBody(r, maxPaymentBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}

	intent, err := h.provider.CreateIntent(ctx, payments.IntentRequest{
		Amount:       req.Amount,
		Currency:     defaultCurrency(req.Currency, h.currency),
		ReceiptEmail: strings.TrimSpace(req.Email),
	})
	if err != nil {
		h.writePaymentError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"paymentIntent": paymentIntentPayload(intent),
	})
}

func (h *PaymentHandlers) createOrderWithPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.provider == nil {
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment provider is unavailable", http.StatusServiceUnavailable))
		return
	}

	var req createOrderWithPaymentRequest
	if err := decodeJSONBody(r, maxPaymentBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "a valid email is required", http.StatusBadRequest))
		return
	}

	amount := req.Amount
	if amount == 0 {
		for _, item := range req.Items {
			amount += item.Price * int64(item.Quantity)
		}
	}

	now := h.clock()
	h.mu.Lock()
	orderID := "ord_" + ulid.MustNew(ulid.Timestamp(now), h.entropy).String()
	h.mu.Unlock()

	intent, err := h.provider.CreateIntent(ctx, payments.IntentRequest{
		Amount:       amount,
		Currency:     defaultCurrency(req.Currency, h.currency),
		ReceiptEmail: strings.TrimSpace(req.Email),
		Metadata:     map[string]string{"orderId": orderID},
	})
	if err != nil {
		h.writePaymentError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"order": map[string]any{
			"orderId":   orderID,
			"status":    string(domain.OrderStatusPending),
			"createdAt": now.Format(time.RFC3339),
		},
		"paymentIntent": paymentIntentPayload(intent),
	})
}

func (h *PaymentHandlers) writePaymentError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, payments.ErrInvalidAmount), errors.Is(err, payments.ErrInvalidCurrency):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("payments_unavailable", "payment provider request failed", http.StatusBadGateway))
	}
}

func paymentIntentPayload(intent payments.Intent) map[string]any {
	return map[string]any{
		"id":           intent.ID,
		"provider":     intent.Provider,
		"clientSecret": intent.ClientSecret,
		"status":       string(intent.Status),
		"amount":       intent.Amount,
		"currency":     intent.Currency,
		"createdAt":    intent.CreatedAt.Format(time.RFC3339),
	}
}

func defaultCurrency(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return strings.ToUpper(value)
}
