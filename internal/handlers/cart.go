package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// CartHandlers simulates a session cart backend. The handlers are stateless:
// each request is validated and echoed back transformed, with no carry-over
// between calls. The durable client-side cart lives in the cart package.
type CartHandlers struct {
	clock func() time.Time
}

const maxCartBodySize = 16 * 1024

func NewCartHandlers(clock func() time.Time) *CartHandlers {
	if clock == nil {
		clock = time.Now
	}
	return &CartHandlers{clock: func() time.Time { return clock().UTC() }}
}

// Routes wires the /cart endpoints onto the provided router.
func (h *CartHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.getCart)
	r.Post("/", h.addItem)
	r.Put("/", h.updateItem)
	r.Delete("/", h.clearCart)
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandlers) getCart(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"items":     []any{},
		"itemCount": 0,
		"subtotal":  0,
	})
}

func (h *CartHandlers) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req cartItemRequest
	if err := decodeJSONBody(r, maxCartBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "productId is required", http.StatusBadRequest))
		return
	}
	if req.Quantity <= 0 {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "quantity must be positive", http.StatusBadRequest))
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"item": map[string]any{
			"productId": strings.TrimSpace(req.ProductID),
			"quantity":  req.Quantity,
			"addedAt":   h.clock().Format(time.RFC3339),
		},
	})
}

func (h *CartHandlers) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req cartItemRequest
	if err := decodeJSONBody(r, maxCartBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "productId is required", http.StatusBadRequest))
		return
	}

	// Quantity at or below zero removes the line, mirroring the cart store.
	if req.Quantity <= 0 {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"productId": strings.TrimSpace(req.ProductID),
			"removed":   true,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"item": map[string]any{
			"productId": strings.TrimSpace(req.ProductID),
			"quantity":  req.Quantity,
			"updatedAt": h.clock().Format(time.RFC3339),
		},
	})
}

func (h *CartHandlers) clearCart(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, errBodyTooLarge):
		httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
	case errors.Is(err, errEmptyBody):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body is required", http.StatusBadRequest))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	}
}
