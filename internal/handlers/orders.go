package handlers

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// OrderHandlers simulates the order lifecycle with synthetic identifiers.
// Nothing is persisted: creation fabricates an order, lookups fabricate a
// plausible confirmed order for whatever id is asked about.
type OrderHandlers struct {
	clock func() time.Time

	mu      sync.Mutex
	entropy *rand.Rand
}

const maxOrderBodySize = 32 * 1024

func NewOrderHandlers(clock func() time.Time, seed int64) *OrderHandlers {
	if clock == nil {
		clock = time.Now
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &OrderHandlers{
		clock:   func() time.Time { return clock().UTC() },
		entropy: rand.New(rand.NewSource(seed)),
	}
}

// Routes registers the order endpoints directly under the api prefix.
func (h *OrderHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{orderId}", h.getOrder)
}

// UserRoutes registers the authenticated-user order listing. It is meant to
// be composed into the /user group.
func (h *OrderHandlers) UserRoutes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/orders", h.listUserOrders)
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

type createOrderRequest struct {
	Email           string             `json:"email"`
	Items           []orderItemRequest `json:"items"`
	ShippingAddress string             `json:"shippingAddress"`
}

func (h *OrderHandlers) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req createOrderRequest
	if err := decodeJSONBody(r, maxOrderBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "a valid email is required", http.StatusBadRequest))
		return
	}
	if len(req.Items) == 0 {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "at least one item is required", http.StatusBadRequest))
		return
	}
	var total int64
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "items need a productId and a positive quantity", http.StatusBadRequest))
			return
		}
		total += item.Price * int64(item.Quantity)
	}

	now := h.clock()
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"order": map[string]any{
			"orderId":   h.newOrderID(now),
			"status":    string(domain.OrderStatusPending),
			"email":     strings.TrimSpace(req.Email),
			"itemCount": len(req.Items),
			"total":     total,
			"createdAt": now.Format(time.RFC3339),
		},
	})
}

func (h *OrderHandlers) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if orderID == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "order id is required", http.StatusBadRequest))
		return
	}

	now := h.clock()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"order": map[string]any{
			"orderId":   orderID,
			"status":    string(domain.OrderStatusConfirmed),
			"createdAt": now.Add(-24 * time.Hour).Format(time.RFC3339),
			"updatedAt": now.Format(time.RFC3339),
		},
	})
}

func (h *OrderHandlers) listUserOrders(w http.ResponseWriter, r *http.Request) {
	now := h.clock()
	orders := []map[string]any{
		{
			"orderId":   h.newOrderID(now.Add(-72 * time.Hour)),
			"status":    string(domain.OrderStatusShipped),
			"total":     int64(18900),
			"createdAt": now.Add(-72 * time.Hour).Format(time.RFC3339),
		},
		{
			"orderId":   h.newOrderID(now.Add(-6 * time.Hour)),
			"status":    string(domain.OrderStatusPending),
			"total":     int64(5400),
			"createdAt": now.Add(-6 * time.Hour).Format(time.RFC3339),
		},
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *OrderHandlers) newOrderID(ts time.Time) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return "ord_" + ulid.MustNew(ulid.Timestamp(ts), h.entropy).String()
}
