package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/httpx"
	"github.com/himalayan-sound/api/internal/platform/i18n"
)

// LeadHandlers captures contact messages and newsletter signups. Submissions
// are validated and acknowledged but not stored anywhere.
type LeadHandlers struct {
	logger func(ctx context.Context, event string, fields map[string]any)
}

const maxLeadBodySize = 32 * 1024

func NewLeadHandlers(logger func(ctx context.Context, event string, fields map[string]any)) *LeadHandlers {
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &LeadHandlers{logger: logger}
}

// Routes registers the lead-capture endpoints directly under the api prefix.
func (h *LeadHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/contact", h.contact)
	r.Post("/newsletter", h.newsletter)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *LeadHandlers) contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req contactRequest
	if err := decodeJSONBody(r, maxLeadBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "name is required", http.StatusBadRequest))
		return
	}
	if !validEmail(req.Email) {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "a valid email is required", http.StatusBadRequest))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "message is required", http.StatusBadRequest))
		return
	}

	h.logger(ctx, "leads.contact_received", map[string]any{
		"email": strings.TrimSpace(req.Email),
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "received",
		"message": i18n.Translate("contact.success", requestLocale(r)),
	})
}

func (h *LeadHandlers) newsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req newsletterRequest
	if err := decodeJSONBody(r, maxLeadBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if !validEmail(req.Email) {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "a valid email is required", http.StatusBadRequest))
		return
	}

	h.logger(ctx, "leads.newsletter_subscribed", map[string]any{
		"email": strings.TrimSpace(req.Email),
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "subscribed",
		"message": i18n.Translate("newsletter.subscribed", requestLocale(r)),
	})
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
