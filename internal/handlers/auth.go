package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/himalayan-sound/api/internal/platform/auth"
	"github.com/himalayan-sound/api/internal/platform/httpx"
)

// AuthHandlers issues mock sessions. Any email and password are accepted;
// the returned JWT is real so clients can exercise token plumbing, but the
// identity behind it is always the demo user.
type AuthHandlers struct {
	issuer *auth.TokenIssuer
}

const maxAuthBodySize = 8 * 1024

func NewAuthHandlers(issuer *auth.TokenIssuer) *AuthHandlers {
	return &AuthHandlers{issuer: issuer}
}

// Routes wires the /auth endpoints onto the provided router.
func (h *AuthHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale"`
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.issuer == nil {
		httpx.WriteError(ctx, w, httpx.NewError("auth_unavailable", "auth service is unavailable", http.StatusServiceUnavailable))
		return
	}

	var req loginRequest
	if err := decodeJSONBody(r, maxAuthBodySize, &req); err != nil {
		writeBodyError(w, r, err)
		return
	}
	if !validEmail(req.Email) {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "a valid email is required", http.StatusBadRequest))
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "password is required", http.StatusBadRequest))
		return
	}

	token, expiresAt, err := h.issuer.Issue("demo-user", strings.TrimSpace(req.Email), strings.TrimSpace(req.Locale))
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("auth_unavailable", "session issuance failed", http.StatusInternalServerError))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"tokenType": "Bearer",
		"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		"user": map[string]any{
			"id":    "demo-user",
			"email": strings.TrimSpace(req.Email),
		},
		"simulated": true,
	})
}
