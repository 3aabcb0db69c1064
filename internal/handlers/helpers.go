package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/platform/i18n"
	"github.com/himalayan-sound/api/internal/platform/requestctx"
)

const defaultMaxBodySize = 16 * 1024

var (
	errEmptyBody    = errors.New("request body is empty")
	errBodyTooLarge = errors.New("request body too large")
)

func readLimitedBody(r *http.Request, limit int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, errEmptyBody
	}
	if limit <= 0 {
		limit = defaultMaxBodySize
	}
	reader := io.LimitReader(r.Body, limit+1)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errEmptyBody
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func decodeJSONBody(r *http.Request, limit int64, dst any) error {
	data, err := readLimitedBody(r, limit)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// requestLocale resolves the locale for a request: explicit ?locale= query
// parameter first, the locale negotiated by the i18n middleware next, and
// direct Accept-Language negotiation as the fallback for routes served
// without the middleware.
func requestLocale(r *http.Request) domain.Locale {
	if raw := strings.TrimSpace(r.URL.Query().Get("locale")); raw != "" {
		candidate := domain.Locale(strings.ToLower(raw))
		for _, supported := range domain.SupportedLocales() {
			if candidate == supported {
				return candidate
			}
		}
		return domain.DefaultLocale
	}
	if stored := requestctx.Locale(r.Context()); stored != "" {
		return domain.Locale(stored)
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}
