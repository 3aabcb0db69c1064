// Package i18n provides the storefront's localized string lookup.
// Resolution order: requested locale, then the default locale, then the key
// itself so missing translations are visible instead of silently swallowed.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/himalayan-sound/api/internal/domain"
	"github.com/himalayan-sound/api/internal/platform/requestctx"
)

var matcher = func() language.Matcher {
	supported := domain.SupportedLocales()
	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		tags = append(tags, language.Make(string(locale)))
	}
	return language.NewMatcher(tags)
}()

// Negotiate resolves an Accept-Language header or explicit locale parameter
// to a supported locale, defaulting when nothing acceptable matches.
func Negotiate(acceptLanguage string) domain.Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return domain.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return domain.DefaultLocale
	}
	supported := domain.SupportedLocales()
	if index < 0 || index >= len(supported) {
		return domain.DefaultLocale
	}
	return supported[index]
}

// Middleware negotiates the request locale from Accept-Language once per
// request and stores it on the context for downstream consumers.
func Middleware(next http.Handler) http.Handler {
	if next == nil {
		next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := Negotiate(r.Header.Get("Accept-Language"))
		ctx := requestctx.WithLocale(r.Context(), string(locale))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Translate returns the localized string for key in locale. Extra args are
// applied with fmt.Sprintf when the translation carries format verbs.
func Translate(key string, locale domain.Locale, args ...any) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	tmpl, ok := entry[locale]
	if !ok || tmpl == "" {
		tmpl, ok = entry[domain.DefaultLocale]
		if !ok || tmpl == "" {
			return key
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
