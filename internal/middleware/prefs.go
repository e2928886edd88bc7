// Package middleware holds the HTTP middlewares shared by the router.
package middleware

import (
	"context"
	"net/http"

	"github.com/diewo77/indh-market/i18n"
	"github.com/diewo77/indh-market/internal/settings"
)

type ctxKey string

const ctxTheme ctxKey = "pref_theme"

const prefCookieAge = 86400 * 30

// Prefs extracts language/theme preferences (query > cookie > Accept-Language)
// and stores them in context. Query-provided prefs are persisted in cookies
// for ~30 days. Unsupported values fall back to the defaults.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie("lang"); err == nil {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); ql != "" && i18n.IsSupported(ql) {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: prefCookieAge})
		}
		if !i18n.IsSupported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}

		theme := ""
		if c, err := r.Cookie("theme"); err == nil {
			theme = c.Value
		}
		if qt := r.URL.Query().Get("theme"); qt != "" && validTheme(qt) {
			theme = qt
			http.SetCookie(w, &http.Cookie{Name: "theme", Value: theme, Path: "/", MaxAge: prefCookieAge})
		}
		if !validTheme(theme) {
			theme = string(settings.ThemeSystem)
		}

		ctx := i18n.WithLang(r.Context(), lang)
		ctx = context.WithValue(ctx, ctxTheme, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFrom returns language preference from context or fallback.
func LangFrom(r *http.Request) string {
	return i18n.LangFromContext(r.Context())
}

// ThemeFrom returns theme preference from context or fallback.
func ThemeFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxTheme).(string); ok && v != "" {
		return v
	}
	return string(settings.ThemeSystem)
}

func validTheme(t string) bool {
	for _, v := range settings.Themes {
		if v == t {
			return true
		}
	}
	return false
}
