// Package i18n translates interface labels and error codes into the four
// supported languages. French is the fallback for everything.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

const Default = "fr"

// Supported lists the language codes with a full label table, in matcher order.
var Supported = []string{"fr", "en", "ar", "es"}

var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
	language.Arabic,
	language.Spanish,
})

type ctxKey struct{}

// T returns the translation of key in lang. Unknown languages fall back to
// French; unknown keys are returned as is.
func T(lang, key string) string {
	for _, l := range []string{lang, Default} {
		if s, ok := labels[l][key]; ok {
			return s
		}
		if s, ok := codes[l][key]; ok {
			return s
		}
	}
	return key
}

// IsSupported reports whether lang has its own table.
func IsSupported(lang string) bool {
	_, ok := labels[lang]
	return ok
}

// Normalize maps anything unsupported to the default language.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if IsSupported(lang) {
		return lang
	}
	return Default
}

// DetectLanguage picks the best supported language for an Accept-Language header.
func DetectLanguage(acceptLang string) string {
	if strings.TrimSpace(acceptLang) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// WithLang stores the request language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// LangFromContext returns the stored language or the default.
func LangFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return Default
}
