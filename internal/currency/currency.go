// Package currency converts amounts held in Moroccan dirhams (MAD) into the
// display currency and formats them with grouped digits.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Base          = "MAD"
	DefaultSymbol = "DH"
)

var symbols = map[string]string{
	"MAD": "DH",
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// rates are fixed multipliers from MAD.
var rates = map[string]decimal.Decimal{
	"MAD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.092"),
	"USD": decimal.RequireFromString("0.1"),
	"GBP": decimal.RequireFromString("0.079"),
}

// Codes lists the known currency codes.
func Codes() []string { return []string{"MAD", "EUR", "USD", "GBP"} }

// Known reports whether code has a symbol and a rate.
func Known(code string) bool {
	_, ok := rates[code]
	return ok
}

// Symbol returns the display symbol, "DH" for unknown codes.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return DefaultSymbol
}

// Rate returns the MAD multiplier for code, 1 for unknown codes.
func Rate(code string) decimal.Decimal {
	if r, ok := rates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// ConvertFromMAD multiplies by the rate and rounds to the nearest unit,
// halves away from zero, so -2.5 becomes -3 rather than -2. Amounts are
// rents and totals, which validation keeps non-negative.
func ConvertFromMAD(amount float64, code string) int64 {
	return decimal.NewFromFloat(amount).Mul(Rate(code)).Round(0).IntPart()
}

// Format converts amount and renders it as "1,000 DH".
func Format(amount float64, code string) string {
	return FormatIn(language.English, amount, code)
}

// FormatIn is Format with the digit grouping of tag.
func FormatIn(tag language.Tag, amount float64, code string) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d", ConvertFromMAD(amount, code)) + " " + Symbol(code)
}

// FormatLang resolves a language code such as "fr" and formats with it.
func FormatLang(lang string, amount float64, code string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return FormatIn(tag, amount, code)
}
