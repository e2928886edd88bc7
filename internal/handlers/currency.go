package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/i18n"
	"github.com/diewo77/indh-market/internal/currency"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/validation"
)

type conversion struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted int64   `json:"converted"`
	Formatted string  `json:"formatted"`
}

// ConvertCurrency converts ?amount= MAD into ?to= (MAD when absent).
func ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := validation.Violations{}
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil {
		v["amount"] = "invalid_type"
	}
	to := q.Get("to")
	if to == "" {
		to = currency.Base
	}
	validation.OneOf("to", to, currency.Codes(), v)
	if err := domain.NewValidationError(v); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, conversion{
		Amount:    amount,
		From:      currency.Base,
		To:        to,
		Converted: currency.ConvertFromMAD(amount, to),
		Formatted: currency.FormatLang(i18n.LangFromContext(r.Context()), amount, to),
	})
}
