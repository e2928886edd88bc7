// Package httpx holds the JSON response helpers shared by every handler.
package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/diewo77/indh-market/i18n"
	"github.com/diewo77/indh-market/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// DecodeJSON reads a JSON body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("body", "invalid_json", "invalid JSON body: %v", err)
	}
	return nil
}

// WriteError maps the domain error taxonomy onto status codes. The message is
// localized from the request language; gateway messages are passed through.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.LangFromContext(r.Context())
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		JSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: i18n.T(lang, "validation_failed"),
			Details: translateViolations(lang, ve),
		})
	case errors.Is(err, domain.ErrAuth):
		JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: i18n.T(lang, "unauthorized")})
	case errors.Is(err, domain.ErrNotFound):
		JSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Message: i18n.T(lang, "not_found")})
	case errors.Is(err, domain.ErrNetwork):
		JSON(w, http.StatusBadGateway, ErrorResponse{Error: "gateway_error", Message: err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", r.Method, r.URL.Path, err)
		JSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: i18n.T(lang, "internal_error")})
	}
}

func translateViolations(lang string, ve *domain.ValidationError) map[string]string {
	out := make(map[string]string, len(ve.Violations))
	for field, code := range ve.Violations {
		out[field] = i18n.T(lang, code)
	}
	return out
}
