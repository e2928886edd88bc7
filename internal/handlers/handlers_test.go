package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/indh-market/internal/domain"
)

func TestDecodeWithIDForcesPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/api/centers/c1", strings.NewReader(`{"name":"A","address":"B"}`))
	c, err := decodeWithID[domain.Center](r, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != "c1" || c.Name != "A" {
		t.Fatalf("unexpected %+v", c)
	}

	r = httptest.NewRequest(http.MethodPut, "/api/centers/c1", strings.NewReader(`{"id":"c1","name":"A"}`))
	if _, err := decodeWithID[domain.Center](r, "c1"); err != nil {
		t.Fatalf("matching id should pass: %v", err)
	}

	r = httptest.NewRequest(http.MethodPut, "/api/centers/c1", strings.NewReader(`{"id":"c2"}`))
	if _, err := decodeWithID[domain.Center](r, "c1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	r = httptest.NewRequest(http.MethodPut, "/api/centers/c1", strings.NewReader(`{"totalLocals":"ten"}`))
	if _, err := decodeWithID[domain.Center](r, "c1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on bad type, got %v", err)
	}
}

func TestSettingsPatchValidate(t *testing.T) {
	lang, cur, theme := "de", "JPY", "neon"
	err := settingsPatch{Language: &lang, Currency: &cur, Theme: &theme}.validate()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, f := range []string{"language", "currency", "theme"} {
		if ve.Violations[f] != "invalid_choice" {
			t.Fatalf("missing violation for %s: %v", f, ve.Violations)
		}
	}
	if err := (settingsPatch{}).validate(); err != nil {
		t.Fatalf("empty patch is valid: %v", err)
	}
}

func TestConvertCurrency(t *testing.T) {
	w := httptest.NewRecorder()
	ConvertCurrency(w, httptest.NewRequest(http.MethodGet, "/api/currency/convert?amount=1000&to=EUR", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var got conversion
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Converted != 92 || got.From != "MAD" || got.To != "EUR" {
		t.Fatalf("unexpected %+v", got)
	}

	w = httptest.NewRecorder()
	ConvertCurrency(w, httptest.NewRequest(http.MethodGet, "/api/currency/convert?amount=5&to=XYZ", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
