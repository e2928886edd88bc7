package i18n

import (
	"context"
	"testing"
)

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("EN-gb") != "en" {
		t.Fatalf("expected en for EN-gb")
	}
	if DetectLanguage("fr-FR,fr;q=0.8") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("ar-MA,ar;q=0.9,fr;q=0.5") != "ar" {
		t.Fatalf("expected ar")
	}
	if DetectLanguage("") != "fr" {
		t.Fatalf("expected default fr")
	}
	if DetectLanguage("!!garbage") != "fr" {
		t.Fatalf("expected default fr for garbage")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("fr", "required") != "Requis" {
		t.Fatalf("expected Requis")
	}
	if T("en", "dashboard") != "Dashboard" {
		t.Fatalf("expected Dashboard")
	}
	if T("es", "artisanat") != "Artesanía" {
		t.Fatalf("expected Artesanía, got %q", T("es", "artisanat"))
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to fr translation if exists
	if T("de", "required") != "Requis" {
		t.Fatalf("expected fr fallback for de lang")
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for _, tables := range []map[string]map[string]string{labels, codes} {
		for _, lang := range Supported {
			if len(tables[lang]) != len(tables[Default]) {
				t.Fatalf("%s: %d keys, fr has %d", lang, len(tables[lang]), len(tables[Default]))
			}
			for k := range tables[Default] {
				if _, ok := tables[lang][k]; !ok {
					t.Fatalf("%s is missing %q", lang, k)
				}
			}
		}
	}
}

func TestNormalizeAndContext(t *testing.T) {
	if Normalize(" EN ") != "en" || Normalize("de") != "fr" {
		t.Fatalf("unexpected normalization")
	}
	if LangFromContext(context.Background()) != "fr" {
		t.Fatalf("expected default")
	}
	if LangFromContext(WithLang(context.Background(), "ar")) != "ar" {
		t.Fatalf("expected ar")
	}
}
