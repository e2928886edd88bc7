package settings

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diewo77/indh-market/internal/domain"
)

func TestDefaultsWhenEmpty(t *testing.T) {
	st := Load(context.Background(), NewMemoryKV())
	if st.Get() != Defaults() {
		t.Fatalf("expected defaults, got %+v", st.Get())
	}
	d := Defaults()
	if d.Language != "fr" || d.Currency != "MAD" || d.Theme != ThemeLight || !d.Animations {
		t.Fatalf("unexpected defaults %+v", d)
	}
	if !d.Notifications.NewTenants || !d.Notifications.LatePayments || d.Notifications.MonthlyReports {
		t.Fatalf("unexpected notification defaults %+v", d.Notifications)
	}
}

func TestSetLanguagePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("kv: %v", err)
	}
	st := Load(ctx, kv)
	if err := st.SetLanguage(ctx, "en"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := Load(ctx, kv).Get().Language; got != "en" {
		t.Fatalf("expected en after reload, got %q", got)
	}
}

func TestEverySetterPersists(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	st := Load(ctx, kv)

	steps := []struct {
		name string
		run  func() error
		want func(Settings) bool
	}{
		{"currency", func() error { return st.SetCurrency(ctx, "EUR") }, func(s Settings) bool { return s.Currency == "EUR" }},
		{"notification", func() error { return st.SetNotification(ctx, NotifyMonthlyReports, true) }, func(s Settings) bool { return s.Notifications.MonthlyReports }},
		{"animations", func() error { return st.SetAnimations(ctx, false) }, func(s Settings) bool { return !s.Animations }},
		{"theme", func() error { return st.SetTheme(ctx, ThemeDark) }, func(s Settings) bool { return s.Theme == ThemeDark }},
	}
	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			if err := step.run(); err != nil {
				t.Fatalf("set: %v", err)
			}
			raw, ok, _ := kv.Get(ctx, Key)
			if !ok {
				t.Fatal("nothing persisted")
			}
			var persisted Settings
			if err := json.Unmarshal(raw, &persisted); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !step.want(persisted) || persisted != st.Get() {
				t.Fatalf("persisted %+v, in memory %+v", persisted, st.Get())
			}
		})
	}
}

func TestPersistedShape(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	if err := Load(ctx, kv).SetAnimations(ctx, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, _, _ := kv.Get(ctx, Key)
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := generic["notifications"].(map[string]any)
	if !ok || n["newTenants"] != true || n["monthlyReports"] != false {
		t.Fatalf("unexpected shape %s", raw)
	}
}

func TestCorruptDataFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"not json":      "{language:",
		"wrong types":   `{"language": 3}`,
		"unknown theme": `{"theme": "neon"}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := NewMemoryKV()
			_ = kv.Set(ctx, Key, []byte(raw))
			if got := Load(ctx, kv).Get(); got != Defaults() {
				t.Fatalf("expected defaults, got %+v", got)
			}
		})
	}
}

func TestPartialDocumentKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Set(ctx, Key, []byte(`{"language":"ar"}`))
	got := Load(ctx, kv).Get()
	want := Defaults()
	want.Language = "ar"
	if got != want {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestInvalidInputs(t *testing.T) {
	ctx := context.Background()
	st := Load(ctx, NewMemoryKV())
	if err := st.SetTheme(ctx, "neon"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := st.SetNotification(ctx, "weeklyDigest", true); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if st.Get() != Defaults() {
		t.Fatal("rejected input must not change settings")
	}
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	dir := t.TempDir()
	kv, _ := NewFileKV(dir)
	if err := kv.Set(context.Background(), "../escape", []byte("x")); err == nil {
		t.Fatal("expected invalid key error")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); err == nil {
		t.Fatal("file written outside dir")
	}
}

func TestScopedKeepsDocumentsApart(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryKV()
	a := Load(ctx, Scoped{KV: shared, Prefix: "alice."})
	b := Load(ctx, Scoped{KV: shared, Prefix: "bob."})
	if err := a.SetLanguage(ctx, "en"); err != nil {
		t.Fatal(err)
	}
	if got := b.Get().Language; got != Defaults().Language {
		t.Fatalf("bob picked up alice's language: %s", got)
	}
	if got := Load(ctx, Scoped{KV: shared, Prefix: "alice."}).Get().Language; got != "en" {
		t.Fatalf("alice reload: %s", got)
	}
	if _, ok, _ := shared.Get(ctx, "alice."+Key); !ok {
		t.Fatal("expected prefixed key in backend")
	}
}
