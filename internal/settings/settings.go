// Package settings holds the process-wide user preferences and persists
// them as one JSON document under a single key.
package settings

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/validation"
)

// Key under which the serialized Settings live.
const Key = "indh-settings"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var Themes = []string{string(ThemeLight), string(ThemeDark), string(ThemeSystem)}

// Notification keys accepted by SetNotification.
const (
	NotifyNewTenants     = "newTenants"
	NotifyLatePayments   = "latePayments"
	NotifyMonthlyReports = "monthlyReports"
)

type Notifications struct {
	NewTenants     bool `json:"newTenants"`
	LatePayments   bool `json:"latePayments"`
	MonthlyReports bool `json:"monthlyReports"`
}

type Settings struct {
	Language      string        `json:"language"`
	Currency      string        `json:"currency"`
	Notifications Notifications `json:"notifications"`
	Animations    bool          `json:"animations"`
	Theme         Theme         `json:"theme"`
}

// Defaults is the state used when nothing usable is persisted.
func Defaults() Settings {
	return Settings{
		Language: "fr",
		Currency: "MAD",
		Notifications: Notifications{
			NewTenants:     true,
			LatePayments:   true,
			MonthlyReports: false,
		},
		Animations: true,
		Theme:      ThemeLight,
	}
}

// KV is the persistent key-value backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store is the single Settings instance. Every setter persists the whole
// document before returning.
type Store struct {
	kv KV

	mu sync.RWMutex
	s  Settings
}

// Load reads the persisted document once. Missing, unreadable or corrupt
// data yields Defaults; fields absent from an older document keep their
// default values.
func Load(ctx context.Context, kv KV) *Store {
	st := &Store{kv: kv, s: Defaults()}
	raw, ok, err := kv.Get(ctx, Key)
	if err != nil {
		log.Printf("settings: read %s: %v (using defaults)", Key, err)
		return st
	}
	if !ok {
		return st
	}
	parsed := Defaults()
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("settings: corrupt %s ignored: %v", Key, err)
		return st
	}
	if !validTheme(parsed.Theme) {
		log.Printf("settings: unknown theme %q ignored", parsed.Theme)
		return st
	}
	st.s = parsed
	return st
}

// Get returns a copy of the current settings.
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

func (st *Store) SetLanguage(ctx context.Context, lang string) error {
	return st.mutate(ctx, func(s *Settings) error {
		s.Language = lang
		return nil
	})
}

func (st *Store) SetCurrency(ctx context.Context, code string) error {
	return st.mutate(ctx, func(s *Settings) error {
		s.Currency = code
		return nil
	})
}

// SetNotification flips one of the three notification flags by key.
func (st *Store) SetNotification(ctx context.Context, key string, enabled bool) error {
	return st.mutate(ctx, func(s *Settings) error {
		switch key {
		case NotifyNewTenants:
			s.Notifications.NewTenants = enabled
		case NotifyLatePayments:
			s.Notifications.LatePayments = enabled
		case NotifyMonthlyReports:
			s.Notifications.MonthlyReports = enabled
		default:
			return domain.Invalid("notifications", "invalid_choice", "unknown notification %q", key)
		}
		return nil
	})
}

func (st *Store) SetAnimations(ctx context.Context, enabled bool) error {
	return st.mutate(ctx, func(s *Settings) error {
		s.Animations = enabled
		return nil
	})
}

func (st *Store) SetTheme(ctx context.Context, theme Theme) error {
	return st.mutate(ctx, func(s *Settings) error {
		if !validTheme(theme) {
			v := validation.Violations{}
			validation.OneOf("theme", string(theme), Themes, v)
			return domain.NewValidationError(v)
		}
		s.Theme = theme
		return nil
	})
}

// mutate applies fn and persists. A persistence failure is returned but
// the in-memory change is kept.
func (st *Store) mutate(ctx context.Context, fn func(*Settings) error) error {
	st.mu.Lock()
	next := st.s
	if err := fn(&next); err != nil {
		st.mu.Unlock()
		return err
	}
	st.s = next
	raw, err := json.Marshal(next)
	st.mu.Unlock()
	if err != nil {
		return err
	}
	return st.kv.Set(ctx, Key, raw)
}

func validTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
