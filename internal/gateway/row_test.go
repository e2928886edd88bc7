package gateway

import (
	"errors"
	"testing"
	"time"

	"github.com/diewo77/indh-market/internal/domain"
)

func TestRowAccessors(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Row{
		"id":           "abc",
		"total_locals": int64(10),
		"size":         "42.5",
		"created_at":   "2025-03-01 10:00:00",
		"updated":      now,
		"centers":      map[string]any{"name": "Centre A"},
	}
	if s, err := r.String("id", true); err != nil || s != "abc" {
		t.Fatalf("id: %q %v", s, err)
	}
	if n, err := r.Int("total_locals"); err != nil || n != 10 {
		t.Fatalf("total_locals: %d %v", n, err)
	}
	if f, err := r.Float("size"); err != nil || f != 42.5 {
		t.Fatalf("size: %v %v", f, err)
	}
	if ts, err := r.Time("created_at", true); err != nil || !ts.Equal(now) {
		t.Fatalf("created_at: %v %v", ts, err)
	}
	if ts, err := r.Time("updated", true); err != nil || !ts.Equal(now) {
		t.Fatalf("updated: %v %v", ts, err)
	}
	nested, err := r.Nested("centers")
	if err != nil || nested["name"] != "Centre A" {
		t.Fatalf("centers: %v %v", nested, err)
	}
	if nested, err := r.Nested("owners"); err != nil || nested != nil {
		t.Fatalf("owners: expected nil, got %v %v", nested, err)
	}
}

func TestRowShapeMismatch(t *testing.T) {
	r := Row{"id": 12, "total_locals": 1.5, "created_at": true, "size": 1e300, "count": "-1e19"}
	for name, fn := range map[string]func() error{
		"missing":        func() error { _, err := r.String("name", true); return err },
		"string type":    func() error { _, err := r.String("id", true); return err },
		"fractional int": func() error { _, err := r.Int("total_locals"); return err },
		"bad time":       func() error { _, err := r.Time("created_at", true); return err },
		"huge int":       func() error { _, err := r.Int("size"); return err },
		"negative huge":  func() error { _, err := r.Int("count"); return err },
	} {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
