// Package gormgw implements the gateway contracts on top of gorm, so the
// same stores run against postgres in production and sqlite in tests.
// Every entity row carries the id of the user who created it and is only
// visible to that user.
package gormgw

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/indh-market/gate"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Backend is the shared database handle. Clients derived from it each hold
// their own session.
type Backend struct {
	db       *gorm.DB
	gate     *gate.Gate[string]
	tables   map[string]bool
	tokenTTL time.Duration
	now      func() time.Time
}

type Option func(*Backend)

// WithTokenTTL sets how long issued access tokens stay valid.
func WithTokenTTL(d time.Duration) Option { return func(b *Backend) { b.tokenTTL = d } }

// WithClock replaces time.Now, for tests that assert on created_at.
func WithClock(now func() time.Time) Option { return func(b *Backend) { b.now = now } }

// New wraps db. The caller owns migrations (see internal/db).
func New(db *gorm.DB, opts ...Option) *Backend {
	b := &Backend{
		db:       db,
		gate:     gate.NewGate[string](),
		tables:   map[string]bool{},
		tokenTTL: 7 * 24 * time.Hour,
		now:      time.Now,
	}
	for _, t := range EntityTables {
		b.tables[t] = true
		b.gate.Register(t, gate.NewOwnershipPolicy())
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// NewClient returns a client with no session.
func (b *Backend) NewClient() *Client {
	return &Client{b: b}
}

// UserExists backs auth.SetUserVerifier.
func (b *Backend) UserExists(ctx context.Context, id string) bool {
	var count int64
	if err := b.db.WithContext(ctx).Model(&UserRow{}).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// Ping runs a trivial query, used by /healthz.
func (b *Backend) Ping(ctx context.Context) error {
	return b.db.WithContext(ctx).Exec("SELECT 1").Error
}

// owned adapts a row's user_id to gate.Ownable.
type owned string

func (o owned) OwnerUserID() string { return string(o) }

// translate maps driver errors onto the domain taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(lower, "unique constraint"),
		strings.Contains(lower, "duplicate key"):
		return domain.Invalid("", "duplicate", "%s", msg)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		strings.Contains(lower, "not null constraint"),
		strings.Contains(lower, "violates not-null"):
		return domain.Invalid("", "constraint", "%s", msg)
	}
	return domain.NetworkError(msg)
}

func checkIdent(kind, s string) error {
	if !identRe.MatchString(s) {
		return domain.Invalid(kind, "invalid_choice", "invalid %s %q", kind, s)
	}
	return nil
}

var _ gateway.Client = (*Client)(nil)
