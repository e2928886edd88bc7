package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

// ErrSuperseded is returned by FetchAll when a newer FetchAll was issued
// while it was in flight; its response was dropped.
var ErrSuperseded = errors.New("fetch superseded by a newer request")

// Observer receives operation outcomes, e.g. for metrics.
type Observer interface {
	ObserveOp(store, op, outcome string)
	ObserveStale(store string)
}

type nopObserver struct{}

func (nopObserver) ObserveOp(string, string, string) {}
func (nopObserver) ObserveStale(string)              {}

type options struct {
	observer Observer
}

type Option func(*options)

func WithObserver(o Observer) Option {
	return func(opts *options) {
		if o != nil {
			opts.observer = o
		}
	}
}

// codec binds an entity type to its table and wire shape.
type codec[T domain.Entity] struct {
	table    string
	query    gateway.Query
	decode   func(gateway.Row) (T, error)
	encode   func(T) gateway.Row
	validate func(T) error
}

// Store is the single writer of one entity collection.
type Store[T domain.Entity] struct {
	client gateway.Client
	codec  codec[T]
	obs    Observer

	mu    sync.Mutex
	state State[T]
	gen   uint64
}

func newStore[T domain.Entity](client gateway.Client, c codec[T], opts ...Option) *Store[T] {
	o := options{observer: nopObserver{}}
	for _, fn := range opts {
		fn(&o)
	}
	return &Store[T]{client: client, codec: c, obs: o.observer, state: initialState[T]()}
}

// Name is the backing table name.
func (s *Store[T]) Name() string { return s.codec.table }

// Snapshot returns a copy of the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Items = append([]T{}, s.state.Items...)
	if s.state.Selected != nil {
		v := *s.state.Selected
		out.Selected = &v
	}
	return out
}

// Items is Snapshot().Items.
func (s *Store[T]) Items() []T { return s.Snapshot().Items }

func (s *Store[T]) apply(fn func(State[T]) State[T]) {
	s.mu.Lock()
	s.state = fn(s.state)
	s.mu.Unlock()
}

// FetchAll replaces the collection with the gateway's rows. Failures are
// recorded in the state's status and returned; the previous items stay.
// Only the most recently issued fetch may change the state.
func (s *Store[T]) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = fetchStarted(s.state)
	s.mu.Unlock()

	rows, err := s.client.From(s.codec.table).Select(ctx, s.codec.query)
	var items []T
	if err == nil {
		items, err = s.decodeAll(rows)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.obs.ObserveStale(s.codec.table)
		return ErrSuperseded
	}
	if err != nil {
		s.state = fetchFailed(s.state, err.Error())
		s.obs.ObserveOp(s.codec.table, "fetch", "error")
		return err
	}
	s.state = fetchSucceeded(s.state, items)
	s.obs.ObserveOp(s.codec.table, "fetch", "ok")
	return nil
}

func (s *Store[T]) decodeAll(rows []gateway.Row) ([]T, error) {
	items := make([]T, 0, len(rows))
	for _, r := range rows {
		it, err := s.codec.decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Add inserts item and prepends the row the gateway returns. The store
// state is untouched on failure.
func (s *Store[T]) Add(ctx context.Context, item T) (T, error) {
	created, err := s.add(ctx, item)
	s.observe("add", err)
	return created, err
}

func (s *Store[T]) add(ctx context.Context, item T) (T, error) {
	var zero T
	if err := s.requireUser(ctx); err != nil {
		return zero, err
	}
	if err := s.codec.validate(item); err != nil {
		return zero, err
	}
	row, err := s.client.From(s.codec.table).Insert(ctx, s.codec.encode(item), s.codec.query)
	if err != nil {
		return zero, err
	}
	created, err := s.codec.decode(row)
	if err != nil {
		return zero, err
	}
	s.apply(func(st State[T]) State[T] { return added(st, created) })
	return created, nil
}

// Update sends every mutable field of item and, on success, replaces the
// element with the same id by item itself, keeping its position.
func (s *Store[T]) Update(ctx context.Context, item T) error {
	err := s.update(ctx, item)
	s.observe("update", err)
	return err
}

func (s *Store[T]) update(ctx context.Context, item T) error {
	if err := s.requireUser(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(item.EntityID()) == "" {
		return domain.Invalid("id", "required", "id is required")
	}
	if err := s.codec.validate(item); err != nil {
		return err
	}
	if err := s.client.From(s.codec.table).Update(ctx, item.EntityID(), s.codec.encode(item)); err != nil {
		return err
	}
	s.apply(func(st State[T]) State[T] { return updated(st, item) })
	return nil
}

// Delete removes id remotely, then filters it out of the collection.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	s.observe("delete", err)
	return err
}

func (s *Store[T]) delete(ctx context.Context, id string) error {
	if err := s.requireUser(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return domain.Invalid("id", "required", "id is required")
	}
	if err := s.client.From(s.codec.table).Delete(ctx, id); err != nil {
		return err
	}
	s.apply(func(st State[T]) State[T] { return deleted(st, id) })
	return nil
}

// SetSelected records which entity is being edited; nil clears it.
func (s *Store[T]) SetSelected(item *T) {
	s.apply(func(st State[T]) State[T] { return selected(st, item) })
}

// Find returns the loaded entity with id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.state.Items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) requireUser(ctx context.Context) error {
	if _, ok := s.client.Auth().CurrentUser(ctx); !ok {
		return domain.ErrAuth
	}
	return nil
}

func (s *Store[T]) observe(op string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAuth):
		outcome = "unauthorized"
	case errors.Is(err, domain.ErrValidation):
		outcome = "invalid"
	case errors.Is(err, domain.ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	s.obs.ObserveOp(s.codec.table, op, outcome)
}
