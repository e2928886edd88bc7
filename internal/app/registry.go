package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
	"github.com/diewo77/indh-market/internal/settings"
	"github.com/diewo77/indh-market/internal/store"
)

// ClientFactory opens a fresh, anonymous gateway client.
type ClientFactory func() gateway.Client

// Registry keeps one App per signed-in user id.
type Registry struct {
	newClient ClientFactory
	kv        settings.KV
	opts      []store.Option

	mu   sync.Mutex
	apps map[string]*App
}

func NewRegistry(newClient ClientFactory, kv settings.KV, opts ...store.Option) *Registry {
	return &Registry{newClient: newClient, kv: kv, opts: opts, apps: map[string]*App{}}
}

// SignUp registers a user and returns the session with the user's App.
func (r *Registry) SignUp(ctx context.Context, email, password, displayName string) (*gateway.Session, *App, error) {
	c := r.newClient()
	s, err := c.Auth().SignUp(ctx, email, password, displayName)
	if err != nil {
		return nil, nil, err
	}
	a, err := r.attach(ctx, s.User.ID, c)
	return s, a, err
}

// SignIn authenticates and returns the session with the user's App. A user
// already signed in elsewhere keeps the same App.
func (r *Registry) SignIn(ctx context.Context, email, password string) (*gateway.Session, *App, error) {
	c := r.newClient()
	s, err := c.Auth().SignIn(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}
	a, err := r.attach(ctx, s.User.ID, c)
	return s, a, err
}

// Get returns the App for uid, restoring it from the access token after a
// restart or an eviction.
func (r *Registry) Get(ctx context.Context, uid, token string) (*App, error) {
	r.mu.Lock()
	a, ok := r.apps[uid]
	r.mu.Unlock()
	if ok {
		if _, live := a.Client.Auth().CurrentUser(ctx); live {
			return a, nil
		}
	}
	c := r.newClient()
	s, err := c.Auth().Restore(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.User.ID != uid {
		return nil, fmt.Errorf("%w: token subject mismatch", domain.ErrAuth)
	}
	return r.attach(ctx, uid, c)
}

// SignOut ends the user's gateway session and forgets the App.
func (r *Registry) SignOut(ctx context.Context, uid string) error {
	r.mu.Lock()
	a, ok := r.apps[uid]
	delete(r.apps, uid)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return a.Client.Auth().SignOut(ctx)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

// attach swaps c into the user's App, or creates and loads a new App.
func (r *Registry) attach(ctx context.Context, uid string, c gateway.Client) (*App, error) {
	r.mu.Lock()
	if a, ok := r.apps[uid]; ok {
		if _, live := a.Client.Auth().CurrentUser(ctx); live {
			r.mu.Unlock()
			return a, nil
		}
	}
	r.mu.Unlock()

	kv := settings.Scoped{KV: r.kv, Prefix: uid + "."}
	a := New(ctx, c, kv, r.opts...)
	if err := a.Load(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.apps[uid]; ok {
		if _, live := existing.Client.Auth().CurrentUser(ctx); live {
			return existing, nil
		}
	}
	r.apps[uid] = a
	return a, nil
}
