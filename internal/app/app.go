// Package app ties one authenticated gateway client to its entity stores
// and preferences.
package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/diewo77/indh-market/internal/dashboard"
	"github.com/diewo77/indh-market/internal/gateway"
	"github.com/diewo77/indh-market/internal/settings"
	"github.com/diewo77/indh-market/internal/store"
)

// App is the state of one signed-in user. It is passed explicitly to
// whatever needs it; there is no package-level instance.
type App struct {
	Client     gateway.Client
	Centers    *store.Centers
	Locals     *store.Locals
	Owners     *store.Owners
	Activities *store.Activities
	Settings   *settings.Store
}

// New builds the stores around client. Settings are loaded from kv right away;
// collections are empty until Load.
func New(ctx context.Context, client gateway.Client, kv settings.KV, opts ...store.Option) *App {
	return &App{
		Client:     client,
		Centers:    store.NewCenters(client, opts...),
		Locals:     store.NewLocals(client, opts...),
		Owners:     store.NewOwners(client, opts...),
		Activities: store.NewActivities(client, opts...),
		Settings:   settings.Load(ctx, kv),
	}
}

// Load fetches the four collections concurrently and returns the first failure.
func (a *App) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Centers.FetchAll(ctx) })
	g.Go(func() error { return a.Locals.FetchAll(ctx) })
	g.Go(func() error { return a.Owners.FetchAll(ctx) })
	g.Go(func() error { return a.Activities.FetchAll(ctx) })
	return g.Wait()
}

// Dashboard computes the overview from the current snapshots, using the
// preferred currency and language.
func (a *App) Dashboard() dashboard.Stats {
	prefs := a.Settings.Get()
	return dashboard.Compute(dashboard.Input{
		Centers:    a.Centers.Items(),
		Locals:     a.Locals.Items(),
		Owners:     a.Owners.Items(),
		Activities: a.Activities.Items(),
		Currency:   prefs.Currency,
		Language:   prefs.Language,
	})
}

// Directory returns a lookup over the current snapshots.
func (a *App) Directory() *Directory {
	return NewDirectory(a.Centers.Items(), a.Owners.Items(), a.Activities.Items(), a.Locals.Items())
}
