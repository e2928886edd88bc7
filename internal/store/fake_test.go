package store

import (
	"context"
	"sync"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

// fakeClient is an in-memory gateway.Client with scriptable failures.
type fakeClient struct {
	mu       sync.Mutex
	user     *gateway.User
	tables   map[string]*fakeTable
	netCalls int
}

func newFakeClient(signedIn bool) *fakeClient {
	c := &fakeClient{tables: map[string]*fakeTable{}}
	if signedIn {
		c.user = &gateway.User{ID: "u-1", Email: "u1@example.ma"}
	}
	return c
}

func (c *fakeClient) From(name string) gateway.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[name]
	if !ok {
		t = &fakeTable{client: c}
		c.tables[name] = t
	}
	return t
}

func (c *fakeClient) Auth() gateway.Auth { return fakeAuth{c} }

func (c *fakeClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.netCalls
}

type fakeAuth struct{ c *fakeClient }

func (a fakeAuth) SignIn(context.Context, string, string) (*gateway.Session, error) {
	return nil, domain.ErrAuth
}
func (a fakeAuth) SignUp(context.Context, string, string, string) (*gateway.Session, error) {
	return nil, domain.ErrAuth
}
func (a fakeAuth) SignOut(context.Context) error {
	a.c.mu.Lock()
	a.c.user = nil
	a.c.mu.Unlock()
	return nil
}
func (a fakeAuth) CurrentUser(context.Context) (*gateway.User, bool) {
	a.c.mu.Lock()
	defer a.c.mu.Unlock()
	return a.c.user, a.c.user != nil
}
func (a fakeAuth) Restore(context.Context, string) (*gateway.Session, error) {
	return nil, domain.ErrAuth
}

// fakeTable answers Select from rows unless a scripted response is queued.
type fakeTable struct {
	client *fakeClient

	mu        sync.Mutex
	rows      []gateway.Row
	scripted  []func() ([]gateway.Row, error)
	inserted  gateway.Row
	insertErr error
	updated   gateway.Row
	updateErr error
	deleteErr error
}

func (t *fakeTable) count() {
	t.client.mu.Lock()
	t.client.netCalls++
	t.client.mu.Unlock()
}

func (t *fakeTable) script(fn func() ([]gateway.Row, error)) {
	t.mu.Lock()
	t.scripted = append(t.scripted, fn)
	t.mu.Unlock()
}

func (t *fakeTable) Select(context.Context, gateway.Query) ([]gateway.Row, error) {
	t.count()
	t.mu.Lock()
	if len(t.scripted) > 0 {
		fn := t.scripted[0]
		t.scripted = t.scripted[1:]
		t.mu.Unlock()
		return fn()
	}
	defer t.mu.Unlock()
	return append([]gateway.Row{}, t.rows...), nil
}

func (t *fakeTable) Insert(_ context.Context, row gateway.Row, _ gateway.Query) (gateway.Row, error) {
	t.count()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inserted = row
	if t.insertErr != nil {
		return nil, t.insertErr
	}
	out := row.Copy()
	out["id"] = "new-id"
	out["created_at"] = "2025-06-01 12:00:00"
	return out, nil
}

func (t *fakeTable) Update(_ context.Context, _ string, row gateway.Row) error {
	t.count()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.updated = row
	return t.updateErr
}

func (t *fakeTable) Delete(context.Context, string) error {
	t.count()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleteErr
}

func (c *fakeClient) table(name string) *fakeTable { return c.From(name).(*fakeTable) }
