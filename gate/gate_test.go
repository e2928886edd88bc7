package gate_test

import (
	"context"
	"testing"

	"github.com/diewo77/indh-market/gate"
)

type row struct{ owner string }

func (r row) OwnerUserID() string { return r.owner }

func TestGate_Authorize_NoUser(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("centers", gate.NewOwnershipPolicy())

	err := g.Authorize(context.Background(), "", gate.ActionSelect, "centers", nil)
	if err != gate.ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGate_Authorize_NoPolicy(t *testing.T) {
	g := gate.NewGate[string]()

	err := g.Authorize(context.Background(), "u1", gate.ActionSelect, "unknown", nil)
	if err != gate.ErrNoPolicyDefined {
		t.Errorf("expected ErrNoPolicyDefined, got %v", err)
	}
}

func TestOwnershipPolicy(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("locals", gate.NewOwnershipPolicy())
	ctx := context.Background()

	tests := []struct {
		name     string
		user     string
		action   gate.Action
		resource any
		want     bool
	}{
		{"insert without resource", "u1", gate.ActionInsert, nil, true},
		{"select without resource", "u1", gate.ActionSelect, nil, true},
		{"delete without resource", "u1", gate.ActionDelete, nil, false},
		{"update own row", "u1", gate.ActionUpdate, row{owner: "u1"}, true},
		{"update foreign row", "u1", gate.ActionUpdate, row{owner: "u2"}, false},
		{"non ownable resource", "u1", gate.ActionSelect, "plain", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Can(ctx, tt.user, tt.action, "locals", tt.resource); got != tt.want {
				t.Errorf("Can() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicyFunc(t *testing.T) {
	g := gate.NewGate[string]()
	g.Register("settings", gate.PolicyFunc[string](func(_ context.Context, user string, action gate.Action, _ any) bool {
		return user == "admin" || action == gate.ActionSelect
	}))
	if !g.Can(context.Background(), "u1", gate.ActionSelect, "settings", nil) {
		t.Error("expected select to be allowed")
	}
	if g.Can(context.Background(), "u1", gate.ActionUpdate, "settings", nil) {
		t.Error("expected update to be denied")
	}
}
