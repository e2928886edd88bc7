package app

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
	"github.com/diewo77/indh-market/internal/gateway/gormgw"
	"github.com/diewo77/indh-market/internal/settings"
)

func setupRegistry(t *testing.T) (*Registry, *settings.MemoryKV) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(gormgw.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	b := gormgw.New(db)
	kv := settings.NewMemoryKV()
	return NewRegistry(func() gateway.Client { return b.NewClient() }, kv), kv
}

func TestSignUpThenSignInSharesApp(t *testing.T) {
	ctx := context.Background()
	reg, _ := setupRegistry(t)

	s, a, err := reg.SignUp(ctx, "karim@example.ma", "secret123", "Karim")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := a.Centers.Add(ctx, domain.Center{Name: "Centre A", Address: "123 St", TotalLocals: 10, AvailableLocals: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	s2, a2, err := reg.SignIn(ctx, "karim@example.ma", "secret123")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if a2 != a || s2.User.ID != s.User.ID {
		t.Fatal("expected the same App for the same user")
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 app got %d", reg.Len())
	}
}

func TestGetRestoresAfterSignOut(t *testing.T) {
	ctx := context.Background()
	reg, _ := setupRegistry(t)
	s, a, err := reg.SignUp(ctx, "nadia@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Centers.Add(ctx, domain.Center{Name: "Souk", Address: "Rabat"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.SignOut(ctx, s.User.ID); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 0 {
		t.Fatal("sign out should forget the app")
	}
	restored, err := reg.Get(ctx, s.User.ID, s.AccessToken)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == a {
		t.Fatal("expected a fresh App after sign out")
	}
	if n := len(restored.Centers.Items()); n != 1 {
		t.Fatalf("restored app should be loaded, got %d centers", n)
	}
}

func TestGetRejectsBadToken(t *testing.T) {
	ctx := context.Background()
	reg, _ := setupRegistry(t)
	if _, err := reg.Get(ctx, "someone", "not-a-token"); !errors.Is(err, domain.ErrAuth) {
		t.Fatalf("expected auth error got %v", err)
	}
	s, _, err := reg.SignUp(ctx, "x@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	_ = reg.SignOut(ctx, s.User.ID)
	if _, err := reg.Get(ctx, "other-user", s.AccessToken); !errors.Is(err, domain.ErrAuth) {
		t.Fatalf("expected subject mismatch auth error got %v", err)
	}
}

func TestSettingsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	reg, kv := setupRegistry(t)
	s1, a1, err := reg.SignUp(ctx, "one@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	_, a2, err := reg.SignUp(ctx, "two@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := a1.Settings.SetCurrency(ctx, "EUR"); err != nil {
		t.Fatal(err)
	}
	if a2.Settings.Get().Currency != "MAD" {
		t.Fatal("settings leaked between users")
	}
	if _, ok, _ := kv.Get(ctx, s1.User.ID+"."+settings.Key); !ok {
		t.Fatal("expected per-user settings document")
	}
}

func TestDirectoryUsesCurrentNames(t *testing.T) {
	ctx := context.Background()
	reg, _ := setupRegistry(t)
	_, a, err := reg.SignUp(ctx, "dir@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	center, err := a.Centers.Add(ctx, domain.Center{Name: "Ancien nom", Address: "Fès", TotalLocals: 1})
	if err != nil {
		t.Fatal(err)
	}
	local, err := a.Locals.Add(ctx, domain.Local{Number: "C-3", Status: domain.LocalAvailable, CenterID: center.ID})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Activities.Add(ctx, domain.Activity{Name: "Café", Type: domain.ActivityRestaurant, LocalID: local.ID}); err != nil {
		t.Fatal(err)
	}
	center.Name = "Nouveau nom"
	if err := a.Centers.Update(ctx, center); err != nil {
		t.Fatal(err)
	}
	stored, _ := a.Locals.Find(local.ID)
	if stored.CenterName != "Ancien nom" {
		t.Fatalf("stored copy is a snapshot, got %q", stored.CenterName)
	}
	dir := a.Directory()
	if got := dir.ResolveLocal(stored).CenterName; got != "Nouveau nom" {
		t.Fatalf("resolved name = %q", got)
	}
	acts := dir.ResolveActivities(a.Activities.Items())
	if acts[0].LocalNumber != "C-3" {
		t.Fatalf("activity local number = %q", acts[0].LocalNumber)
	}
}

func TestDirectoryFallsBackToStoredName(t *testing.T) {
	d := NewDirectory(nil, nil, nil, nil)
	l := d.ResolveLocal(domain.Local{CenterID: "gone", CenterName: "Archivé", OwnerID: ""})
	if l.CenterName != "Archivé" || l.OwnerName != "" {
		t.Fatalf("unexpected %+v", l)
	}
}

func TestDashboardUsesPreferredCurrency(t *testing.T) {
	ctx := context.Background()
	reg, _ := setupRegistry(t)
	_, a, err := reg.SignUp(ctx, "dash@example.ma", "secret123", "")
	if err != nil {
		t.Fatal(err)
	}
	center, err := a.Centers.Add(ctx, domain.Center{Name: "Centre", Address: "Oujda", TotalLocals: 2, AvailableLocals: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range []domain.Local{
		{Number: "1", Status: domain.LocalRented, MonthlyRent: 1000, CenterID: center.ID},
		{Number: "2", Status: domain.LocalAvailable, MonthlyRent: 800, CenterID: center.ID},
	} {
		if _, err := a.Locals.Add(ctx, l); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Settings.SetLanguage(ctx, "en"); err != nil {
		t.Fatal(err)
	}
	if err := a.Settings.SetCurrency(ctx, "EUR"); err != nil {
		t.Fatal(err)
	}
	st := a.Dashboard()
	if st.OccupancyRate != 50 || st.TotalRent != 1000 || st.Currency != "EUR" {
		t.Fatalf("unexpected stats %+v", st)
	}
	if st.TotalRentDisplay != "92 €" {
		t.Fatalf("display = %q", st.TotalRentDisplay)
	}
}
