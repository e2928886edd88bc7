package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway/gormgw"
	"github.com/diewo77/indh-market/internal/store"
)

// Demo account created by Seed.
const (
	DemoEmail    = "demo@indh.ma"
	DemoPassword = "demo1234"
	DemoName     = "Compte démo"
)

// Seed creates the demo account and, when it owns no center yet, a small
// data set written through the entity stores. Running it twice is a no-op.
func Seed(ctx context.Context, b *gormgw.Backend) error {
	c := b.NewClient()
	if _, err := c.Auth().SignIn(ctx, DemoEmail, DemoPassword); err != nil {
		if !errors.Is(err, domain.ErrAuth) {
			return err
		}
		if _, err := c.Auth().SignUp(ctx, DemoEmail, DemoPassword, DemoName); err != nil {
			return fmt.Errorf("seed demo user: %w", err)
		}
	}

	centers := store.NewCenters(c)
	if err := centers.FetchAll(ctx); err != nil {
		return err
	}
	if len(centers.Items()) > 0 {
		return nil
	}

	hay, err := centers.Add(ctx, domain.Center{
		Name: "Centre Hay Mohammadi", Address: "Bd Ali Yaâta, Casablanca",
		Description: "Centre commercial de proximité", TotalLocals: 12, AvailableLocals: 9,
	})
	if err != nil {
		return fmt.Errorf("seed center: %w", err)
	}
	medina, err := centers.Add(ctx, domain.Center{
		Name: "Souk Médina", Address: "Rue des Consuls, Rabat", TotalLocals: 8, AvailableLocals: 7,
	})
	if err != nil {
		return fmt.Errorf("seed center: %w", err)
	}

	owners := store.NewOwners(c)
	fatima, err := owners.Add(ctx, domain.Owner{
		FirstName: "Fatima", LastName: "Benali", Email: "fatima.benali@example.ma", Phone: "0612345678",
	})
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	if _, err := owners.Add(ctx, domain.Owner{FirstName: "Youssef", LastName: "Amrani", Phone: "0698765432"}); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}

	activities := store.NewActivities(c)
	bakery, err := activities.Add(ctx, domain.Activity{
		Name: "Boulangerie Atlas", Type: domain.ActivityRestaurant, Description: "Pains et pâtisseries",
	})
	if err != nil {
		return fmt.Errorf("seed activity: %w", err)
	}

	locals := store.NewLocals(c)
	seedLocals := []domain.Local{
		{Number: "A-01", Size: 24, Status: domain.LocalRented, MonthlyRent: 1500, CenterID: hay.ID, OwnerID: fatima.ID, ActivityID: bakery.ID},
		{Number: "A-02", Size: 18, Status: domain.LocalAvailable, MonthlyRent: 1200, CenterID: hay.ID},
		{Number: "B-01", Size: 30, Status: domain.LocalAvailable, MonthlyRent: 2000, CenterID: medina.ID},
	}
	for _, l := range seedLocals {
		if _, err := locals.Add(ctx, l); err != nil {
			return fmt.Errorf("seed local %s: %w", l.Number, err)
		}
	}
	log.Printf("[DB] Seeded demo data for %s", DemoEmail)
	return nil
}
