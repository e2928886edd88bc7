package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/diewo77/indh-market/internal/domain"
)

func TestCompute(t *testing.T) {
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	var locals []domain.Local
	for i := 0; i < 7; i++ {
		status := domain.LocalAvailable
		if i%3 == 0 {
			status = domain.LocalRented
		}
		locals = append(locals, domain.Local{
			ID:          fmt.Sprintf("l%d", i),
			Status:      status,
			MonthlyRent: 1000,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}
	in := Input{
		Centers: []domain.Center{
			{ID: "c1", Name: "A", TotalLocals: 3, AvailableLocals: 1},
			{ID: "c2", Name: "B", TotalLocals: 0, AvailableLocals: 0},
			{ID: "c3", Name: "C", TotalLocals: 2, AvailableLocals: 5},
		},
		Locals:     locals,
		Owners:     []domain.Owner{{ID: "o1"}},
		Activities: []domain.Activity{{Type: domain.ActivityRestaurant}, {Type: domain.ActivityRestaurant}, {Type: domain.ActivityAutre}},
		Currency:   "MAD",
		Language:   "en",
	}
	st := Compute(in)

	if st.TotalLocals != 7 || st.RentedLocals != 3 || st.AvailableLocals != 4 {
		t.Fatalf("unexpected counts %+v", st)
	}
	if st.OccupancyRate != 43 {
		t.Fatalf("expected 43%% occupancy got %d", st.OccupancyRate)
	}
	if st.TotalRent != 3000 || st.TotalRentDisplay != "3,000 DH" {
		t.Fatalf("unexpected rent %v %q", st.TotalRent, st.TotalRentDisplay)
	}
	if st.Activities[domain.ActivityRestaurant] != 2 || st.Activities[domain.ActivityBoutique] != 0 {
		t.Fatalf("unexpected activity counts %v", st.Activities)
	}
	if got := st.PerCenter[0].OccupancyRate; got != 67 {
		t.Fatalf("expected 67 for c1 got %d", got)
	}
	if got := st.PerCenter[1].OccupancyRate; got != 0 {
		t.Fatalf("expected 0 for empty center got %d", got)
	}
	// availableLocals > totalLocals is passed through, not clamped.
	if got := st.PerCenter[2].OccupancyRate; got != -150 {
		t.Fatalf("expected -150 for inconsistent center got %d", got)
	}
	if len(st.RecentLocals) != 5 || st.RecentLocals[0].ID != "l6" {
		t.Fatalf("unexpected recent locals %+v", st.RecentLocals)
	}
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(Input{Currency: "EUR"})
	if st.OccupancyRate != 0 || st.TotalRentDisplay != "0 €" || len(st.RecentLocals) != 0 {
		t.Fatalf("unexpected empty stats %+v", st)
	}
}
