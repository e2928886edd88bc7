// Package dashboard derives the portfolio overview from the loaded
// collections. It never talks to the gateway.
package dashboard

import (
	"math"
	"sort"

	"github.com/diewo77/indh-market/internal/currency"
	"github.com/diewo77/indh-market/internal/domain"
)

const recentLimit = 5

type CenterOccupancy struct {
	CenterID        string `json:"centerId"`
	Name            string `json:"name"`
	TotalLocals     int    `json:"totalLocals"`
	AvailableLocals int    `json:"availableLocals"`
	OccupancyRate   int    `json:"occupancyRate"`
}

type Stats struct {
	Centers          int                         `json:"centers"`
	Owners           int                         `json:"owners"`
	TotalLocals      int                         `json:"totalLocals"`
	AvailableLocals  int                         `json:"availableLocals"`
	RentedLocals     int                         `json:"rentedLocals"`
	OccupancyRate    int                         `json:"occupancyRate"`
	TotalRent        float64                     `json:"totalRent"`
	TotalRentDisplay string                      `json:"totalRentDisplay"`
	Currency         string                      `json:"currency"`
	Activities       map[domain.ActivityType]int `json:"activities"`
	PerCenter        []CenterOccupancy           `json:"perCenter"`
	RecentLocals     []domain.Local              `json:"recentLocals"`
}

// Input is a snapshot of the four collections plus display preferences.
type Input struct {
	Centers    []domain.Center
	Locals     []domain.Local
	Owners     []domain.Owner
	Activities []domain.Activity
	Currency   string
	Language   string
}

// Compute builds Stats. Rates are percentages rounded to the nearest integer.
func Compute(in Input) Stats {
	st := Stats{
		Centers:     len(in.Centers),
		Owners:      len(in.Owners),
		TotalLocals: len(in.Locals),
		Currency:    in.Currency,
		Activities:  map[domain.ActivityType]int{},
	}
	for _, l := range in.Locals {
		switch l.Status {
		case domain.LocalAvailable:
			st.AvailableLocals++
		case domain.LocalRented:
			st.RentedLocals++
			st.TotalRent += l.MonthlyRent
		}
	}
	st.OccupancyRate = percent(st.RentedLocals, st.TotalLocals)
	st.TotalRentDisplay = currency.FormatLang(in.Language, st.TotalRent, in.Currency)

	for _, t := range domain.ActivityTypes {
		st.Activities[domain.ActivityType(t)] = 0
	}
	for _, a := range in.Activities {
		st.Activities[a.Type]++
	}

	st.PerCenter = make([]CenterOccupancy, 0, len(in.Centers))
	for _, c := range in.Centers {
		st.PerCenter = append(st.PerCenter, CenterOccupancy{
			CenterID:        c.ID,
			Name:            c.Name,
			TotalLocals:     c.TotalLocals,
			AvailableLocals: c.AvailableLocals,
			OccupancyRate:   percent(c.TotalLocals-c.AvailableLocals, c.TotalLocals),
		})
	}

	recent := append([]domain.Local{}, in.Locals...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	st.RecentLocals = recent
	return st
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
