package store

import (
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

type Locals = Store[domain.Local]

func NewLocals(client gateway.Client, opts ...Option) *Locals {
	return newStore(client, codec[domain.Local]{
		table: "locals",
		query: gateway.Query{
			Joins: []gateway.Join{
				{Table: "centers", ForeignKey: "center_id", Columns: []string{"name"}},
				{Table: "owners", ForeignKey: "owner_id", Columns: []string{"first_name", "last_name"}},
				{Table: "activities", ForeignKey: "activity_id", Columns: []string{"name"}},
			},
			OrderBy: "created_at",
			Desc:    true,
		},
		decode:   decodeLocal,
		encode:   encodeLocal,
		validate: domain.Local.Validate,
	}, opts...)
}

func decodeLocal(r gateway.Row) (domain.Local, error) {
	var (
		l      domain.Local
		err    error
		status string
	)
	if l.ID, err = r.String("id", true); err != nil {
		return l, err
	}
	if l.Number, err = r.String("number", true); err != nil {
		return l, err
	}
	if l.Size, err = r.Float("size"); err != nil {
		return l, err
	}
	if status, err = r.String("status", true); err != nil {
		return l, err
	}
	l.Status = domain.LocalStatus(status)
	if l.Status != domain.LocalAvailable && l.Status != domain.LocalRented {
		return l, domain.Invalid("status", "invalid_choice", "unknown local status %q", status)
	}
	if l.MonthlyRent, err = r.Float("monthly_rent"); err != nil {
		return l, err
	}
	if l.CenterID, err = r.String("center_id", true); err != nil {
		return l, err
	}
	if l.OwnerID, err = r.String("owner_id", false); err != nil {
		return l, err
	}
	if l.ActivityID, err = r.String("activity_id", false); err != nil {
		return l, err
	}
	if l.CreatedAt, err = r.Time("created_at", true); err != nil {
		return l, err
	}

	center, err := r.Nested("centers")
	if err != nil {
		return l, err
	}
	if center != nil {
		if l.CenterName, err = center.String("name", false); err != nil {
			return l, err
		}
	}
	owner, err := r.Nested("owners")
	if err != nil {
		return l, err
	}
	if owner != nil {
		first, err := owner.String("first_name", false)
		if err != nil {
			return l, err
		}
		last, err := owner.String("last_name", false)
		if err != nil {
			return l, err
		}
		l.OwnerName = domain.JoinName(first, last)
	}
	activity, err := r.Nested("activities")
	if err != nil {
		return l, err
	}
	if activity != nil {
		if l.ActivityName, err = activity.String("name", false); err != nil {
			return l, err
		}
	}
	return l, nil
}

// encodeLocal sends references only; display names come back through joins.
func encodeLocal(l domain.Local) gateway.Row {
	return gateway.Row{
		"number":       l.Number,
		"size":         l.Size,
		"status":       string(l.Status),
		"monthly_rent": l.MonthlyRent,
		"center_id":    l.CenterID,
		"owner_id":     optionalID(l.OwnerID),
		"activity_id":  optionalID(l.ActivityID),
	}
}

// optionalID maps "" to a SQL NULL.
func optionalID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
