package store

import (
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

type Activities = Store[domain.Activity]

func NewActivities(client gateway.Client, opts ...Option) *Activities {
	return newStore(client, codec[domain.Activity]{
		table: "activities",
		query: gateway.Query{
			Joins:   []gateway.Join{{Table: "locals", ForeignKey: "local_id", Columns: []string{"number"}}},
			OrderBy: "created_at",
			Desc:    true,
		},
		decode:   decodeActivity,
		encode:   encodeActivity,
		validate: domain.Activity.Validate,
	}, opts...)
}

func decodeActivity(r gateway.Row) (domain.Activity, error) {
	var (
		a   domain.Activity
		err error
		typ string
	)
	if a.ID, err = r.String("id", true); err != nil {
		return a, err
	}
	if a.Name, err = r.String("name", true); err != nil {
		return a, err
	}
	if typ, err = r.String("type", true); err != nil {
		return a, err
	}
	a.Type = domain.ActivityType(typ)
	if err := (domain.Activity{Name: a.Name, Type: a.Type}).Validate(); err != nil {
		return a, err
	}
	if a.Description, err = r.String("description", false); err != nil {
		return a, err
	}
	if a.LocalID, err = r.String("local_id", false); err != nil {
		return a, err
	}
	if a.CreatedAt, err = r.Time("created_at", true); err != nil {
		return a, err
	}
	local, err := r.Nested("locals")
	if err != nil {
		return a, err
	}
	if local != nil {
		if a.LocalNumber, err = local.String("number", false); err != nil {
			return a, err
		}
	}
	return a, nil
}

func encodeActivity(a domain.Activity) gateway.Row {
	return gateway.Row{
		"name":        a.Name,
		"type":        string(a.Type),
		"description": a.Description,
		"local_id":    optionalID(a.LocalID),
	}
}
