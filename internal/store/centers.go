package store

import (
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

type Centers = Store[domain.Center]

func NewCenters(client gateway.Client, opts ...Option) *Centers {
	return newStore(client, codec[domain.Center]{
		table:    "centers",
		query:    gateway.Query{OrderBy: "created_at", Desc: true},
		decode:   decodeCenter,
		encode:   encodeCenter,
		validate: domain.Center.Validate,
	}, opts...)
}

func decodeCenter(r gateway.Row) (domain.Center, error) {
	var (
		c   domain.Center
		err error
	)
	if c.ID, err = r.String("id", true); err != nil {
		return c, err
	}
	if c.Name, err = r.String("name", true); err != nil {
		return c, err
	}
	if c.Address, err = r.String("address", false); err != nil {
		return c, err
	}
	if c.Description, err = r.String("description", false); err != nil {
		return c, err
	}
	if c.TotalLocals, err = r.Int("total_locals"); err != nil {
		return c, err
	}
	if c.AvailableLocals, err = r.Int("available_locals"); err != nil {
		return c, err
	}
	c.CreatedAt, err = r.Time("created_at", true)
	return c, err
}

func encodeCenter(c domain.Center) gateway.Row {
	return gateway.Row{
		"name":             c.Name,
		"address":          c.Address,
		"description":      c.Description,
		"total_locals":     c.TotalLocals,
		"available_locals": c.AvailableLocals,
	}
}
