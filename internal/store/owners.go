package store

import (
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

type Owners = Store[domain.Owner]

func NewOwners(client gateway.Client, opts ...Option) *Owners {
	return newStore(client, codec[domain.Owner]{
		table:    "owners",
		query:    gateway.Query{OrderBy: "created_at", Desc: true},
		decode:   decodeOwner,
		encode:   encodeOwner,
		validate: domain.Owner.Validate,
	}, opts...)
}

func decodeOwner(r gateway.Row) (domain.Owner, error) {
	var (
		o   domain.Owner
		err error
	)
	if o.ID, err = r.String("id", true); err != nil {
		return o, err
	}
	if o.FirstName, err = r.String("first_name", true); err != nil {
		return o, err
	}
	if o.LastName, err = r.String("last_name", false); err != nil {
		return o, err
	}
	if o.Email, err = r.String("email", false); err != nil {
		return o, err
	}
	if o.Phone, err = r.String("phone", false); err != nil {
		return o, err
	}
	if o.Address, err = r.String("address", false); err != nil {
		return o, err
	}
	if o.LocalsCount, err = r.Int("locals_count"); err != nil {
		return o, err
	}
	o.CreatedAt, err = r.Time("created_at", true)
	return o, err
}

// encodeOwner leaves locals_count out: the database maintains it.
func encodeOwner(o domain.Owner) gateway.Row {
	return gateway.Row{
		"first_name": o.FirstName,
		"last_name":  o.LastName,
		"email":      o.Email,
		"phone":      o.Phone,
		"address":    o.Address,
	}
}
