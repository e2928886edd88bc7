package app

import "github.com/diewo77/indh-market/internal/domain"

// Directory resolves display names from ids at render time, so a renamed
// center or owner shows its current name on every local that references it.
// Names stored on the records are kept as a fallback when the referenced
// entity is not loaded.
type Directory struct {
	centers    map[string]string
	owners     map[string]string
	activities map[string]string
	locals     map[string]string
}

func NewDirectory(centers []domain.Center, owners []domain.Owner, activities []domain.Activity, locals []domain.Local) *Directory {
	d := &Directory{
		centers:    make(map[string]string, len(centers)),
		owners:     make(map[string]string, len(owners)),
		activities: make(map[string]string, len(activities)),
		locals:     make(map[string]string, len(locals)),
	}
	for _, c := range centers {
		d.centers[c.ID] = c.Name
	}
	for _, o := range owners {
		d.owners[o.ID] = o.FullName()
	}
	for _, a := range activities {
		d.activities[a.ID] = a.Name
	}
	for _, l := range locals {
		d.locals[l.ID] = l.Number
	}
	return d
}

func lookup(m map[string]string, id, fallback string) string {
	if id == "" {
		return ""
	}
	if name, ok := m[id]; ok {
		return name
	}
	return fallback
}

func (d *Directory) ResolveLocal(l domain.Local) domain.Local {
	l.CenterName = lookup(d.centers, l.CenterID, l.CenterName)
	l.OwnerName = lookup(d.owners, l.OwnerID, l.OwnerName)
	l.ActivityName = lookup(d.activities, l.ActivityID, l.ActivityName)
	return l
}

func (d *Directory) ResolveLocals(ls []domain.Local) []domain.Local {
	out := make([]domain.Local, len(ls))
	for i, l := range ls {
		out[i] = d.ResolveLocal(l)
	}
	return out
}

func (d *Directory) ResolveActivity(a domain.Activity) domain.Activity {
	a.LocalNumber = lookup(d.locals, a.LocalID, a.LocalNumber)
	return a
}

func (d *Directory) ResolveActivities(as []domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(as))
	for i, a := range as {
		out[i] = d.ResolveActivity(a)
	}
	return out
}
