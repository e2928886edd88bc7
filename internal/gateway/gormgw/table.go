package gormgw

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/diewo77/indh-market/gate"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
)

// joined column aliases look like "<table>__<column>".
const aliasSep = "__"

type table struct {
	c    *Client
	name string
}

func (t *table) check(q gateway.Query) error {
	if !t.c.b.tables[t.name] {
		return domain.Invalid("table", "invalid_choice", "unknown table %q", t.name)
	}
	for _, col := range q.Columns {
		if err := checkIdent("column", col); err != nil {
			return err
		}
	}
	for _, j := range q.Joins {
		if !t.c.b.tables[j.Table] {
			return domain.Invalid("join", "invalid_choice", "unknown table %q", j.Table)
		}
		if err := checkIdent("column", j.ForeignKey); err != nil {
			return err
		}
		for _, col := range j.Columns {
			if err := checkIdent("column", col); err != nil {
				return err
			}
		}
	}
	if q.OrderBy != "" {
		return checkIdent("column", q.OrderBy)
	}
	return nil
}

func (t *table) Select(ctx context.Context, q gateway.Query) ([]gateway.Row, error) {
	if err := t.check(q); err != nil {
		return nil, err
	}
	uid, ok := t.c.userID()
	if !ok {
		// Anonymous clients see nothing, like row-level security would.
		return []gateway.Row{}, nil
	}
	if err := t.c.b.gate.Authorize(ctx, uid, gate.ActionSelect, t.name, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	return t.selectWhere(ctx, q, uid, "")
}

func (t *table) selectWhere(ctx context.Context, q gateway.Query, uid, id string) ([]gateway.Row, error) {
	tx := t.c.b.db.WithContext(ctx).Table(t.name).Select(t.selectList(q))
	for _, j := range q.Joins {
		tx = tx.Joins(fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s", j.Table, j.Table, t.name, j.ForeignKey))
	}
	tx = tx.Where(t.name+".user_id = ?", uid)
	if id != "" {
		tx = tx.Where(t.name+".id = ?", id)
	}
	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: t.name, Name: q.OrderBy}, Desc: q.Desc})
	}
	var flat []map[string]any
	if err := tx.Find(&flat).Error; err != nil {
		return nil, translate(err)
	}
	rows := make([]gateway.Row, 0, len(flat))
	for _, f := range flat {
		rows = append(rows, nest(f, q.Joins))
	}
	return rows, nil
}

func (t *table) selectList(q gateway.Query) string {
	var cols []string
	if len(q.Columns) == 0 {
		cols = append(cols, t.name+".*")
	}
	for _, c := range q.Columns {
		cols = append(cols, t.name+"."+c)
	}
	for _, j := range q.Joins {
		for _, c := range j.Columns {
			cols = append(cols, fmt.Sprintf("%s.%s AS %s%s%s", j.Table, c, j.Table, aliasSep, c))
		}
	}
	return strings.Join(cols, ", ")
}

// nest folds aliased join columns back under their table name. A join that
// matched nothing yields a nil sub-row.
func nest(flat map[string]any, joins []gateway.Join) gateway.Row {
	row := gateway.Row{}
	sub := map[string]gateway.Row{}
	for k, v := range flat {
		if tbl, col, ok := strings.Cut(k, aliasSep); ok {
			if sub[tbl] == nil {
				sub[tbl] = gateway.Row{}
			}
			sub[tbl][col] = v
			continue
		}
		row[k] = v
	}
	for _, j := range joins {
		r := sub[j.Table]
		matched := false
		for _, v := range r {
			if v != nil {
				matched = true
				break
			}
		}
		if matched {
			row[j.Table] = r
		} else {
			row[j.Table] = nil
		}
	}
	return row
}

func (t *table) Insert(ctx context.Context, row gateway.Row, q gateway.Query) (gateway.Row, error) {
	if err := t.check(q); err != nil {
		return nil, err
	}
	uid, ok := t.c.userID()
	if !ok {
		return nil, domain.ErrAuth
	}
	if err := t.c.b.gate.Authorize(ctx, uid, gate.ActionInsert, t.name, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	rec := map[string]any{}
	for k, v := range row {
		if err := checkIdent("column", k); err != nil {
			return nil, err
		}
		rec[k] = v
	}
	id := uuid.NewString()
	rec["id"] = id
	rec["user_id"] = uid
	rec["created_at"] = t.c.b.now().UTC()
	if err := t.c.b.db.WithContext(ctx).Table(t.name).Create(rec).Error; err != nil {
		return nil, translate(err)
	}
	if err := t.recount(ctx, uid); err != nil {
		return nil, err
	}
	rows, err := t.selectWhere(ctx, q, uid, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NotFound(t.name, id)
	}
	return rows[0], nil
}

// owner returns the user_id of row id, or ErrNotFound.
func (t *table) owner(ctx context.Context, id string) (string, error) {
	var owners []string
	err := t.c.b.db.WithContext(ctx).Table(t.name).Where("id = ?", id).Limit(1).Pluck("user_id", &owners).Error
	if err != nil {
		return "", translate(err)
	}
	if len(owners) == 0 {
		return "", domain.NotFound(t.name, id)
	}
	return owners[0], nil
}

func (t *table) Update(ctx context.Context, id string, row gateway.Row) error {
	if err := t.check(gateway.Query{}); err != nil {
		return err
	}
	uid, ok := t.c.userID()
	if !ok {
		return domain.ErrAuth
	}
	ownerID, err := t.owner(ctx, id)
	if err != nil {
		return err
	}
	if t.c.b.gate.Authorize(ctx, uid, gate.ActionUpdate, t.name, owned(ownerID)) != nil {
		// Rows of other users are invisible rather than forbidden.
		return domain.NotFound(t.name, id)
	}
	rec := map[string]any{}
	for k, v := range row {
		switch k {
		case "id", "user_id", "created_at":
			continue
		}
		if err := checkIdent("column", k); err != nil {
			return err
		}
		rec[k] = v
	}
	if len(rec) == 0 {
		return nil
	}
	res := t.c.b.db.WithContext(ctx).Table(t.name).Where("id = ? AND user_id = ?", id, uid).Updates(rec)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(t.name, id)
	}
	return t.recount(ctx, uid)
}

// Delete of an unknown or foreign id succeeds without effect.
func (t *table) Delete(ctx context.Context, id string) error {
	if err := t.check(gateway.Query{}); err != nil {
		return err
	}
	uid, ok := t.c.userID()
	if !ok {
		return domain.ErrAuth
	}
	ownerID, err := t.owner(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if t.c.b.gate.Authorize(ctx, uid, gate.ActionDelete, t.name, owned(ownerID)) != nil {
		return nil
	}
	err = t.c.b.db.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ? AND user_id = ?", t.name), id, uid).Error
	if err != nil {
		return translate(err)
	}
	return t.recount(ctx, uid)
}

// derivedCounts lists, per table, the statements that refresh counter
// columns depending on it. Each statement takes the acting user_id.
var derivedCounts = map[string][]string{
	"locals": {
		`UPDATE owners SET locals_count = (SELECT COUNT(*) FROM locals WHERE locals.owner_id = owners.id AND locals.user_id = owners.user_id) WHERE user_id = ?`,
	},
}

// recount refreshes the counters derived from t after a write by uid.
func (t *table) recount(ctx context.Context, uid string) error {
	for _, stmt := range derivedCounts[t.name] {
		if err := t.c.b.db.WithContext(ctx).Exec(stmt, uid).Error; err != nil {
			return translate(err)
		}
	}
	return nil
}
