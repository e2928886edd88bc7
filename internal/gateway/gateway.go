// Package gateway describes the hosted backend the entity stores talk to:
// per-table row operations plus an authentication client. Rows use the
// snake_case wire naming of the backend; mapping to domain types is the
// stores' job.
package gateway

import (
	"context"
	"time"
)

// Row is one wire record. Joined tables are nested under the joined table
// name, e.g. row["centers"] = Row{"name": "Centre A"}.
type Row map[string]any

// Join asks for Columns of Table, matched on ForeignKey of the base table.
type Join struct {
	Table      string
	ForeignKey string
	Columns    []string
}

// Query describes a select. An empty Columns list means every column.
type Query struct {
	Columns []string
	Joins   []Join
	OrderBy string
	Desc    bool
}

// Table is the per-entity resource contract.
type Table interface {
	Select(ctx context.Context, q Query) ([]Row, error)
	// Insert stores row and returns it as Select with q would see it,
	// including the generated id and created_at.
	Insert(ctx context.Context, row Row, q Query) (Row, error)
	Update(ctx context.Context, id string, row Row) error
	Delete(ctx context.Context, id string) error
}

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Session struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}

// Auth is the authentication contract. A client holds at most one session.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*Session, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, bool)
	// Restore adopts a previously issued access token.
	Restore(ctx context.Context, accessToken string) (*Session, error)
}

// Client is one authenticated view onto the backend.
type Client interface {
	From(table string) Table
	Auth() Auth
}
