package gormgw

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/gateway"
	"github.com/diewo77/indh-market/validation"
)

// Client is a gateway.Client bound to at most one session.
type Client struct {
	b       *Backend
	mu      sync.RWMutex
	session *gateway.Session
}

func (c *Client) From(name string) gateway.Table { return &table{c: c, name: name} }

func (c *Client) Auth() gateway.Auth { return (*authClient)(c) }

// current returns a copy of the session user, honoring token expiry. The
// nil check, expiry check and copy happen under one lock.
func (c *Client) current() (gateway.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return gateway.User{}, false
	}
	if !c.session.ExpiresAt.IsZero() && c.b.now().After(c.session.ExpiresAt) {
		return gateway.User{}, false
	}
	return c.session.User, true
}

func (c *Client) userID() (string, bool) {
	u, ok := c.current()
	return u.ID, ok
}

func (c *Client) setSession(s *gateway.Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

type authClient Client

func (a *authClient) client() *Client { return (*Client)(a) }

func (a *authClient) SignUp(ctx context.Context, email, password, displayName string) (*gateway.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	v := validation.Violations{}
	validation.Required("email", email, v)
	validation.Email("email", email, v)
	validation.MinLength("password", password, 6, v)
	if err := domain.NewValidationError(v); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := UserRow{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    a.b.now().UTC(),
	}
	db := a.b.db.WithContext(ctx)
	var count int64
	if err := db.Model(&UserRow{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, domain.Invalid("email", "already_registered", "email %s already registered", email)
	}
	if err := db.Create(&u).Error; err != nil {
		return nil, translate(err)
	}
	return a.open(u)
}

func (a *authClient) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u UserRow
	err := a.b.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, translate(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, invalidCredentials()
	}
	return a.open(u)
}

func (a *authClient) SignOut(context.Context) error {
	a.client().setSession(nil)
	return nil
}

func (a *authClient) CurrentUser(context.Context) (*gateway.User, bool) {
	u, ok := a.client().current()
	if !ok {
		return nil, false
	}
	return &u, true
}

func (a *authClient) Restore(ctx context.Context, accessToken string) (*gateway.Session, error) {
	claims, err := auth.ParseToken(accessToken)
	if err != nil {
		return nil, domain.ErrAuth
	}
	var u UserRow
	err = a.b.db.WithContext(ctx).Where("id = ?", claims.Subject).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAuth
	}
	if err != nil {
		return nil, translate(err)
	}
	s := &gateway.Session{
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        toUser(u),
	}
	a.client().setSession(s)
	return s, nil
}

func (a *authClient) open(u UserRow) (*gateway.Session, error) {
	token, exp, err := auth.IssueToken(u.ID, u.Email, u.DisplayName, a.b.tokenTTL)
	if err != nil {
		return nil, err
	}
	s := &gateway.Session{AccessToken: token, ExpiresAt: exp, User: toUser(u)}
	a.client().setSession(s)
	return s, nil
}

func toUser(u UserRow) gateway.User {
	return gateway.User{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName, CreatedAt: u.CreatedAt}
}

func invalidCredentials() error {
	return fmt.Errorf("%w: invalid login credentials", domain.ErrAuth)
}
