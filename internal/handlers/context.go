// Package handlers implements the JSON API over the per-user App.
package handlers

import (
	"context"
	"net/http"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/internal/app"
	"github.com/diewo77/indh-market/internal/domain"
)

type ctxKey struct{}

// WithApp resolves the signed-in user's App and stores it in the request
// context. It must run after auth.RequireAuth.
func WithApp(reg *app.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, ok := auth.UserIDFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, r, domain.ErrAuth)
				return
			}
			a, err := reg.Get(r.Context(), uid, auth.TokenFromContext(r.Context()))
			if err != nil {
				httpx.WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, a)))
		})
	}
}

// AppFrom returns the App stored by WithApp.
func AppFrom(ctx context.Context) *app.App {
	a, _ := ctx.Value(ctxKey{}).(*app.App)
	return a
}
