// Package server assembles the HTTP router.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/internal/app"
	"github.com/diewo77/indh-market/internal/handlers"
	"github.com/diewo77/indh-market/internal/metrics"
	"github.com/diewo77/indh-market/internal/middleware"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db Pinger, reg *app.Registry, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, middleware.Logging(m), chimw.Recoverer)
	r.Use(middleware.Prefs, auth.Middleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})

	// --- Health endpoints ---
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	ah := handlers.NewAuthHandler(reg)
	r.Route("/api", func(r chi.Router) {
		r.Get("/currency/convert", handlers.ConvertCurrency)
		r.Post("/auth/signup", ah.Signup)
		r.Post("/auth/login", ah.Login)
		r.Post("/auth/logout", ah.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth, handlers.WithApp(reg))
			r.Get("/auth/me", ah.Me)
			r.Route("/centers", handlers.CentersResource().Routes)
			r.Route("/locals", handlers.LocalsResource().Routes)
			r.Route("/owners", handlers.OwnersResource().Routes)
			r.Route("/activities", handlers.ActivitiesResource().Routes)
			r.Get("/dashboard", handlers.Dashboard)
			r.Get("/settings", handlers.GetSettings)
			r.Patch("/settings", handlers.PatchSettings)
		})
	})
	return r
}
