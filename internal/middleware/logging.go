package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestObserver records request durations, e.g. into Prometheus.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Logging logs one line per request and reports it to obs when set. The
// route label is the chi pattern, so ids do not explode label cardinality.
func Logging(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			elapsed := time.Since(start)
			log.Printf("%s %s %d %s [%s]", r.Method, r.URL.Path, status, elapsed.Round(time.Microsecond), chimw.GetReqID(r.Context()))
			if obs != nil {
				obs.ObserveRequest(r.Method, route, status, elapsed)
			}
		})
	}
}
