package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/internal/store"
)

// Dashboard serves the overview. ?refresh=1 reloads all collections first.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	a := AppFrom(r.Context())
	if r.URL.Query().Get("refresh") == "1" {
		if err := a.Load(r.Context()); err != nil && !errors.Is(err, store.ErrSuperseded) {
			httpx.WriteError(w, r, err)
			return
		}
	}
	httpx.JSON(w, http.StatusOK, a.Dashboard())
}
