package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/internal/app"
	"github.com/diewo77/indh-market/internal/domain"
	"github.com/diewo77/indh-market/internal/store"
)

// Resource serves one entity collection of the signed-in user's App.
type Resource[T domain.Entity] struct {
	store   func(*app.App) *store.Store[T]
	present func(*app.Directory, T) T
}

func NewResource[T domain.Entity](pick func(*app.App) *store.Store[T], present func(*app.Directory, T) T) *Resource[T] {
	if present == nil {
		present = func(_ *app.Directory, v T) T { return v }
	}
	return &Resource[T]{store: pick, present: present}
}

func CentersResource() *Resource[domain.Center] {
	return NewResource(func(a *app.App) *store.Store[domain.Center] { return a.Centers }, nil)
}

func OwnersResource() *Resource[domain.Owner] {
	return NewResource(func(a *app.App) *store.Store[domain.Owner] { return a.Owners }, nil)
}

func LocalsResource() *Resource[domain.Local] {
	return NewResource(func(a *app.App) *store.Store[domain.Local] { return a.Locals }, (*app.Directory).ResolveLocal)
}

func ActivitiesResource() *Resource[domain.Activity] {
	return NewResource(func(a *app.App) *store.Store[domain.Activity] { return a.Activities }, (*app.Directory).ResolveActivity)
}

// Routes mounts list/create, update/delete by id and the selection.
func (h *Resource[T]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/selected", h.Select)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns the collection state. ?refresh=1 refetches from the gateway
// first; a failed refetch is reported in status and the previous items are
// still served.
func (h *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	a := AppFrom(r.Context())
	st := h.store(a)
	if r.URL.Query().Get("refresh") == "1" {
		if err := st.FetchAll(r.Context()); errors.Is(err, domain.ErrAuth) {
			httpx.WriteError(w, r, err)
			return
		}
	}
	snap := st.Snapshot()
	dir := a.Directory()
	for i, it := range snap.Items {
		snap.Items[i] = h.present(dir, it)
	}
	if snap.Selected != nil {
		v := h.present(dir, *snap.Selected)
		snap.Selected = &v
	}
	httpx.JSON(w, http.StatusOK, snap)
}

func (h *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	var in T
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a := AppFrom(r.Context())
	created, err := h.store(a).Add(r.Context(), in)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, h.present(a.Directory(), created))
}

// Update replaces the entity named by the path id with the body.
func (h *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	item, err := decodeWithID[T](r, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	a := AppFrom(r.Context())
	st := h.store(a)
	if err := st.Update(r.Context(), item); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if got, ok := st.Find(item.EntityID()); ok {
		item = got
	}
	httpx.JSON(w, http.StatusOK, h.present(a.Directory(), item))
}

func (h *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store(AppFrom(r.Context())).Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type selection struct {
	ID string `json:"id"`
}

// Select marks a loaded entity as selected. An empty body or id clears it.
func (h *Resource[T]) Select(w http.ResponseWriter, r *http.Request) {
	var in selection
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
	}
	st := h.store(AppFrom(r.Context()))
	if in.ID == "" {
		st.SetSelected(nil)
		httpx.JSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	item, ok := st.Find(in.ID)
	if !ok {
		httpx.WriteError(w, r, domain.NotFound(st.Name(), in.ID))
		return
	}
	st.SetSelected(&item)
	httpx.JSON(w, http.StatusOK, map[string]any{"selected": item})
}

// decodeWithID decodes the body into T with the path id forced in. A body
// carrying a different id is rejected.
func decodeWithID[T any](r *http.Request, id string) (T, error) {
	var item T
	var raw map[string]json.RawMessage
	if err := httpx.DecodeJSON(r, &raw); err != nil {
		return item, err
	}
	if raw == nil {
		raw = map[string]json.RawMessage{}
	}
	if v, ok := raw["id"]; ok {
		var bodyID string
		if err := json.Unmarshal(v, &bodyID); err != nil || (bodyID != "" && bodyID != id) {
			return item, domain.Invalid("id", "id_mismatch", "body id does not match path id %s", id)
		}
	}
	raw["id"], _ = json.Marshal(id)
	b, err := json.Marshal(raw)
	if err != nil {
		return item, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return item, domain.Invalid("body", "invalid_json", "invalid JSON body: %v", err)
	}
	return item, nil
}
