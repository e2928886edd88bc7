package handlers

import (
	"net/http"
	"time"

	"github.com/diewo77/indh-market/auth"
	"github.com/diewo77/indh-market/httpx"
	"github.com/diewo77/indh-market/internal/app"
	"github.com/diewo77/indh-market/internal/gateway"
)

type AuthHandler struct {
	reg *app.Registry
}

func NewAuthHandler(reg *app.Registry) *AuthHandler {
	return &AuthHandler{reg: reg}
}

type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type sessionResponse struct {
	User        gateway.User `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	s, _, err := h.reg.SignUp(r.Context(), in.Email, in.Password, in.DisplayName)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	auth.CreateSession(w, s.AccessToken, s.ExpiresAt)
	httpx.JSON(w, http.StatusCreated, sessionResponse{User: s.User, AccessToken: s.AccessToken, ExpiresAt: s.ExpiresAt})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	s, _, err := h.reg.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	auth.CreateSession(w, s.AccessToken, s.ExpiresAt)
	httpx.JSON(w, http.StatusOK, sessionResponse{User: s.User, AccessToken: s.AccessToken, ExpiresAt: s.ExpiresAt})
}

// Logout always clears the cookie, signed in or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if uid, ok := auth.UserIDFromContext(r.Context()); ok {
		if err := h.reg.SignOut(r.Context(), uid); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
	}
	auth.ClearSession(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	a := AppFrom(r.Context())
	u, ok := a.Client.Auth().CurrentUser(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}
