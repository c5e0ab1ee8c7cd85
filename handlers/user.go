package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/auth"
	"github.com/estudaplan/estudaplan-api/config"
	"github.com/estudaplan/estudaplan-api/middleware"
	"github.com/estudaplan/estudaplan-api/store"
)

// Login issues a local session cookie. Only available when no Auth0
// tenant is configured; production logins go through Auth0 directly.
func Login(w http.ResponseWriter, r *http.Request) {
	if config.Env.Auth0Domain != "" {
		writeError(w, http.StatusNotFound, "Local login is disabled")
		return
	}
	var req struct {
		Nickname string `json:"nickname" validate:"required"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Nickname is required")
		return
	}

	subject := "local|" + store.Slugify(req.Nickname)
	token, err := auth.CreateToken(subject, req.Nickname)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Domain:   config.Env.CookieDomain,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"nickname": req.Nickname})
}

// Me echoes the registry user behind the current session.
func Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
