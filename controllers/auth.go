package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/audit-gateway/authenticator"
	"github.com/blogem/audit-gateway/middleware"
)

const (
	sessionStateKey    = "state"
	sessionRedirectKey = "redirect_after_login"
)

// AuthController handles the interactive OpenID Connect login
type AuthController struct {
	userIDClaim string
}

// NewAuthController creates a new auth controller reading the numeric user id
// from userIDClaim.
func NewAuthController(userIDClaim string) *AuthController {
	if userIDClaim == "" {
		userIDClaim = middleware.DefaultUserIDClaim
	}
	return &AuthController{userIDClaim: userIDClaim}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := generateRandomState()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set(sessionStateKey, state)
		if next := r.URL.Query().Get("redirect"); isLocalPath(next) {
			sess.Set(sessionRedirectKey, next)
		}

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		storedState, _ := sess.Get(sessionStateKey).(string)
		if storedState == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "State not found in session"})
			return
		}
		if r.URL.Query().Get("state") != storedState {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid state parameter"})
			return
		}
		sess.Delete(sessionStateKey)

		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Failed to exchange authorization code: " + err.Error()})
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Failed to verify ID token: " + err.Error()})
			return
		}

		userID := claims.UserID(ac.userIDClaim)
		if userID == 0 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid login or access token"})
			return
		}

		profile, err := json.Marshal(claims.Profile(userID))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		sess.Set(middleware.SessionUserIDKey, userID)
		sess.Set(middleware.SessionProfileKey, string(profile))

		target := "/"
		if next, ok := sess.Get(sessionRedirectKey).(string); ok && isLocalPath(next) {
			target = next
			sess.Delete(sessionRedirectKey)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

// Logout ends the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionUserIDKey)
	sess.Delete(middleware.SessionProfileKey)
	w.WriteHeader(http.StatusNoContent)
}

// isLocalPath accepts only same-origin absolute paths as redirect targets
func isLocalPath(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || (p[1] != '/' && p[1] != '\\'))
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
