package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/audit-gateway/userctx"
)

// Session keys written at login and read by SessionIdentity.
const (
	SessionUserIDKey  = "user_id"
	SessionProfileKey = "user_profile"
)

// SessionIdentity loads the caller identity from the session. It must run
// after the session middleware. Requests without a logged-in session get the
// anonymous identity.
func SessionIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID := userctx.ParseUserID(sess.Get(SessionUserIDKey))

		var profile *userctx.Profile
		if blob, ok := sess.Get(SessionProfileKey).(string); ok {
			// A corrupt profile does not invalidate the identity.
			profile, _ = userctx.ParseProfile(blob)
		}

		ctx := userctx.WithIdentity(r.Context(), userctx.NewIdentity(userID, profile))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without a known user with a 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.UserID(r.Context()) == 0 {
			writeError(w, http.StatusUnauthorized, "Invalid login or access token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
