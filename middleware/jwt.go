package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blogem/audit-gateway/authenticator"
	"github.com/blogem/audit-gateway/userctx"
)

// DefaultUserIDClaim is the claim holding the numeric user id.
const DefaultUserIDClaim = "nameid"

// BearerConfig configures HS256 bearer token validation. Issuer and Audience
// are checked only when set.
type BearerConfig struct {
	Secret      []byte
	Issuer      string
	Audience    string
	UserIDClaim string
}

// BearerIdentity reads the caller identity from an HS256 bearer token. A
// missing or invalid token leaves the request anonymous; RequireAuth decides
// whether that is acceptable.
func BearerIdentity(cfg BearerConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	claim := cfg.UserIDClaim
	if claim == "" {
		claim = DefaultUserIDClaim
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)
	keyFunc := func(*jwt.Token) (interface{}, error) { return cfg.Secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.MapClaims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				logger.DebugContext(r.Context(), "rejected bearer token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			userID := userctx.ParseUserID(claims[claim])
			var profile *userctx.Profile
			if userID != 0 {
				profile = authenticator.Claims(claims).Profile(userID)
			}

			ctx := userctx.WithIdentity(r.Context(), userctx.NewIdentity(userID, profile))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
