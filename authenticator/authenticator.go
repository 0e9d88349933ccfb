package authenticator

import (
	"context"
	"encoding/json"

	"github.com/blogem/audit-gateway/userctx"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// ProfileClaim carries the serialized user profile when the issuer provides one.
const ProfileClaim = "userdata"

// UserID reads the numeric user id from claim; 0 when absent or not numeric.
func (c Claims) UserID(claim string) int {
	return userctx.ParseUserID(c[claim])
}

// Profile decodes the profile claim, falling back to the standard OIDC
// name and email claims. The returned profile carries userID.
func (c Claims) Profile(userID int) *userctx.Profile {
	if p := c.embeddedProfile(); p != nil {
		p.ID = userID
		return p
	}

	p := &userctx.Profile{
		ID:       userID,
		UserName: c.firstString("preferred_username", "nickname", "email", "sub"),
		FullName: c.firstString("name"),
		Email:    c.firstString("email"),
	}
	return p
}

func (c Claims) embeddedProfile() *userctx.Profile {
	switch v := c[ProfileClaim].(type) {
	case string:
		p, err := userctx.ParseProfile(v)
		if err != nil {
			return nil
		}
		return p
	case map[string]interface{}:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		p, err := userctx.ParseProfile(string(raw))
		if err != nil {
			return nil
		}
		return p
	}
	return nil
}

func (c Claims) firstString(keys ...string) string {
	for _, k := range keys {
		if s, ok := c[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
