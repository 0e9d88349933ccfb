package userctx

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Context key type
type contextKey string

const (
	identityKey  contextKey = "identity"
	requestIDKey contextKey = "request_id"
)

// Profile is the user profile serialized next to the identity claim.
type Profile struct {
	ID       int    `json:"Id"`
	UserName string `json:"UserName"`
	FullName string `json:"FullName,omitempty"`
	Email    string `json:"Email,omitempty"`
	IsAdmin  bool   `json:"IsAdmin,omitempty"`
}

// IdentityContext tells request-scoped code who is calling.
type IdentityContext interface {
	// CurrentUserID returns the numeric user id, false when unknown.
	CurrentUserID() (int, bool)
	// CurrentUserProfile returns the decoded profile, false when none was supplied.
	CurrentUserProfile() (*Profile, bool)
}

type identity struct {
	userID  int
	profile *Profile
}

func (i identity) CurrentUserID() (int, bool) {
	return i.userID, i.userID != 0
}

func (i identity) CurrentUserProfile() (*Profile, bool) {
	return i.profile, i.profile != nil
}

// NewIdentity builds an identity; a zero userID means unknown.
func NewIdentity(userID int, profile *Profile) IdentityContext {
	return identity{userID: userID, profile: profile}
}

// Anonymous is the identity of a request nobody authenticated.
func Anonymous() IdentityContext {
	return identity{}
}

// WithIdentity adds the caller identity to request context
func WithIdentity(ctx context.Context, id IdentityContext) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// From retrieves the caller identity, Anonymous when none was set
func From(ctx context.Context) IdentityContext {
	if id, ok := ctx.Value(identityKey).(IdentityContext); ok && id != nil {
		return id
	}
	return Anonymous()
}

// UserID retrieves the numeric user id from request context, 0 when unknown
func UserID(ctx context.Context) int {
	id, _ := From(ctx).CurrentUserID()
	return id
}

// ParseUserID converts an identity claim value to a user id. Values that are
// not positive integers yield 0.
func ParseUserID(v any) int {
	switch id := v.(type) {
	case int:
		return positive(id)
	case int64:
		return positive(int(id))
	case float64:
		if id == float64(int(id)) {
			return positive(int(id))
		}
	case json.Number:
		if n, err := id.Int64(); err == nil {
			return positive(int(n))
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(id)); err == nil {
			return positive(n)
		}
	}
	return 0
}

func positive(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ParseProfile decodes a serialized profile blob. An empty blob yields nil.
func ParseProfile(blob string) (*Profile, error) {
	if strings.TrimSpace(blob) == "" {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	return &p, nil
}

// WithRequestID adds the request correlation id to context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID retrieves the request correlation id, "" when none was set
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
