package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/audit-gateway/activity"
	"github.com/blogem/audit-gateway/userctx"
)

func TestEndpointsResolve(t *testing.T) {
	r := chi.NewRouter()
	endpoints := NewEndpoints()

	var got activity.Endpoint
	var matched bool
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			got, matched = endpoints.Resolve(req)
			next.ServeHTTP(w, req)
		})
	})

	noop := func(w http.ResponseWriter, r *http.Request) {}
	endpoints.Handle(r, http.MethodDelete, "/role/{id}/permissions/{permissionId}", "Role", "RemovePermission", noop)
	r.Group(func(r chi.Router) {
		endpoints.Handle(r, http.MethodPost, "/role", "Role", "Create", noop)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/role/4/permissions/11", nil))
	require.True(t, matched)
	assert.Equal(t, activity.Endpoint{
		Controller:  "Role",
		Action:      "RemovePermission",
		RouteValues: []string{"Role", "RemovePermission", "4", "11"},
	}, got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/role", nil))
	require.True(t, matched)
	assert.Equal(t, []string{"Role", "Create"}, got.RouteValues)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/role", nil))
	assert.False(t, matched)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/nowhere", nil))
	assert.False(t, matched)
}

func TestEndpointsResolveOutsideRouter(t *testing.T) {
	_, ok := NewEndpoints().Resolve(httptest.NewRequest(http.MethodPost, "/role", nil))
	assert.False(t, ok)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"192.0.2.1:1234", "192.0.2.1"},
		{"[::ffff:10.1.2.3]:80", "10.1.2.3"},
		{"[2001:db8::a0b:c0d]:443", "10.11.12.13"},
		{"[::1]:8080", "0.0.0.1"},
		{"203.0.113.7", "203.0.113.7"},
		{"not-an-ip", "not-an-ip"},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tt.remote
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = userctx.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/role", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid login or access token"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/role", nil)
	req = req.WithContext(userctx.WithIdentity(req.Context(), userctx.NewIdentity(1, nil)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func identityVia(h func(http.Handler) http.Handler, req *http.Request) userctx.IdentityContext {
	var id userctx.IdentityContext
	h(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = userctx.From(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)
	return id
}

func TestBearerIdentity(t *testing.T) {
	mw := BearerIdentity(BearerConfig{Secret: testSecret, Issuer: "pos-gateway"}, discard)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("valid token", func(t *testing.T) {
		token := signed(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
			"nameid":   "42",
			"userdata": `{"UserName":"cashier","IsAdmin":false}`,
			"iss":      "pos-gateway",
			"exp":      exp,
		})
		req := httptest.NewRequest(http.MethodPost, "/role", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		id := identityVia(mw, req)
		userID, ok := id.CurrentUserID()
		require.True(t, ok)
		assert.Equal(t, 42, userID)
		profile, ok := id.CurrentUserProfile()
		require.True(t, ok)
		assert.Equal(t, "cashier", profile.UserName)
		assert.Equal(t, 42, profile.ID)
	})

	t.Run("numeric claim", func(t *testing.T) {
		token := signed(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"nameid": 8, "iss": "pos-gateway", "exp": exp})
		req := httptest.NewRequest(http.MethodPost, "/role", nil)
		req.Header.Set("Authorization", "bearer "+token)

		userID, _ := identityVia(mw, req).CurrentUserID()
		assert.Equal(t, 8, userID)
	})

	rejected := map[string]string{
		"wrong secret": signed(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret!!"), jwt.MapClaims{"nameid": 1, "iss": "pos-gateway", "exp": exp}),
		"wrong issuer": signed(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"nameid": 1, "iss": "elsewhere", "exp": exp}),
		"expired":      signed(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"nameid": 1, "iss": "pos-gateway", "exp": time.Now().Add(-time.Hour).Unix()}),
		"wrong alg":    signed(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{"nameid": 1, "iss": "pos-gateway", "exp": exp}),
		"no expiry":    signed(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"nameid": 1, "iss": "pos-gateway"}),
		"not a jwt":    "garbage",
	}
	for name, token := range rejected {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/role", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			_, ok := identityVia(mw, req).CurrentUserID()
			assert.False(t, ok)
		})
	}

	t.Run("no header", func(t *testing.T) {
		_, ok := identityVia(mw, httptest.NewRequest(http.MethodPost, "/role", nil)).CurrentUserID()
		assert.False(t, ok)
	})

	t.Run("basic auth ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/role", nil)
		req.SetBasicAuth("u", "p")
		_, ok := identityVia(mw, req).CurrentUserID()
		assert.False(t, ok)
	})
}

func TestBearerIdentityAudience(t *testing.T) {
	mw := BearerIdentity(BearerConfig{Secret: testSecret, Audience: "pos-api"}, discard)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   bool
	}{
		{"matching audience", jwt.MapClaims{"nameid": 3, "aud": "pos-api", "exp": exp}, true},
		{"audience list", jwt.MapClaims{"nameid": 3, "aud": []string{"other", "pos-api"}, "exp": exp}, true},
		{"wrong audience", jwt.MapClaims{"nameid": 3, "aud": "other", "exp": exp}, false},
		{"missing audience", jwt.MapClaims{"nameid": 3, "exp": exp}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/role", nil)
			req.Header.Set("Authorization", "Bearer "+signed(t, jwt.SigningMethodHS256, testSecret, tt.claims))

			_, ok := identityVia(mw, req).CurrentUserID()
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSessionIdentity(t *testing.T) {
	sessioner, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "test_session",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessioner)
	r.Use(SessionIdentity)
	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		sess.Set(SessionUserIDKey, 12)
		sess.Set(SessionProfileKey, `{"UserName":"manager"}`)
	})

	var id userctx.IdentityContext
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		id = userctx.From(r.Context())
	})

	// Before login the caller is anonymous
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	_, ok := id.CurrentUserID()
	assert.False(t, ok)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)

	userID, ok := id.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, 12, userID)
	profile, ok := id.CurrentUserProfile()
	require.True(t, ok)
	assert.Equal(t, "manager", profile.UserName)
}
