// Package activity decides which requests are audit-worthy and what they
// acted on.
package activity

import (
	"net/http"
	"strings"
)

// DefaultIgnorePaths lists path fragments that are never audited. Matching is
// a case-sensitive substring test against the raw request path.
var DefaultIgnorePaths = []string{"/lookup", "/utility", "/log", "/upload", "/import", "/export", "/notifyhub"}

// routeValueObjectIndex is the position of the object id among route values.
const routeValueObjectIndex = 2

// Endpoint is the handler metadata of a matched route. RouteValues are
// ordered controller, action, then the URL parameters in pattern order.
type Endpoint struct {
	Controller  string
	Action      string
	RouteValues []string
}

// Activity is what an audited request did.
type Activity struct {
	Controller string
	Action     string
	ObjectID   string
}

// Resolver applies the audit eligibility rules and extracts activities.
type Resolver struct {
	ignore []string
}

// NewResolver creates a resolver skipping paths containing any of ignore.
// A nil slice selects DefaultIgnorePaths.
func NewResolver(ignore []string) *Resolver {
	if ignore == nil {
		ignore = DefaultIgnorePaths
	}
	return &Resolver{ignore: append([]string(nil), ignore...)}
}

// Eligible reports whether a request should produce an activity record: it
// matched a known endpoint, the user is known, it is not a GET, and its path
// avoids every ignored fragment.
func (r *Resolver) Eligible(method, path string, userID int, matched bool) bool {
	if !matched || userID == 0 {
		return false
	}
	if strings.EqualFold(method, http.MethodGet) {
		return false
	}
	for _, fragment := range r.ignore {
		if strings.Contains(path, fragment) {
			return false
		}
	}
	return true
}

// Resolve builds the activity for an eligible request from its endpoint and
// buffered body.
func (r *Resolver) Resolve(ep Endpoint, body string) Activity {
	return Activity{
		Controller: ep.Controller,
		Action:     ep.Action,
		ObjectID:   ObjectID(ep.RouteValues, body),
	}
}

// ObjectID prefers the third route value verbatim; otherwise it looks for an
// Id in the JSON body. Bodies that are empty or not JSON yield "".
func ObjectID(routeValues []string, body string) string {
	if len(routeValues) > routeValueObjectIndex {
		return routeValues[routeValueObjectIndex]
	}
	if body == "" {
		return ""
	}
	return Parse(body).ObjectID()
}
