package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/audit-gateway/activity"
)

// EndpointResolver looks up the handler metadata of the route a request
// matches.
type EndpointResolver interface {
	Resolve(r *http.Request) (activity.Endpoint, bool)
}

type endpointMeta struct {
	controller string
	action     string
}

// Endpoints records controller and action names for chi routes. Patterns are
// looked up as the root router reports them, so routes must be registered
// with their full pattern (flat or inside r.Group, not under r.Route).
type Endpoints struct {
	mu     sync.RWMutex
	routes map[string]endpointMeta
}

// NewEndpoints creates an empty endpoint table
func NewEndpoints() *Endpoints {
	return &Endpoints{routes: make(map[string]endpointMeta)}
}

func endpointKey(method, pattern string) string {
	return strings.ToUpper(method) + " " + pattern
}

// Handle registers h on router and names it controller/action.
func (e *Endpoints) Handle(router chi.Router, method, pattern, controller, action string, h http.HandlerFunc) {
	e.mu.Lock()
	e.routes[endpointKey(method, pattern)] = endpointMeta{controller: controller, action: action}
	e.mu.Unlock()

	router.Method(method, pattern, h)
}

// Resolve matches r against the router serving it. It works before chi has
// routed the request, so it can run in router-level middleware. Route values
// are the controller, the action, then the URL parameters in pattern order.
func (e *Endpoints) Resolve(r *http.Request) (activity.Endpoint, bool) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return activity.Endpoint{}, false
	}

	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}

	tctx := chi.NewRouteContext()
	pattern := rctx.Routes.Find(tctx, r.Method, path)
	if pattern == "" {
		return activity.Endpoint{}, false
	}

	e.mu.RLock()
	meta, ok := e.routes[endpointKey(r.Method, pattern)]
	e.mu.RUnlock()
	if !ok {
		return activity.Endpoint{}, false
	}

	values := make([]string, 0, 2+len(tctx.URLParams.Values))
	values = append(values, meta.controller, meta.action)
	values = append(values, tctx.URLParams.Values...)

	return activity.Endpoint{
		Controller:  meta.controller,
		Action:      meta.action,
		RouteValues: values,
	}, true
}
