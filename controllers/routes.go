package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/audit-gateway/authenticator"
	"github.com/blogem/audit-gateway/middleware"
)

// RegisterRoutes mounts the API on r. Protected routes are named in
// endpoints so the audit interceptor can resolve them; auth may be nil when
// interactive login is disabled.
func (c *Controllers) RegisterRoutes(r chi.Router, endpoints *middleware.Endpoints, auth authenticator.Provider) {
	r.Get("/health", c.Health.Check)
	if auth != nil {
		r.Get("/login", c.Auth.Login(auth))
		r.Get("/callback", c.Auth.Callback(auth))
		r.Post("/logout", c.Auth.Logout)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		endpoints.Handle(r, http.MethodGet, "/role", "Role", "List", c.Roles.List)
		endpoints.Handle(r, http.MethodPost, "/role", "Role", "Create", c.Roles.Create)
		endpoints.Handle(r, http.MethodGet, "/role/{id}", "Role", "Get", c.Roles.Get)
		endpoints.Handle(r, http.MethodPut, "/role/{id}", "Role", "Update", c.Roles.Update)
		endpoints.Handle(r, http.MethodDelete, "/role/{id}", "Role", "Delete", c.Roles.Delete)
		endpoints.Handle(r, http.MethodGet, "/role/{id}/permissions", "Role", "Permissions", c.Roles.Permissions)
		endpoints.Handle(r, http.MethodPost, "/role/{id}/permissions", "Role", "AddPermission", c.Roles.AddPermission)
		endpoints.Handle(r, http.MethodDelete, "/role/{id}/permissions/{permissionId}", "Role", "RemovePermission", c.Roles.RemovePermission)

		endpoints.Handle(r, http.MethodGet, "/log/activities", "Log", "Activities", c.Logs.Activities)
		endpoints.Handle(r, http.MethodGet, "/log/exceptions", "Log", "Exceptions", c.Logs.Exceptions)
	})
}
