package controllers

import (
	"net/http"

	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/services"
)

// RoleController handles role administration requests
type RoleController struct {
	services *services.Services
}

// NewRoleController creates a new role controller
func NewRoleController(services *services.Services) *RoleController {
	return &RoleController{
		services: services,
	}
}

// List handles GET /role
func (c *RoleController) List(w http.ResponseWriter, r *http.Request) {
	roles, err := c.services.Roles.GetAllRoles(r.Context())
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

// Get handles GET /role/{id}
func (c *RoleController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	role, err := c.services.Roles.GetRoleByID(r.Context(), id)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

// Create handles POST /role
func (c *RoleController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.RoleForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	role, err := c.services.Roles.CreateRole(r.Context(), &form)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusCreated, role)
}

// Update handles PUT /role/{id}
func (c *RoleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	var form models.RoleForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	role, err := c.services.Roles.UpdateRole(r.Context(), id, &form)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, role)
}

// Delete handles DELETE /role/{id}
func (c *RoleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	if err := c.services.Roles.DeleteRole(r.Context(), id); err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Permissions handles GET /role/{id}/permissions
func (c *RoleController) Permissions(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	links, err := c.services.Roles.GetPermissions(r.Context(), id)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// AddPermission handles POST /role/{id}/permissions
func (c *RoleController) AddPermission(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	var form models.LinkPermissionForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	link, err := c.services.Roles.AddPermission(r.Context(), id, &form)
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// RemovePermission handles DELETE /role/{id}/permissions/{permissionId}
func (c *RoleController) RemovePermission(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	permissionID, err := urlParamID(r, "permissionId")
	if err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}

	if err := c.services.Roles.RemovePermission(r.Context(), id, permissionID); err != nil {
		respondError(w, r, c.services.Reporter, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
