package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/blogem/audit-gateway/cache"
	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/repositories"
)

// RolesCacheKey is the facade key of the full role list.
const RolesCacheKey = "roles"

// DefaultRoleTTL is used when no role TTL is configured.
const DefaultRoleTTL = 10 * time.Minute

// RoleService interface defines role management business logic
type RoleService interface {
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	GetRoleByID(ctx context.Context, id int) (*models.Role, error)
	CreateRole(ctx context.Context, form *models.RoleForm) (*models.Role, error)
	UpdateRole(ctx context.Context, id int, form *models.RoleForm) (*models.Role, error)
	DeleteRole(ctx context.Context, id int) error
	GetPermissions(ctx context.Context, roleID int) ([]models.LinkPermission, error)
	AddPermission(ctx context.Context, roleID int, form *models.LinkPermissionForm) (*models.LinkPermission, error)
	RemovePermission(ctx context.Context, roleID, permissionID int) error
	// Warm seeds the role list into the cache unless a request got there first.
	Warm(ctx context.Context) error
}

// roleService implements RoleService interface
type roleService struct {
	roleRepo    repositories.RoleRepository
	cache       *cache.Facade
	permissions *cache.TTL[int, []models.LinkPermission]
	ttl         time.Duration
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repositories.RoleRepository, facade *cache.Facade, ttl time.Duration) RoleService {
	if ttl <= 0 {
		ttl = DefaultRoleTTL
	}
	return &roleService{
		roleRepo:    roleRepo,
		cache:       facade,
		permissions: cache.NewTTL[int, []models.LinkPermission](),
		ttl:         ttl,
	}
}

// GetAllRoles returns every role, served from the cache while it is warm.
// The returned slice is a copy and may be modified. Concurrent callers share
// one load, so it is not cancelled with the first caller's request.
func (s *roleService) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := cache.GetOrCreate(s.cache, RolesCacheKey, s.ttl, func() ([]models.Role, error) {
		return s.roleRepo.GetAll(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return slices.Clone(roles), nil
}

// GetRoleByID retrieves a role by ID
func (s *roleService) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid role ID: %d", ErrValidation, id)
	}
	return s.roleRepo.GetByID(ctx, id)
}

// CreateRole creates a new role with validation
func (s *roleService) CreateRole(ctx context.Context, form *models.RoleForm) (*models.Role, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, validationError(errs)
	}

	code := strings.TrimSpace(form.Code)
	if err := s.ensureCodeFree(ctx, code, 0); err != nil {
		return nil, err
	}

	role := &models.Role{
		Code:        code,
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Active:      form.Active,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.cache.Remove(RolesCacheKey)
	return role, nil
}

// UpdateRole updates an existing role with validation
func (s *roleService) UpdateRole(ctx context.Context, id int, form *models.RoleForm) (*models.Role, error) {
	role, err := s.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if errs := form.Validate(); errs.HasErrors() {
		return nil, validationError(errs)
	}

	code := strings.TrimSpace(form.Code)
	if err := s.ensureCodeFree(ctx, code, id); err != nil {
		return nil, err
	}

	role.Code = code
	role.Name = strings.TrimSpace(form.Name)
	role.Description = strings.TrimSpace(form.Description)
	role.Active = form.Active

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	s.cache.Remove(RolesCacheKey)
	return role, nil
}

// DeleteRole deletes a role together with its permission links
func (s *roleService) DeleteRole(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid role ID: %d", ErrValidation, id)
	}
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Remove(RolesCacheKey)
	s.permissions.Clear()
	return nil
}

// GetPermissions returns the permission links of a role. Lists are cached per
// role for the role TTL, counted from when they were loaded.
func (s *roleService) GetPermissions(ctx context.Context, roleID int) ([]models.LinkPermission, error) {
	if links, ok := s.permissions.Get(roleID); ok {
		return slices.Clone(links), nil
	}

	if _, err := s.GetRoleByID(ctx, roleID); err != nil {
		return nil, err
	}
	return s.reloadPermissions(ctx, roleID)
}

// AddPermission links a controller action to a role
func (s *roleService) AddPermission(ctx context.Context, roleID int, form *models.LinkPermissionForm) (*models.LinkPermission, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, validationError(errs)
	}
	if _, err := s.GetRoleByID(ctx, roleID); err != nil {
		return nil, err
	}

	link := &models.LinkPermission{
		RoleID:     roleID,
		Controller: strings.TrimSpace(form.Controller),
		Action:     strings.TrimSpace(form.Action),
	}
	if err := s.roleRepo.AddPermission(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to add permission: %w", err)
	}

	if _, err := s.reloadPermissions(ctx, roleID); err != nil {
		return nil, err
	}
	return link, nil
}

// RemovePermission unlinks a permission from a role
func (s *roleService) RemovePermission(ctx context.Context, roleID, permissionID int) error {
	if err := s.roleRepo.RemovePermission(ctx, roleID, permissionID); err != nil {
		return err
	}
	_, err := s.reloadPermissions(ctx, roleID)
	return err
}

func (s *roleService) Warm(ctx context.Context) error {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to warm role cache: %w", err)
	}
	s.cache.AddIfAbsent(RolesCacheKey, roles)
	return nil
}

func (s *roleService) reloadPermissions(ctx context.Context, roleID int) ([]models.LinkPermission, error) {
	links, err := s.roleRepo.ListPermissions(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}
	s.permissions.Store(roleID, links, s.ttl)
	return slices.Clone(links), nil
}

// ensureCodeFree fails when another role than exceptID already uses code.
func (s *roleService) ensureCodeFree(ctx context.Context, code string, exceptID int) error {
	existing, err := s.roleRepo.GetByCode(ctx, code)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check role code: %w", err)
	case existing.ID != exceptID:
		return fmt.Errorf("%w: role with code %s already exists", ErrValidation, code)
	}
	return nil
}

func validationError(errs models.ValidationErrors) error {
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs.GetMessages(), ", "))
}
