package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/audit-gateway/models"
	"github.com/blogem/audit-gateway/userctx"
)

// RoleRepository interface defines role and permission database operations
type RoleRepository interface {
	GetAll(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, id int) (*models.Role, error)
	GetByCode(ctx context.Context, code string) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id int) error
	ListPermissions(ctx context.Context, roleID int) ([]models.LinkPermission, error)
	AddPermission(ctx context.Context, link *models.LinkPermission) error
	RemovePermission(ctx context.Context, roleID, permissionID int) error
	CountPermissions(ctx context.Context, roleID int) (int, error)
}

// roleRepository implements RoleRepository interface
type roleRepository struct {
	db dbtx
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db dbtx) RoleRepository {
	return &roleRepository{db: db}
}

const roleColumns = `id, code, name, description, active, created_at, created_by, modified_by, modified_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRole(row rowScanner) (models.Role, error) {
	var role models.Role
	var modifiedAt sql.NullTime

	err := row.Scan(
		&role.ID,
		&role.Code,
		&role.Name,
		&role.Description,
		&role.Active,
		&role.CreatedAt,
		&role.CreatedBy,
		&role.ModifiedBy,
		&modifiedAt,
	)
	if err != nil {
		return role, err
	}

	if modifiedAt.Valid {
		role.ModifiedAt = &modifiedAt.Time
	}
	return role, nil
}

// GetAll retrieves all roles ordered by code
func (r *roleRepository) GetAll(ctx context.Context) ([]models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY code ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roles: %w", err)
	}

	return roles, nil
}

// GetByID retrieves a role by ID
func (r *roleRepository) GetByID(ctx context.Context, id int) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = ?`

	role, err := scanRole(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("role with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

// GetByCode retrieves a role by its unique code
func (r *roleRepository) GetByCode(ctx context.Context, code string) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE code = ?`

	role, err := scanRole(r.db.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("role with code %q: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

// Create creates a new role, recording the current user as creator
func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (code, name, description, active, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now().UTC()
	}
	userID := userctx.UserID(ctx)

	result, err := r.db.ExecContext(ctx, query,
		role.Code,
		role.Name,
		role.Description,
		role.Active,
		role.CreatedAt,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	role.ID = int(id)
	role.CreatedBy = userID
	return nil
}

// Update updates an existing role
func (r *roleRepository) Update(ctx context.Context, role *models.Role) error {
	query := `
		UPDATE roles
		SET code = ?, name = ?, description = ?, active = ?,
		    modified_by = ?, modified_at = ?
		WHERE id = ?
	`

	userID := userctx.UserID(ctx)
	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		role.Code,
		role.Name,
		role.Description,
		role.Active,
		userID,
		now,
		role.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("role with ID %d: %w", role.ID, ErrNotFound)
	}

	role.ModifiedBy = userID
	role.ModifiedAt = &now
	return nil
}

// Delete deletes a role and, through the foreign key, its permission links
func (r *roleRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("role with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

// ListPermissions returns the permission links of a role
func (r *roleRepository) ListPermissions(ctx context.Context, roleID int) ([]models.LinkPermission, error) {
	query := `
		SELECT id, role_id, controller, action, created_at, created_by
		FROM link_permissions
		WHERE role_id = ?
		ORDER BY controller ASC, action ASC
	`

	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	links := []models.LinkPermission{}
	for rows.Next() {
		var link models.LinkPermission
		if err := rows.Scan(
			&link.ID,
			&link.RoleID,
			&link.Controller,
			&link.Action,
			&link.CreatedAt,
			&link.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permissions: %w", err)
	}

	return links, nil
}

// AddPermission links a controller action to a role
func (r *roleRepository) AddPermission(ctx context.Context, link *models.LinkPermission) error {
	query := `
		INSERT INTO link_permissions (role_id, controller, action, created_at, created_by)
		VALUES (?, ?, ?, ?, ?)
	`

	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	userID := userctx.UserID(ctx)

	result, err := r.db.ExecContext(ctx, query,
		link.RoleID,
		link.Controller,
		link.Action,
		link.CreatedAt,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add permission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	link.ID = int(id)
	link.CreatedBy = userID
	return nil
}

// RemovePermission unlinks a permission from a role
func (r *roleRepository) RemovePermission(ctx context.Context, roleID, permissionID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM link_permissions WHERE id = ? AND role_id = ?`, permissionID, roleID)
	if err != nil {
		return fmt.Errorf("failed to remove permission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("permission %d on role %d: %w", permissionID, roleID, ErrNotFound)
	}

	return nil
}

// CountPermissions returns the number of permissions linked to a role
func (r *roleRepository) CountPermissions(ctx context.Context, roleID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM link_permissions WHERE role_id = ?`, roleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count permissions: %w", err)
	}
	return count, nil
}
