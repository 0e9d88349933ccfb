package models

import (
	"strings"
	"time"
	"unicode"
)

// Role is a named group of permissions assigned to admin users.
type Role struct {
	ID          int       `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	AuditFields
}

// RoleForm represents request data for creating/updating roles
type RoleForm struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Validate validates the role form data
func (f *RoleForm) Validate() ValidationErrors {
	var errs ValidationErrors

	code := strings.TrimSpace(f.Code)
	if code == "" {
		errs = append(errs, ValidationError{Field: "code", Message: "Code is required"})
	} else if !isValidCode(code) {
		errs = append(errs, ValidationError{Field: "code", Message: "Code may only contain upper-case letters, digits and underscores"})
	}
	if len(code) > 50 {
		errs = append(errs, ValidationError{Field: "code", Message: "Code must be less than 50 characters"})
	}

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Name is required"})
	}
	if len(f.Name) > 100 {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	if len(f.Description) > 500 {
		errs = append(errs, ValidationError{Field: "description", Message: "Description must be less than 500 characters"})
	}

	return errs
}

// LinkPermission grants a role access to one controller action.
type LinkPermission struct {
	ID         int       `json:"id" db:"id"`
	RoleID     int       `json:"role_id" db:"role_id"`
	Controller string    `json:"controller" db:"controller"`
	Action     string    `json:"action" db:"action"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	CreatedBy  int       `json:"created_by,omitempty" db:"created_by"`
}

// LinkPermissionForm represents request data for linking a permission to a role
type LinkPermissionForm struct {
	Controller string `json:"controller"`
	Action     string `json:"action"`
}

// Validate validates the permission link form data
func (f *LinkPermissionForm) Validate() ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(f.Controller) == "" {
		errs = append(errs, ValidationError{Field: "controller", Message: "Controller is required"})
	}
	if strings.TrimSpace(f.Action) == "" {
		errs = append(errs, ValidationError{Field: "action", Message: "Action is required"})
	}
	return errs
}

// isValidCode accepts codes like SHOP_AD or EMPLOYEE
func isValidCode(code string) bool {
	for _, r := range code {
		if r != '_' && !unicode.IsDigit(r) && !(unicode.IsUpper(r) && r < unicode.MaxASCII) {
			return false
		}
	}
	return true
}
