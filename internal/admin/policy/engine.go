package policy

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// RoleChecker answers whether a user holds any of the given roles.
type RoleChecker interface {
	HasAnyRole(ctx context.Context, userID string, roles []string) (bool, error)
}

// Engine is the central policy engine for permission checking
type Engine struct {
	rolePerms RolePermissions
	routes    map[string]*RouteConfig
}

// NewEngine creates a new Engine from the embedded policy files
func NewEngine() (*Engine, error) {
	loader := NewLoader()

	rolePerms, err := loader.LoadRolePermissions()
	if err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}

	routes, err := loader.LoadRoutes()
	if err != nil {
		return nil, fmt.Errorf("failed to load route policies: %w", err)
	}

	return &Engine{rolePerms: rolePerms, routes: routes}, nil
}

// Route returns the policy for a route, if one is configured
func (e *Engine) Route(method, path string) (*RouteConfig, bool) {
	r, ok := e.routes[RouteKey(method, path)]
	return r, ok
}

// Routes returns every configured route key
func (e *Engine) Routes() []string {
	keys := make([]string, 0, len(e.routes))
	for k := range e.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchPermission reports whether a granted permission covers the required one.
// "*" covers everything, "hr.*" covers "hr.<anything>", "*.read" covers "<anything>.read".
func matchPermission(granted, required string) bool {
	switch {
	case granted == "*" || granted == required:
		return true
	case strings.HasSuffix(granted, ".*"):
		return strings.HasPrefix(required, strings.TrimSuffix(granted, "*"))
	case strings.HasPrefix(granted, "*."):
		return strings.HasSuffix(required, strings.TrimPrefix(granted, "*"))
	}
	return false
}

// GetRolesWithPermission returns roles that have the given permission
func (e *Engine) GetRolesWithPermission(permission string) []string {
	var roles []string
	for role, perms := range e.rolePerms {
		for _, p := range perms {
			if matchPermission(p, permission) {
				roles = append(roles, role)
				break
			}
		}
	}
	sort.Strings(roles)
	return roles
}

// Allows reports whether any of the roles grants the permission
func (e *Engine) Allows(roles []string, permission string) bool {
	for _, role := range roles {
		for _, p := range e.rolePerms[role] {
			if matchPermission(p, permission) {
				return true
			}
		}
	}
	return false
}

// PermissionsFor lists the permission patterns granted by roles, deduplicated and sorted
func (e *Engine) PermissionsFor(roles []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, role := range roles {
		for _, p := range e.rolePerms[role] {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Strings(out)
	return out
}

// IsKnownRole reports whether the role is defined in the policy
func (e *Engine) IsKnownRole(role string) bool {
	_, ok := e.rolePerms[role]
	return ok
}

// CheckPermission checks whether the user holds a role granting permission.
// An empty permission is always allowed.
func (e *Engine) CheckPermission(ctx context.Context, repo RoleChecker, userID, permission string) (bool, error) {
	if permission == "" {
		return true, nil
	}
	requiredRoles := e.GetRolesWithPermission(permission)
	if len(requiredRoles) == 0 {
		return false, nil
	}
	return repo.HasAnyRole(ctx, userID, requiredRoles)
}
