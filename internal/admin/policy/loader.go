package policy

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed policies/roles.json policies/routes.json
var policiesFS embed.FS

// Loader loads policy configurations from embedded JSON files
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// LoadRolePermissions loads the role -> permissions table
func (l *Loader) LoadRolePermissions() (RolePermissions, error) {
	data, err := policiesFS.ReadFile("policies/roles.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read roles.json: %w", err)
	}

	var cfg RolesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse roles.json: %w", err)
	}
	if len(cfg.Roles) == 0 {
		return nil, fmt.Errorf("roles.json defines no roles")
	}
	return cfg.Roles, nil
}

// LoadRoutes loads the route table keyed by RouteKey
func (l *Loader) LoadRoutes() (map[string]*RouteConfig, error) {
	data, err := policiesFS.ReadFile("policies/routes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read routes.json: %w", err)
	}

	var cfg RoutesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse routes.json: %w", err)
	}

	routes := make(map[string]*RouteConfig, len(cfg.Routes))
	for _, r := range cfg.Routes {
		r.Method = strings.ToUpper(r.Method)
		key := RouteKey(r.Method, r.Path)
		if _, dup := routes[key]; dup {
			return nil, fmt.Errorf("duplicate route policy %s", key)
		}
		routes[key] = r
	}
	return routes, nil
}
