package policy

// RolePermissions maps role names to their permissions
type RolePermissions map[string][]string

// RolesConfig is the content of policies/roles.json
type RolesConfig struct {
	Roles RolePermissions `json:"roles"`
}

// RouteConfig binds one API route to the permission it requires.
// An empty permission means any authenticated caller may use the route.
type RouteConfig struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Permission string `json:"permission"`
}

// RoutesConfig is the content of policies/routes.json
type RoutesConfig struct {
	Routes []*RouteConfig `json:"routes"`
}

// RouteKey is the lookup key of a route: "METHOD:PATH" with the echo path template.
func RouteKey(method, path string) string {
	return method + ":" + path
}
