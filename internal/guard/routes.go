package guard

import "github.com/fintrack/fintrack-go/internal/domain/auth"

// The application route table. Paths not listed here are public.
var routeRequirements = map[string]Requirement{
	"/profile":         {},
	"/expense":         {},
	"/budget":          {},
	"/saving":          {},
	"/admin/dashboard": {Roles: []auth.Role{auth.RoleAdmin}},
}

// ForPath returns the requirement for a protected path. The second return
// is false for public paths.
func ForPath(path string) (Requirement, bool) {
	req, ok := routeRequirements[path]
	return req, ok
}
