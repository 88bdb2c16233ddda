package rbac

import (
	"net/url"
	"strings"
)

// Identity is the resolved caller, passed explicitly rather than read from
// ambient context.
type Identity struct {
	UserID uint
	Role   Role
}

// Outcome of evaluating a request against the guard. Unauthenticated and
// unauthorized are distinct and must never be conflated: they redirect to
// different places and say different things.
type Outcome int

const (
	Allow Outcome = iota
	DenyUnauthenticated
	DenyUnauthorized
)

// Decision is what the guard hands back to the transport layer.
type Decision struct {
	Outcome      Outcome
	RedirectTo   string // login URL with the original path+query, for unauthenticated callers
	Reason       string // human-readable, for unauthorized callers
	AllowedRoles []Role // the set the route accepts, for unauthorized callers
	CallerRole   Role
}

// publicPrefixes classify a path as PUBLIC: no session needed. "/" is an
// exact match, the rest are prefixes.
var publicPrefixes = []string{
	"/health",
	"/login",
	"/register",
	"/api/public/",
	"/uploads/",
	"/assets/",
}

// routeRule guards one route prefix. A nil Methods set applies to every
// method; otherwise only the listed ones.
type routeRule struct {
	Prefix  string
	Methods []string
	Roles   []Role
}

// routeTable is ordered; the first rule whose prefix (and method, when
// constrained) matches wins. The trailing "/" rule makes every remaining
// protected path reachable by any authenticated staff member.
var routeTable = []routeRule{
	{Prefix: "/api/admin/users", Roles: RolesFor(ActionManageUsers)},
	{Prefix: "/api/admin", Roles: RolesFor(ActionManageContent)},
	{Prefix: "/api/inventory", Roles: RolesFor(ActionManageInventory)},
	{Prefix: "/api/sales", Roles: RolesFor(ActionProcessSales)},
	{Prefix: "/api/reports", Roles: RolesFor(ActionViewReports)},
	{Prefix: "/api/categories", Methods: []string{"DELETE"}, Roles: RolesFor(ActionDeleteCatalog)},
	{Prefix: "/api/categories", Methods: []string{"POST", "PUT"}, Roles: RolesFor(ActionEditCatalog)},
	{Prefix: "/api/products", Methods: []string{"DELETE"}, Roles: RolesFor(ActionDeleteCatalog)},
	{Prefix: "/api/products", Methods: []string{"POST", "PUT"}, Roles: RolesFor(ActionEditCatalog)},
	{Prefix: "/", Roles: AllRoles},
}

// Evaluate is the whole guard: a pure function of (method, request URI,
// resolved identity). ident is nil when no valid session was presented.
func Evaluate(method, requestURI string, ident *Identity) Decision {
	path := requestURI
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if isPublic(path) {
		return Decision{Outcome: Allow}
	}

	if ident == nil {
		// Preserve where the caller was headed so login can send them back.
		return Decision{
			Outcome:    DenyUnauthenticated,
			RedirectTo: "/login?next=" + url.QueryEscape(requestURI),
		}
	}

	for _, rule := range routeTable {
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		if rule.Methods != nil && !containsMethod(rule.Methods, method) {
			continue
		}
		for _, r := range rule.Roles {
			if ident.Role == r {
				return Decision{Outcome: Allow, CallerRole: ident.Role}
			}
		}
		return Decision{
			Outcome:      DenyUnauthorized,
			Reason:       "role " + string(ident.Role) + " may not access " + rule.Prefix,
			AllowedRoles: rule.Roles,
			CallerRole:   ident.Role,
		}
	}

	// Unreachable: the trailing "/" rule matches everything. Fail closed anyway.
	return Decision{Outcome: DenyUnauthorized, Reason: "no route rule matched", CallerRole: ident.Role}
}

func isPublic(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func containsMethod(methods []string, m string) bool {
	for _, v := range methods {
		if v == m {
			return true
		}
	}
	return false
}
