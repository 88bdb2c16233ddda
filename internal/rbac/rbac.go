package rbac

import "strings"

// Role is the canonical UPPER_SNAKE role string. The persisted User row is
// the authoritative source; tokens and payloads are normalized through
// ParseRole so mixed-case strings from older clients still resolve.
type Role string

const (
	RoleManagingDirector Role = "MANAGING_DIRECTOR"
	RoleAdmin            Role = "ADMIN"
	RoleInventoryManager Role = "INVENTORY_MANAGER"
	RoleCashier          Role = "CASHIER"
	RoleReportViewer     Role = "REPORT_VIEWER"
)

// Action identifies something a role may or may not be allowed to do.
type Action string

const (
	ActionManageUsers     Action = "manage_users"
	ActionManageInventory Action = "manage_inventory"
	ActionProcessSales    Action = "process_sales"
	ActionViewReports     Action = "view_reports"
	ActionDeleteCatalog   Action = "delete_catalog"
	ActionEditCatalog     Action = "edit_catalog"
	ActionManageContent   Action = "manage_content"
)

// permissions is the single authoritative permission table. Route handlers
// must never hard-code role literals; they ask Allowed instead.
var permissions = map[Action][]Role{
	ActionManageUsers:     {RoleManagingDirector, RoleAdmin},
	ActionManageInventory: {RoleManagingDirector, RoleAdmin, RoleInventoryManager},
	ActionProcessSales:    {RoleManagingDirector, RoleAdmin, RoleCashier},
	ActionViewReports:     {RoleManagingDirector, RoleAdmin, RoleReportViewer},
	ActionDeleteCatalog:   {RoleManagingDirector, RoleAdmin},
	ActionEditCatalog:     {RoleManagingDirector, RoleAdmin, RoleInventoryManager},
	ActionManageContent:   {RoleManagingDirector, RoleAdmin},
}

// AllRoles lists every known role, useful for validation and seeding.
var AllRoles = []Role{
	RoleManagingDirector,
	RoleAdmin,
	RoleInventoryManager,
	RoleCashier,
	RoleReportViewer,
}

// ParseRole normalizes an incoming role string to its canonical form.
// Returns false for anything outside the enumeration.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllRoles {
		if r == known {
			return known, true
		}
	}
	return "", false
}

// Allowed reports whether the role may perform the action.
// Unknown roles and unknown actions both deny (fail closed).
func Allowed(r Role, a Action) bool {
	for _, allowed := range permissions[a] {
		if r == allowed {
			return true
		}
	}
	return false
}

// RolesFor returns a copy of the allowed-role set for an action.
func RolesFor(a Action) []Role {
	out := make([]Role, len(permissions[a]))
	copy(out, permissions[a])
	return out
}
