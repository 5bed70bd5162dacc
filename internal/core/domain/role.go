package domain

import "errors"

// PageSettings is admin-only as a hard rule: the authorization gate denies it
// for every non-admin role even when a permission table entry lists it, and
// the role service strips it from incoming table updates.
const PageSettings = "settings"

// AllPages is the sentinel returned to clients for the admin role, which is
// never represented in the permission table.
const AllPages = "*"

var ErrAccessDenied = errors.New("access denied")
var ErrPermissionsNotConfigured = errors.New("role permissions not set")

// RolePermission maps a non-admin role to the set of pages it may access.
// One entry per role; the admin role is never stored here.
type RolePermission struct {
	Role  string   `json:"role"`
	Pages []string `json:"pages"`
}

// Allows reports whether the entry grants access to page.
func (rp *RolePermission) Allows(page string) bool {
	for _, p := range rp.Pages {
		if p == page {
			return true
		}
	}
	return false
}
