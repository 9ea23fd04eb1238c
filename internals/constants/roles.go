package constants

import "fmt"

// ==========================
// Roles
// ==========================
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Admin access required for %s"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole reports whether r is one of the known roles (case-sensitive).
func IsValidRole(r string) bool {
	for _, role := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}
