package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin      = "admin"
	RoleAccounting = "accounting"
	RoleManager    = "manager"
	RoleSeller     = "seller"
)

// Roles lista cerrada de roles, en orden estable.
var Roles = []string{RoleAdmin, RoleAccounting, RoleManager, RoleSeller}

// IsValidRole informa si role pertenece a la lista cerrada.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Profile vincula una identidad (User.ID) con exactamente una Company.
type Profile struct {
	ID        string // = User.ID
	CompanyID string
	FullName  string
	Role      string
	CreatedAt time.Time
}
