package session

import (
	"strings"
)

// Role is the authorization role attached to a session
type Role string

// The two roles the product knows about
const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

// NormalizeRole maps a backend-provided role string onto the two known roles.
// Exactly "ADMIN" (any case, surrounding whitespace ignored) becomes ADMIN;
// everything else, including the empty string, falls back to OPERATOR as the
// least-privilege default.
func NormalizeRole(s string) Role {
	if strings.ToUpper(strings.TrimSpace(s)) == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleOperator
}
