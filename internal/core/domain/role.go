package domain

// Role is a flat capability tag. Holding one role never implies another.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleMinter   Role = "MINTER"
	RoleVerifier Role = "VERIFIER"
	RoleRecovery Role = "RECOVERY"
	RolePolicy   Role = "POLICY"
	RoleOperator Role = "OPERATOR"
)

// AllRoles lists every capability tag.
var AllRoles = []Role{RoleAdmin, RoleMinter, RoleVerifier, RoleRecovery, RolePolicy, RoleOperator}

// ParseRole returns the role named s.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
