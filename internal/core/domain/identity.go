package domain

// Principal role tags
const (
	RoleCashier = "cashier"
	RoleManager = "manager"
)

// ValidRole reports whether role is a known principal role tag
func ValidRole(role string) bool {
	return role == RoleCashier || role == RoleManager
}

// Identity is the ephemeral descriptor produced by a successful
// authentication. It is never persisted; subsequent requests rebuild it
// from token claims plus a fresh principal lookup.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}
