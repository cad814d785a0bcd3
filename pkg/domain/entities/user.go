package entities

// Role gates which dashboard affordances a user sees. The core never
// enforces authorization on any operation; roles are presentation hints.
type Role string

const (
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleStaff   Role = "staff"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleCashier, RoleStaff:
		return true
	}
	return false
}

// User is the signed-in identity held by the session store
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
