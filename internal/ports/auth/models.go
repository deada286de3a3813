package auth

// Roles que viajan en el token. Los admins además se re-verifican
// contra storage en el middleware.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleOwner      = "owner"
)

// Claims representa la información extraída del token.
type Claims struct {
	Subject  string // id de la entidad (como string)
	Username string // solo sesiones de admin
	Email    string // solo sesiones de owner
	Role     string
}

// IsAdmin indica si las claims corresponden a una sesión de admin.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}
