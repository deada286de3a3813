package admins

import "time"

// Role diferencia admins regulares de super admins.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Admin es un usuario de la consola de moderación. No hay auto-registro:
// un admin solo lo crea otro admin ya autenticado.
type Admin struct {
	ID       int64
	Username string // único; clave de login
	Name     string
	Email    string
	Role     Role

	// Hash bcrypt. Nunca se serializa hacia afuera.
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
