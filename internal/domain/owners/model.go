package owners

import "time"

// Type clasifica el perfil del owner en el directorio.
// @Enum pet_owner, pet_rescuer, pet_foster
type Type string

const (
	TypeOwner   Type = "pet_owner"
	TypeRescuer Type = "pet_rescuer"
	TypeFoster  Type = "pet_foster"
)

// Owner representa un dueño/rescatista/foster registrado.
// Nace sin aprobar; la aprobación es una acción explícita de admin
// y es de un solo sentido (no hay "unapprove").
type Owner struct {
	ID        int64
	Name      string
	Email     string // clave de login; debería ser única
	Type      Type
	Bio       string
	AvatarURL string

	// Hash bcrypt. Nunca se serializa hacia afuera.
	PasswordHash string

	IsApproved bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidType(t Type) bool {
	switch t {
	case TypeOwner, TypeRescuer, TypeFoster:
		return true
	}
	return false
}
