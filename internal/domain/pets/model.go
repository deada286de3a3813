package pets

import "time"

// Type define las categorías de mascota soportadas.
// @Enum dog, cat, bird, small
type Type string

const (
	TypeDog   Type = "dog"
	TypeCat   Type = "cat"
	TypeBird  Type = "bird"
	TypeSmall Type = "small" // roedores, conejos, etc.
)

// Gender define el sexo de la mascota.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Size define el porte de la mascota. Puede venir vacío (no informado).
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Status refleja el estado de adopción que muestra la UI.
type Status string

const (
	StatusAvailable      Status = "Available"
	StatusAdopted        Status = "Adopted"
	StatusPending        Status = "Pending"
	StatusNotForAdoption Status = "Not for adoption"
)

// Pet representa una mascota publicada en el marketplace.
// IsAdoptable parte el catálogo en dos listados excluyentes:
// adoptables (browse principal) y showcase (solo engagement/likes).
type Pet struct {
	ID          int64
	Name        string
	Type        Type
	Breed       string
	Age         int
	Gender      Gender
	Size        Size
	Description string
	ImageURL    string
	Status      Status
	IsAdoptable bool

	// Referencia al owner + datos denormalizados para las cards.
	OwnerID        int64
	OwnerName      string
	OwnerAvatarURL string

	Likes      int
	IsRecent   bool
	IsFeatured bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidType(t Type) bool {
	switch t {
	case TypeDog, TypeCat, TypeBird, TypeSmall:
		return true
	}
	return false
}

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidSize(s Size) bool {
	switch s {
	case "", SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusAdopted, StatusPending, StatusNotForAdoption:
		return true
	}
	return false
}
