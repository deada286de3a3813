package products

import "time"

// Product es un artículo del catálogo de la tienda (comida, juguetes,
// accesorios) con afinidad a un tipo de mascota.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string // food, toys, accessories, ...
	PetType     string // dog, cat, bird, small

	// Price viaja como string decimal ("29.99"); en postgres es NUMERIC.
	Price string

	ImageURL    string
	Stock       int
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
