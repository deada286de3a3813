package pets

import "context"

// Repository es la única fuente de verdad de persistencia de pets.
// Los adapters (memory y postgres) deben comportarse igual:
// miss => ErrNotFound, listados ordenados por id asc.
type Repository interface {
	ListAdoptable(ctx context.Context) ([]Pet, error)
	ListShowcase(ctx context.Context) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Create asigna el id (secuencial en memory, serial en postgres)
	// y devuelve la fila almacenada.
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
}
