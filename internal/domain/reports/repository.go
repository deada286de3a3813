package reports

import "context"

// Repository de denuncias. No hay Delete a propósito: las denuncias
// se conservan siempre.
type Repository interface {
	ListAll(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id int64) (Report, error)
	Create(ctx context.Context, rep Report) (Report, error)
	Update(ctx context.Context, rep Report) error
}
