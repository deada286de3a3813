package admins

import "context"

// Repository de admins. Sin Update/Delete: la consola original solo
// lista y crea admins.
type Repository interface {
	ListAll(ctx context.Context) ([]Admin, error)
	GetByID(ctx context.Context, id int64) (Admin, error)

	// GetByUsername se usa para login y para re-verificar el token
	// en el middleware; miss => ErrNotFound.
	GetByUsername(ctx context.Context, username string) (Admin, error)

	Create(ctx context.Context, a Admin) (Admin, error)
}
