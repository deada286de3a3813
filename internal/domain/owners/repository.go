package owners

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Owner, error)
	ListPending(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)

	// GetByEmail se usa para login; miss => ErrNotFound.
	GetByEmail(ctx context.Context, email string) (Owner, error)

	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id int64) error
}
