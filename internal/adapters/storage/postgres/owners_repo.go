package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/owners"
)

const ownerColumns = `
	id, name, email, type, bio, avatar_url,
	password_hash, is_approved, created_at, updated_at`

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (
			name, email, type, bio, avatar_url,
			password_hash, is_approved, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		o.Name, o.Email, o.Type, o.Bio, o.AvatarURL,
		o.PasswordHash, o.IsApproved, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			name = $2, email = $3, type = $4, bio = $5, avatar_url = $6,
			password_hash = $7, is_approved = $8, updated_at = $9
		WHERE id = $1
	`,
		o.ID,
		o.Name, o.Email, o.Type, o.Bio, o.AvatarURL,
		o.PasswordHash, o.IsApproved, o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, id)
	return r.scanOne(row)
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+ownerColumns+` FROM owners WHERE lower(email) = lower($1)`, email)
	return r.scanOne(row)
}

func (r *OwnersRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	return r.list(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY id ASC`)
}

func (r *OwnersRepo) ListPending(ctx context.Context) ([]owners.Owner, error) {
	return r.list(ctx, `SELECT `+ownerColumns+` FROM owners WHERE is_approved = FALSE ORDER BY id ASC`)
}

func (r *OwnersRepo) scanOne(row rowScanner) (owners.Owner, error) {
	o, err := scanOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) list(ctx context.Context, query string) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOwner(row rowScanner) (owners.Owner, error) {
	var o owners.Owner
	err := row.Scan(
		&o.ID, &o.Name, &o.Email, &o.Type, &o.Bio, &o.AvatarURL,
		&o.PasswordHash, &o.IsApproved, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}
