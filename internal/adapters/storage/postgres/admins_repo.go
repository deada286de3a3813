package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/admins"
)

const adminColumns = `
	id, username, password_hash, name, email, role, created_at, updated_at`

type AdminsRepo struct {
	db *sql.DB
}

func NewAdminsRepo(db *sql.DB) *AdminsRepo {
	return &AdminsRepo{db: db}
}

func (r *AdminsRepo) Create(ctx context.Context, a admins.Admin) (admins.Admin, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO admins (
			username, password_hash, name, email, role, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		a.Username, a.PasswordHash, a.Name, a.Email, a.Role, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return admins.Admin{}, err
	}
	return a, nil
}

func (r *AdminsRepo) GetByID(ctx context.Context, id int64) (admins.Admin, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	return r.scanOne(row)
}

func (r *AdminsRepo) GetByUsername(ctx context.Context, username string) (admins.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE lower(username) = lower($1)`, username)
	return r.scanOne(row)
}

func (r *AdminsRepo) ListAll(ctx context.Context) ([]admins.Admin, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]admins.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdminsRepo) scanOne(row rowScanner) (admins.Admin, error) {
	a, err := scanAdmin(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return admins.Admin{}, admins.ErrNotFound
		}
		return admins.Admin{}, err
	}
	return a, nil
}

func scanAdmin(row rowScanner) (admins.Admin, error) {
	var a admins.Admin
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Email, &a.Role,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
