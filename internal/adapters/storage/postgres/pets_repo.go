package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/pets"
)

const petColumns = `
	id, name, type, breed, age, gender, size,
	description, image_url, status, is_adoptable,
	owner_id, owner_name, owner_avatar_url,
	likes, is_recent, is_featured,
	created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			name, type, breed, age, gender, size,
			description, image_url, status, is_adoptable,
			owner_id, owner_name, owner_avatar_url,
			likes, is_recent, is_featured,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING id
	`,
		p.Name, p.Type, p.Breed, p.Age, p.Gender, p.Size,
		p.Description, p.ImageURL, p.Status, p.IsAdoptable,
		p.OwnerID, p.OwnerName, p.OwnerAvatarURL,
		p.Likes, p.IsRecent, p.IsFeatured,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2, type = $3, breed = $4, age = $5,
			gender = $6, size = $7, description = $8, image_url = $9,
			status = $10, is_adoptable = $11,
			owner_id = $12, owner_name = $13, owner_avatar_url = $14,
			likes = $15, is_recent = $16, is_featured = $17,
			updated_at = $18
		WHERE id = $1
	`,
		p.ID,
		p.Name, p.Type, p.Breed, p.Age,
		p.Gender, p.Size, p.Description, p.ImageURL,
		p.Status, p.IsAdoptable,
		p.OwnerID, p.OwnerName, p.OwnerAvatarURL,
		p.Likes, p.IsRecent, p.IsFeatured,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListAdoptable(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets WHERE is_adoptable = TRUE ORDER BY id ASC`)
}

func (r *PetsRepo) ListShowcase(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets WHERE is_adoptable = FALSE ORDER BY id ASC`)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
}

func (r *PetsRepo) list(ctx context.Context, query string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	err := row.Scan(
		&p.ID, &p.Name, &p.Type, &p.Breed, &p.Age, &p.Gender, &p.Size,
		&p.Description, &p.ImageURL, &p.Status, &p.IsAdoptable,
		&p.OwnerID, &p.OwnerName, &p.OwnerAvatarURL,
		&p.Likes, &p.IsRecent, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
