package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/products"
)

// price::text para preservar el formato decimal ("29.99") del dominio.
const productColumns = `
	id, name, description, category, pet_type, price::text,
	image_url, stock, is_available, created_at, updated_at`

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			name, description, category, pet_type, price,
			image_url, stock, is_available, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		p.Name, p.Description, p.Category, p.PetType, p.Price,
		p.ImageURL, p.Stock, p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET
			name = $2, description = $3, category = $4, pet_type = $5,
			price = $6, image_url = $7, stock = $8, is_available = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name, p.Description, p.Category, p.PetType,
		p.Price, p.ImageURL, p.Stock, p.IsAvailable,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return products.ErrNotFound
	}
	return nil
}

func (r *ProductsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return products.ErrNotFound
	}
	return nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id int64) (products.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return products.Product{}, products.ErrNotFound
		}
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) ListAll(ctx context.Context) ([]products.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row rowScanner) (products.Product, error) {
	var p products.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.PetType, &p.Price,
		&p.ImageURL, &p.Stock, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
