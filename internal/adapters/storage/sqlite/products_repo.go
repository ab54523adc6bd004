package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petcare-crm/internal/domain/products"
)

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

// UpsertByName se apoya en el UNIQUE(name) del esquema: el insert de un
// nombre repetido no hace nada y la relectura devuelve la fila ganadora.
// Dos ventas concurrentes con el mismo nombre nuevo no duplican producto.
func (r *ProductsRepo) UpsertByName(ctx context.Context, p products.Product) (products.Product, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, p.ID, p.Name, p.Price)
	if err != nil {
		return products.Product{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, price FROM products WHERE name = ?
	`, p.Name)

	var out products.Product
	if err := row.Scan(&out.ID, &out.Name, &out.Price); err != nil {
		return products.Product{}, err
	}
	return out, nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, price FROM products WHERE id = ?
	`, id)

	var p products.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return products.Product{}, products.ErrNotFound
		}
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context) ([]products.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price FROM products ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		var p products.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
