package customerrepo

import (
	"context"
	"database/sql"

	"boardcamp/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	ByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// Create inserts the customer and fills in the generated id. The cpf
// column carries a unique constraint; violations come back as pg
// errors for the service to map.
func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	const q = `
INSERT INTO customers (name, cpf)
VALUES ($1,$2)
RETURNING id`
	return r.db.QueryRowContext(ctx, q, c.Name, c.CPF).Scan(&c.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Customer, error) {
	const q = `
SELECT id, name, cpf
FROM customers
WHERE id = $1`
	c := &model.Customer{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.CPF); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `
SELECT id, name, cpf
FROM customers
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
