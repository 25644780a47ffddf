package gamerepo

import (
	"context"
	"database/sql"

	"boardcamp/model"
)

type Repo interface {
	Create(ctx context.Context, g *model.Game) error
	ByID(ctx context.Context, id int64) (*model.Game, error)
	List(ctx context.Context) ([]model.Game, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, g *model.Game) error {
	const q = `
INSERT INTO games (name, image, stock_total, price_per_day)
VALUES ($1,$2,$3,$4)
RETURNING id`
	return r.db.QueryRowContext(ctx, q, g.Name, g.Image, g.StockTotal, g.PricePerDay).Scan(&g.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Game, error) {
	const q = `
SELECT id, name, image, stock_total, price_per_day
FROM games
WHERE id = $1`
	g := &model.Game{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.PricePerDay); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) List(ctx context.Context) ([]model.Game, error) {
	const q = `
SELECT id, name, image, stock_total, price_per_day
FROM games
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Game
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.PricePerDay); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
