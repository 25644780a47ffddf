// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"database/sql"
	"time"

	"boardcamp/model"
)

type Repo interface {
	// Admission: both run inside the caller's transaction so the count
	// reflects committed state while the game row is locked.
	GameForUpdate(ctx context.Context, tx *sql.Tx, gameID int64) (*model.Game, error)
	CountOpenByGame(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, r *model.Rental) error

	// Closure
	RentalForUpdate(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, error)
	MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, returnDate time.Time, delayFee int64) error

	ByID(ctx context.Context, rentalID int64) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]model.Rental, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// GameForUpdate locks the game row for the rest of the transaction.
// Concurrent admissions for the same game serialize here, so the
// open-rental count below cannot go stale before the insert commits.
func (r *repo) GameForUpdate(ctx context.Context, tx *sql.Tx, gameID int64) (*model.Game, error) {
	const q = `
SELECT id, name, image, stock_total, price_per_day
FROM games
WHERE id = $1
FOR UPDATE`
	g := &model.Game{}
	if err := tx.QueryRowContext(ctx, q, gameID).Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.PricePerDay); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) CountOpenByGame(ctx context.Context, tx *sql.Tx, gameID int64) (int64, error) {
	const q = `
SELECT COUNT(*)
FROM rentals
WHERE game_id = $1
AND return_date IS NULL`
	var n int64
	err := tx.QueryRowContext(ctx, q, gameID).Scan(&n)
	return n, err
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, m *model.Rental) error {
	const q = `
INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, original_price, delay_fee)
VALUES ($1,$2,$3,$4,$5,0)
RETURNING id`
	return tx.QueryRowContext(ctx, q,
		m.CustomerID, m.GameID, m.RentDate, m.DaysRented, m.OriginalPrice,
	).Scan(&m.ID)
}

// RentalForUpdate locks the rental row and joins the game so the
// closure math has the per-day price at hand. Two concurrent closures
// of the same rental serialize on the lock; the loser sees the
// non-null return_date.
func (r *repo) RentalForUpdate(ctx context.Context, tx *sql.Tx, rentalID int64) (*model.Rental, error) {
	const q = `
SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented,
       r.return_date, r.original_price, r.delay_fee, g.price_per_day
FROM rentals r
JOIN games g ON g.id = r.game_id
WHERE r.id = $1
FOR UPDATE OF r`
	m := &model.Rental{}
	err := tx.QueryRowContext(ctx, q, rentalID).Scan(
		&m.ID, &m.CustomerID, &m.GameID, &m.RentDate, &m.DaysRented,
		&m.ReturnDate, &m.OriginalPrice, &m.DelayFee, &m.Game.PricePerDay,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, returnDate time.Time, delayFee int64) error {
	const q = `
UPDATE rentals
SET return_date = $2,
    delay_fee = $3
WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, rentalID, returnDate, delayFee)
	return err
}

const selectJoined = `
SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented,
       r.return_date, r.original_price, r.delay_fee,
       c.name, c.cpf,
       g.name, g.image, g.stock_total, g.price_per_day
FROM rentals r
JOIN customers c ON c.id = r.customer_id
JOIN games g ON g.id = r.game_id`

func scanJoined(row interface{ Scan(...any) error }, m *model.Rental) error {
	err := row.Scan(
		&m.ID, &m.CustomerID, &m.GameID, &m.RentDate, &m.DaysRented,
		&m.ReturnDate, &m.OriginalPrice, &m.DelayFee,
		&m.Customer.Name, &m.Customer.CPF,
		&m.Game.Name, &m.Game.Image, &m.Game.StockTotal, &m.Game.PricePerDay,
	)
	if err != nil {
		return err
	}
	m.Customer.ID = m.CustomerID
	m.Game.ID = m.GameID
	return nil
}

func (r *repo) ByID(ctx context.Context, rentalID int64) (*model.Rental, error) {
	const q = selectJoined + `
WHERE r.id = $1`
	m := &model.Rental{}
	if err := scanJoined(r.db.QueryRowContext(ctx, q, rentalID), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	const q = selectJoined + `
ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		var m model.Rental
		if err := scanJoined(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListOverdue returns open rentals whose agreed period ended before
// asOf. Feeds the daily reminder job.
func (r *repo) ListOverdue(ctx context.Context, asOf time.Time) ([]model.Rental, error) {
	const q = selectJoined + `
WHERE r.return_date IS NULL
AND r.rent_date + r.days_rented * INTERVAL '1 day' < $1
ORDER BY r.rent_date, r.id`
	rows, err := r.db.QueryContext(ctx, q, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		var m model.Rental
		if err := scanJoined(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
