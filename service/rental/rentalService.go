package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	rentalrepo "boardcamp/repository/rental"

	"boardcamp/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrGameNotFound     ErrCode = "GAME_NOT_FOUND"
	ErrRentalNotFound   ErrCode = "RENTAL_NOT_FOUND"
	ErrOutOfStock       ErrCode = "OUT_OF_STOCK"
	ErrAlreadyReturned  ErrCode = "ALREADY_RETURNED"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts the error code, "" for unclassified errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Customers is the slice of the customer store this service needs.
type Customers interface {
	ByID(ctx context.Context, id int64) (*model.Customer, error)
}

type Service interface {
	// Create admits a new rental if the game still has a copy free.
	Create(ctx context.Context, customerID, gameID int64, daysRented int) (*model.Rental, error)

	// Return closes an open rental, computing the delay fee exactly once.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	List(ctx context.Context) ([]model.Rental, error)
}

// ----- Service implementation -----

type service struct {
	db *sql.DB
	r  rentalrepo.Repo
	c  Customers

	// now is swapped out in tests to pin "today".
	now func() time.Time
}

func New(db *sql.DB, r rentalrepo.Repo, c Customers) Service {
	return &service{db: db, r: r, c: c, now: time.Now}
}

// NewWithClock is New with an injected clock.
func NewWithClock(db *sql.DB, r rentalrepo.Repo, c Customers, now func() time.Time) Service {
	return &service{db: db, r: r, c: c, now: now}
}

// today normalizes the clock to a UTC calendar date so day arithmetic
// stays whole-day exact against DATE columns.
func (s *service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Create runs the admission decision in a single transaction: the game
// row is locked, so the open-rental count cannot be invalidated by a
// concurrent admission before the insert commits. Stock is never
// oversold.
func (s *service) Create(ctx context.Context, customerID, gameID int64, daysRented int) (rental *model.Rental, err error) {
	customer, err := s.c.ByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, codedError{ErrCustomerNotFound, "Customer not found"}
		}
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	game, err := s.r.GameForUpdate(ctx, tx, gameID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, codedError{ErrGameNotFound, "Game not found"}
		}
		return nil, err
	}

	open, err := s.r.CountOpenByGame(ctx, tx, gameID)
	if err != nil {
		return nil, err
	}
	if open >= game.StockTotal {
		return nil, codedError{ErrOutOfStock, "Game is out of stock"}
	}

	rental = &model.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      s.today(),
		DaysRented:    daysRented,
		OriginalPrice: int64(daysRented) * game.PricePerDay,
		DelayFee:      0,
		Customer:      *customer,
		Game:          *game,
	}
	if err = s.r.Insert(ctx, tx, rental); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return rental, nil
}

// Return locks the rental row, so two concurrent closures cannot both
// see a nil return date; the fee is computed and written exactly once.
func (s *service) Return(ctx context.Context, rentalID int64) (rental *model.Rental, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rt, err := s.r.RentalForUpdate(ctx, tx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, codedError{ErrRentalNotFound, "Rental was not found"}
		}
		return nil, err
	}
	if !rt.Open() {
		return nil, codedError{ErrAlreadyReturned, "This rental was already returned"}
	}

	today := s.today()
	elapsed := int(today.Sub(rt.RentDate).Hours() / 24)

	var fee int64
	if elapsed > rt.DaysRented {
		fee = int64(elapsed-rt.DaysRented) * rt.Game.PricePerDay
	}

	if err = s.r.MarkReturned(ctx, tx, rentalID, today, fee); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return s.r.ByID(ctx, rentalID)
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.r.List(ctx)
}
