package gamesvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	gamerepo "boardcamp/repository/game"

	"boardcamp/model"
)

type ErrCode string

const (
	ErrNotFound  ErrCode = "GAME_NOT_FOUND"
	ErrNameTaken ErrCode = "NAME_TAKEN"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Create(ctx context.Context, name, image string, stockTotal, pricePerDay int64) (*model.Game, error)
	Get(ctx context.Context, id int64) (*model.Game, error)
	List(ctx context.Context) ([]model.Game, error)
}

type service struct{ r gamerepo.Repo }

func New(r gamerepo.Repo) Service { return &service{r} }

// Create registers a game. Stock is fixed here; there is no restock
// operation, so stock_total never changes afterwards.
func (s *service) Create(ctx context.Context, name, image string, stockTotal, pricePerDay int64) (*model.Game, error) {
	g := &model.Game{Name: name, Image: image, StockTotal: stockTotal, PricePerDay: pricePerDay}
	if err := s.r.Create(ctx, g); err != nil {
		if isUniqueViolation(err) {
			return nil, codedError{ErrNameTaken, "Game already exists"}
		}
		return nil, err
	}
	return g, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Game, error) {
	g, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, codedError{ErrNotFound, "Game not found"}
		}
		return nil, err
	}
	return g, nil
}

func (s *service) List(ctx context.Context) ([]model.Game, error) {
	return s.r.List(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
