package customersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	customerrepo "boardcamp/repository/customer"

	"boardcamp/model"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrCPFTaken ErrCode = "CPF_TAKEN"
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

type Service interface {
	Create(ctx context.Context, name, cpf string) (*model.Customer, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type service struct{ r customerrepo.Repo }

func New(r customerrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, name, cpf string) (*model.Customer, error) {
	c := &model.Customer{Name: name, CPF: cpf}
	if err := s.r.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, codedError{ErrCPFTaken, "Customer is already registered"}
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, codedError{ErrNotFound, "Customer not found"}
		}
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]model.Customer, error) {
	return s.r.List(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
