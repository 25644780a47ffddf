package customerrepo_test

import (
	"context"
	"database/sql"
	"testing"

	"boardcamp/model"
	customerrepo "boardcamp/repository/customer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ScansGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerrepo.New(db)

	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("customerName", "12345678901").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	c := &model.Customer{Name: "customerName", CPF: "12345678901"}
	err = repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PropagatesUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerrepo.New(db)

	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("customerName", "12345678901").
		WillReturnError(pgErr)

	err = repo.Create(context.Background(), &model.Customer{Name: "customerName", CPF: "12345678901"})
	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, pgerrcode.UniqueViolation, got.Code)
}

func TestByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerrepo.New(db)

	mock.ExpectQuery(`FROM customers`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.ByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := customerrepo.New(db)

	rows := sqlmock.NewRows([]string{"id", "name", "cpf"}).
		AddRow(1, "a", "11111111111").
		AddRow(2, "b", "22222222222")
	mock.ExpectQuery(`FROM customers`).WillReturnRows(rows)

	out, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}
