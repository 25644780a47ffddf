package gamerepo_test

import (
	"context"
	"database/sql"
	"testing"

	"boardcamp/model"
	gamerepo "boardcamp/repository/game"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ScansGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := gamerepo.New(db)

	mock.ExpectQuery(`INSERT INTO games`).
		WithArgs("gameName", "image", int64(3), int64(1500)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	g := &model.Game{Name: "gameName", Image: "image", StockTotal: 3, PricePerDay: 1500}
	err = repo.Create(context.Background(), g)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := gamerepo.New(db)

	rows := sqlmock.NewRows([]string{"id", "name", "image", "stock_total", "price_per_day"}).
		AddRow(7, "gameName", "image", 3, 1500)
	mock.ExpectQuery(`FROM games`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	g, err := repo.ByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), g.PricePerDay)
}

func TestByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := gamerepo.New(db)

	mock.ExpectQuery(`FROM games`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.ByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
