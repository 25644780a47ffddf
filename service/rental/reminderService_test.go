package rentalsvc_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"boardcamp/model"
	rentalsvc "boardcamp/service/rental"

	"github.com/stretchr/testify/require"
)

func TestNotifyOverdue_CountsOpenLateRentals(t *testing.T) {
	var gotAsOf time.Time
	ledger := &ledgerMock{
		listOverdueFn: func(ctx context.Context, asOf time.Time) ([]model.Rental, error) {
			gotAsOf = asOf
			return []model.Rental{*openRental(10, 3), *openRental(6, 3)}, nil
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	n, err := rentalsvc.NewReminder(ledger, log).NotifyOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.False(t, gotAsOf.IsZero())
}

func TestNotifyOverdue_NoneOverdue(t *testing.T) {
	ledger := &ledgerMock{
		listOverdueFn: func(ctx context.Context, asOf time.Time) ([]model.Rental, error) {
			return nil, nil
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	n, err := rentalsvc.NewReminder(ledger, log).NotifyOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
