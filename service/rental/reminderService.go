package rentalsvc

import (
	"context"
	"log/slog"
	"time"

	rentalrepo "boardcamp/repository/rental"
)

// Reminder is run daily by the cron scheduler to flag overdue open
// rentals. It only reports; closing a rental stays a caller decision.
type Reminder interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

type reminder struct {
	r   rentalrepo.Repo
	log *slog.Logger
	now func() time.Time
}

func NewReminder(r rentalrepo.Repo, log *slog.Logger) Reminder {
	return &reminder{r: r, log: log, now: time.Now}
}

func (c *reminder) NotifyOverdue(ctx context.Context) (int, error) {
	overdue, err := c.r.ListOverdue(ctx, c.now().UTC())
	if err != nil {
		return 0, err
	}
	for _, rt := range overdue {
		c.log.Warn("rental overdue",
			"rental_id", rt.ID,
			"customer", rt.Customer.Name,
			"game", rt.Game.Name,
			"rent_date", rt.RentDate.Format("2006-01-02"),
			"days_rented", rt.DaysRented,
		)
	}
	return len(overdue), nil
}
