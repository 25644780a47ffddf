// model/rental.go
package model

import "time"

// Rental links a customer to a game for an agreed number of days.
// ReturnDate stays nil while the rental is open; a nil ReturnDate is
// what counts against the game's stock.
type Rental struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"-"`
	GameID        int64      `json:"-"`
	RentDate      time.Time  `json:"rentDate"`
	DaysRented    int        `json:"daysRented"`
	ReturnDate    *time.Time `json:"returnDate"`
	OriginalPrice int64      `json:"originalPrice"`
	DelayFee      int64      `json:"delayFee"`
	Customer      Customer   `json:"customer"`
	Game          Game       `json:"game"`
}

// Open reports whether the rental has not been returned yet.
func (r *Rental) Open() bool { return r.ReturnDate == nil }
