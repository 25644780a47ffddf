package rental

import (
	"boardcamp/model"
)

type CreateRentalReq struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	GameID     int64 `json:"gameId" validate:"required,gt=0"`
	DaysRented int   `json:"daysRented" validate:"required,gt=0"`
}

// RentalResp is the wire shape: dates as plain calendar days,
// returnDate null while the rental is open.
type RentalResp struct {
	ID            int64          `json:"id"`
	RentDate      string         `json:"rentDate"`
	DaysRented    int            `json:"daysRented"`
	ReturnDate    *string        `json:"returnDate"`
	OriginalPrice int64          `json:"originalPrice"`
	DelayFee      int64          `json:"delayFee"`
	Customer      model.Customer `json:"customer"`
	Game          model.Game     `json:"game"`
}

const dateLayout = "2006-01-02"

func toResp(m *model.Rental) RentalResp {
	resp := RentalResp{
		ID:            m.ID,
		RentDate:      m.RentDate.Format(dateLayout),
		DaysRented:    m.DaysRented,
		OriginalPrice: m.OriginalPrice,
		DelayFee:      m.DelayFee,
		Customer:      m.Customer,
		Game:          m.Game,
	}
	if m.ReturnDate != nil {
		d := m.ReturnDate.Format(dateLayout)
		resp.ReturnDate = &d
	}
	return resp
}

func toRespList(ms []model.Rental) []RentalResp {
	out := make([]RentalResp, 0, len(ms))
	for i := range ms {
		out = append(out, toResp(&ms[i]))
	}
	return out
}
