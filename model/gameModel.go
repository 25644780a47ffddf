package model

type Game struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	StockTotal int64  `json:"stockTotal"`
	// Smallest currency unit (cents); all fee math stays integer.
	PricePerDay int64 `json:"pricePerDay"`
}
