package quote

import "time"

// QuoteDB строка quotes. Позиции, этажность и особые требования
// лежат в jsonb, разбивка цены в отдельных колонках.
type QuoteDB struct {
	ID                  int64
	UserID              int64
	Items               []byte
	FromAddressID       int64
	ToAddressID         int64
	FromPostalCode      string
	ToPostalCode        string
	DistanceKm          float64
	FloorInfo           []byte
	SpecialRequirements []byte
	BasePrice           int64
	DistanceFee         int64
	FloorFee            int64
	SpecialFee          int64
	DiscountAmount      int64
	FinalPrice          int64
	Status              string
	ValidUntil          time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
