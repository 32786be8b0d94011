package order

import "time"

type OrderDB struct {
	ID                int64
	UserID            int64
	QuoteID           int64
	Status            string
	Items             []byte
	FromAddressID     int64
	ToAddressID       int64
	AdditionalOptions []byte
	ShippingCompanyID *int64
	TotalPrice        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
