package progress

import "time"

// OrderProgressDB строка order_progress, шаги лежат в jsonb колонках.
type OrderProgressDB struct {
	ID                int64
	UserID            int64
	ProductSelection  []byte
	DateSelection     []byte
	AddressInfo       []byte
	AdditionalOptions []byte
	CurrentStep       string
	TotalPrice        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderProgressModifyDB struct {
	ID                *int64
	UserID            *int64
	ProductSelection  []byte
	DateSelection     []byte
	AddressInfo       []byte
	AdditionalOptions []byte
	CurrentStep       *string
	TotalPrice        *int64
}
