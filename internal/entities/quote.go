package entities

import "time"

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

func (s QuoteStatus) String() string {
	return string(s)
}

type QuoteItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type FloorInfo struct {
	FromFloor    int  `json:"from_floor"`
	ToFloor      int  `json:"to_floor"`
	FromElevator bool `json:"from_elevator"`
	ToElevator   bool `json:"to_elevator"`
}

type SpecialRequirement struct {
	Type string `json:"type"`
	Fee  int64  `json:"fee"`
}

// PriceBreakdown постатейная разбивка цены в вонах.
type PriceBreakdown struct {
	BasePrice      int64
	DistanceFee    int64
	FloorFee       int64
	SpecialFee     int64
	DiscountAmount int64
	FinalPrice     int64
}

// Quote ценовое предложение, действительное до ValidUntil.
// После принятия предложение неизменяемо.
type Quote struct {
	ID                  int64
	UserID              int64
	Items               []QuoteItem
	FromAddressID       int64
	ToAddressID         int64
	FromPostalCode      string
	ToPostalCode        string
	DistanceKm          float64
	FloorInfo           FloorInfo
	SpecialRequirements []SpecialRequirement
	Breakdown           PriceBreakdown
	Status              QuoteStatus
	ValidUntil          time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Expired проверяет истечение срока действия на момент now.
func (q *Quote) Expired(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// QuoteRequest входные данные для расчёта и создания предложения.
type QuoteRequest struct {
	UserID              int64
	Items               []QuoteItem
	FromAddressID       int64
	ToAddressID         int64
	FromPostalCode      string
	ToPostalCode        string
	DistanceKm          float64
	FloorInfo           FloorInfo
	SpecialRequirements []SpecialRequirement
}

type QuoteModify struct {
	ID                  *int64
	UserID              *int64
	Items               []QuoteItem
	FromAddressID       *int64
	ToAddressID         *int64
	FromPostalCode      *string
	ToPostalCode        *string
	DistanceKm          *float64
	FloorInfo           *FloorInfo
	SpecialRequirements []SpecialRequirement
	Breakdown           *PriceBreakdown
	Status              *QuoteStatus
	ValidUntil          *time.Time
}
