package entities

import "time"

type OrderStatusType string

const (
	OrderPending          OrderStatusType = "pending"
	OrderConfirmed        OrderStatusType = "confirmed"
	OrderShippingAssigned OrderStatusType = "shipping_assigned"
	OrderCompleted        OrderStatusType = "completed"
	OrderCancelled        OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// CanTransitionTo валидные переходы статуса заказа.
// completed и cancelled терминальные.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderShippingAssigned || next == OrderCancelled
	case OrderShippingAssigned:
		return next == OrderCompleted || next == OrderCancelled
	default:
		return false
	}
}

// Order оформленный заказ, создаётся из принятого предложения.
// TotalPrice копируется из quote.final_price в момент создания.
type Order struct {
	ID                int64
	UserID            int64
	QuoteID           int64
	Status            OrderStatusType
	Items             []QuoteItem
	FromAddressID     int64
	ToAddressID       int64
	AdditionalOptions []SelectedOption
	ShippingCompanyID *int64
	TotalPrice        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderCreate struct {
	UserID            int64
	QuoteID           int64
	Status            OrderStatusType
	Items             []QuoteItem
	FromAddressID     int64
	ToAddressID       int64
	AdditionalOptions []SelectedOption
	TotalPrice        int64
}

type OrderModify struct {
	ID                *int64
	Status            *OrderStatusType
	ShippingCompanyID *int64
}

type PaymentStatusType string

const (
	PaymentPaid      PaymentStatusType = "paid"
	PaymentFailed    PaymentStatusType = "failed"
	PaymentCancelled PaymentStatusType = "cancelled"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// PaymentEvent событие платёжного шлюза из Kafka.
type PaymentEvent struct {
	OrderID int64
	Status  PaymentStatusType
}
