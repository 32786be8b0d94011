//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	// IncrementSlotBookings один условный UPDATE с проверкой потолка,
	// возвращает id слота. Полный или отсутствующий слот — sentinel.
	IncrementSlotBookings(ctx context.Context, key entities.SlotKey) (int64, error)
	DecrementSlotBookings(ctx context.Context, slotID int64) (int64, error)

	IncrementAreaBookings(ctx context.Context, date, areaCode string) (int64, error)
	DecrementAreaBookings(ctx context.Context, restrictionID int64) (int64, error)

	CreateBooking(ctx context.Context, bookingModify entities.BookingModify) (*entities.DeliveryBooking, error)
	GetBooking(ctx context.Context, id int64) (*entities.DeliveryBooking, error)
	GetActiveByUserID(ctx context.Context, userID int64) (*entities.DeliveryBooking, error)
	UpdateBookingStatus(ctx context.Context, id int64, from, to entities.BookingStatus) (int64, error)

	ExpireTemporaryBookings(ctx context.Context) (int64, error)
	ListSlots(ctx context.Context, date, areaCode string) ([]entities.DeliveryTimeSlot, error)
}

type ExpiryFactory interface {
	CalculateExpiry(option entities.DeliveryOption, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
