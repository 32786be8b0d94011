package booking_expiry

import (
	"time"

	"service/internal/entities"
)

type BookingExpiryFactory struct{}

func New() *BookingExpiryFactory {
	return &BookingExpiryFactory{}
}

// CalculateExpiry считает срок жизни временной брони: чем срочнее
// вариант доставки, тем короче окно на подтверждение.
func (f *BookingExpiryFactory) CalculateExpiry(option entities.DeliveryOption, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch option {
	case entities.DeliverySameDay:
		resultTime = resultTime.Add(time.Minute * 15)
	case entities.DeliveryNextDay:
		resultTime = resultTime.Add(time.Minute * 20)
	case entities.DeliveryRegular:
		resultTime = resultTime.Add(time.Minute * 30)
	default:
		resultTime = resultTime.Add(time.Minute * 30)
	}

	return resultTime
}
