package payment_handle

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
	"service/internal/service/booking"
	"service/internal/service/payment"
)

type StatusHandlerFactory struct {
	orderService   payment.OrderService
	bookingService payment.BookingService
}

func NewStatusHandlerFactory(orderService payment.OrderService, bookingService payment.BookingService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService:   orderService,
		bookingService: bookingService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (payment.ExecuteFn, error) {
	switch status {
	case entities.PaymentPaid:
		return f.paidHandler, nil
	case entities.PaymentFailed:
		return f.failedHandler, nil
	case entities.PaymentCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) paidHandler(ctx context.Context, orderID int64) error {
	order, err := f.orderService.UpdateOrderStatus(ctx, orderID, entities.OrderConfirmed)
	if err != nil {
		return fmt.Errorf("confirm order %d after payment: %w", orderID, err)
	}

	if _, err := f.bookingService.ConfirmActiveForUser(ctx, order.UserID); err != nil {
		// просроченная бронь уже отпустила вместимость, заказ остаётся подтверждённым
		if errors.Is(err, booking.ErrBookingExpired) {
			return nil
		}
		return fmt.Errorf("confirm booking for paid order %d: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, orderID int64) error {
	return f.cancelOrderWithBooking(ctx, orderID, "failed")
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID int64) error {
	return f.cancelOrderWithBooking(ctx, orderID, "cancelled")
}

func (f *StatusHandlerFactory) cancelOrderWithBooking(ctx context.Context, orderID int64, reason string) error {
	order, err := f.orderService.UpdateOrderStatus(ctx, orderID, entities.OrderCancelled)
	if err != nil {
		return fmt.Errorf("cancel order %d after %s payment: %w", orderID, reason, err)
	}

	if _, err := f.bookingService.ReleaseActiveForUser(ctx, order.UserID); err != nil {
		return fmt.Errorf("release booking for order %d: %w", orderID, err)
	}
	return nil
}
